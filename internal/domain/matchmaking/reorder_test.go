//go:build unit
// +build unit

package matchmaking

import (
	"errors"
	"testing"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanReorder(t *testing.T) {
	entries := entriesWithSlots(1, 2, 3)

	changes, err := PlanReorder("entry-3, entry-2,entry-1", entries)
	require.NoError(t, err)
	assert.Equal(t, []SlotChange{{EntryID: "entry-3", Slot: 1}, {EntryID: "entry-1", Slot: 3}}, changes)

	changes, err = PlanReorder("entry-1,entry-2,entry-3", entries)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestPlanReorder_Invalid(t *testing.T) {
	entries := entriesWithSlots(1, 2, 3)
	tests := []struct {
		name, order, message string
	}{
		{"Empty", " ", MsgOrderRequired},
		{"Wrong count", "entry-1,entry-2", MsgOrderCount},
		{"Unknown entry", "entry-1,entry-2,entry-9", MsgOrderUnknown},
		{"Repeated entry", "entry-1,entry-1,entry-2", MsgOrderUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanReorder(tt.order, entries)
			var verrs domain.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, []string{tt.message}, verrs["order"])
		})
	}
}
