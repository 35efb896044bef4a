package matchmaking

import (
	"strings"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
)

// Messages returned for an invalid manual order
const (
	MsgOrderRequired = "Informe a nova ordem dos atletas."
	MsgOrderCount    = "A ordem enviada nao confere com a quantidade de atletas."
	MsgOrderUnknown  = "Identificamos atletas desconhecidos na ordem informada."
)

// SlotChange moves an entry to a new slot.
type SlotChange struct {
	EntryID string
	Slot    int
}

// PlanReorder validates a comma separated list of entry IDs against the
// bracket entries and returns the slot changes it implies. The list must
// name every entry exactly once.
func PlanReorder(raw string, entries []*Entry) ([]SlotChange, error) {
	var order []string
	for _, item := range strings.Split(strings.TrimSpace(raw), ",") {
		if item = strings.TrimSpace(item); item != "" {
			order = append(order, item)
		}
	}

	byID := make(map[string]*Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}

	switch {
	case len(order) == 0:
		return nil, domain.NewValidationError("order", MsgOrderRequired)
	case len(order) != len(entries):
		return nil, domain.NewValidationError("order", MsgOrderCount)
	}
	seen := make(map[string]bool, len(order))
	for _, id := range order {
		if byID[id] == nil || seen[id] {
			return nil, domain.NewValidationError("order", MsgOrderUnknown)
		}
		seen[id] = true
	}

	var changes []SlotChange
	for i, id := range order {
		if byID[id].Slot != i+1 {
			changes = append(changes, SlotChange{EntryID: id, Slot: i + 1})
		}
	}
	return changes, nil
}
