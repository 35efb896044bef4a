//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name:     "sqlite file",
			settings: &DatabaseSettings{Type: SqliteDbType, DSN: "fkba.db"},
		},
		{
			name: "postgres with database name",
			settings: &DatabaseSettings{
				Type: PostgresDbType,
				DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
				Name: "fkba",
			},
		},
		{
			name:          "missing type",
			settings:      &DatabaseSettings{DSN: ":memory:"},
			expectedError: true,
		},
		{
			name:          "unsupported type",
			settings:      &DatabaseSettings{Type: "mysql", DSN: "root@tcp(localhost)/fkba"},
			expectedError: true,
		},
		{
			name:          "missing DSN",
			settings:      &DatabaseSettings{Type: SqliteDbType},
			expectedError: true,
		},
		{
			name:          "database name with symbols",
			settings:      &DatabaseSettings{Type: PostgresDbType, DSN: "host=localhost", Name: "fkba;drop"},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
