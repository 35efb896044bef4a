//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
port: "9000"
timezone: America/Sao_Paulo
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: debug
  log_type: console
asaas:
  api_key: file-key
  api_base: https://sandbox.asaas.com/api/v3
  payment_due_days: 5
storage:
  backend: local
  local_dir: /tmp/fkba-media
auth:
  jwt_secret: 0123456789abcdef0123
  token_ttl: 2h
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	cfg, err := InitializeRestConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, "file-key", cfg.Asaas.APIKey)
	assert.Equal(t, 5, cfg.Asaas.PaymentDueDays)
	assert.Equal(t, BillingTypePix, cfg.Asaas.BillingType())
	assert.Equal(t, 15*time.Second, cfg.Asaas.Timeout)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}

func TestInitializeRestConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("FKBA_DATABASE_DSN", "override.db")
	t.Setenv("ASAAS_API_KEY", "legacy-key")
	t.Setenv("PORT", "8080")

	cfg, err := InitializeRestConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "override.db", cfg.Database.DSN)
	assert.Equal(t, "legacy-key", cfg.Asaas.APIKey)
	assert.Equal(t, "8080", cfg.Port)
}

func TestInitializeRestConfig_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("FKBA_AUTH_JWT_SECRET", "env-secret-with-enough-length")

	cfg, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 3, cfg.Asaas.PaymentDueDays)
	assert.Equal(t, StorageBackendLocal, cfg.Storage.Backend)
}

func TestInitializeRestConfig_InvalidSettings(t *testing.T) {
	_, err := InitializeRestConfig(writeConfig(t, `
database:
  type: oracle
  dsn: x
auth:
  jwt_secret: 0123456789abcdef0123
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DatabaseSettings")
}

func TestStorageSettingsValidation(t *testing.T) {
	assert.NoError(t, (&StorageSettings{Backend: StorageBackendLocal, LocalDir: "media"}).Validate())
	assert.Error(t, (&StorageSettings{Backend: StorageBackendAzure}).Validate())
	assert.NoError(t, (&StorageSettings{
		Backend:          StorageBackendAzure,
		ConnectionString: "UseDevelopmentStorage=true",
		ContainerName:    "event-rules",
	}).Validate())
}
