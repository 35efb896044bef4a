package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FKBA_DATABASE_DSN.
const EnvPrefix = "FKBA"

// CORSSettings configures the cross origin policy of the REST API.
type CORSSettings struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// RestConfig is the complete configuration of the REST API and the CLI.
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Timezone string           `mapstructure:"timezone" validate:"required"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Asaas    AsaasSettings    `mapstructure:"asaas"`
	Storage  StorageSettings  `mapstructure:"storage"`
	Auth     AuthSettings     `mapstructure:"auth"`
	CORS     CORSSettings     `mapstructure:"cors"`
}

// Location resolves the configured timezone.
func (c *RestConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate checks the configuration and every nested settings block.
func (c *RestConfig) Validate() error {
	if err := validator.New().StructPartial(c, "Port", "Timezone"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	checks := []interface{ Validate() error }{
		&c.Database, &c.Logger, &c.Asaas, &c.Storage, &c.Auth,
	}
	for _, check := range checks {
		if err := check.Validate(); err != nil {
			return err
		}
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// legacyEnv maps configuration keys to environment variable names used by
// earlier deployments of the platform.
var legacyEnv = map[string]string{
	"port":                       "PORT",
	"asaas.api_key":              "ASAAS_API_KEY",
	"asaas.api_base":             "ASAAS_API_BASE",
	"asaas.webhook_token":        "ASAAS_WEBHOOK_TOKEN",
	"asaas.payment_due_days":     "ASAAS_PAYMENT_DUE_DAYS",
	"asaas.default_billing_type": "ASAAS_DEFAULT_BILLING_TYPE",
	"database.dsn":               "DATABASE_URL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("timezone", "America/Sao_Paulo")

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "fkba.db")
	v.SetDefault("database.name", "")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", true)

	v.SetDefault("asaas.api_key", "")
	v.SetDefault("asaas.api_base", "https://sandbox.asaas.com/api/v3")
	v.SetDefault("asaas.webhook_token", "")
	v.SetDefault("asaas.payment_due_days", 3)
	v.SetDefault("asaas.default_billing_type", BillingTypePix)
	v.SetDefault("asaas.timeout", 15*time.Second)

	v.SetDefault("storage.backend", StorageBackendLocal)
	v.SetDefault("storage.local_dir", "media")
	v.SetDefault("storage.connection_string", "")
	v.SetDefault("storage.container_name", "")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("auth.issuer", "fkba")

	v.SetDefault("cors.allow_origins", []string{"*"})
}

// InitializeRestConfig reads the YAML file at path, applies environment
// overrides and validates the result. A missing file is not an error, so
// deployments may configure the service through the environment only.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
