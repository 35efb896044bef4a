package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Document storage backends
const (
	StorageBackendLocal = "local"
	StorageBackendAzure = "azure"
)

// StorageSettings selects where uploaded event documents are kept.
type StorageSettings struct {
	Backend          string `mapstructure:"backend" validate:"required,oneof=local azure"`
	LocalDir         string `mapstructure:"local_dir" validate:"required_if=Backend local"`
	ConnectionString string `mapstructure:"connection_string" validate:"required_if=Backend azure"`
	ContainerName    string `mapstructure:"container_name" validate:"required_if=Backend azure"`
}

// Validate checks the storage settings.
func (s *StorageSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for StorageSettings: %w", err)
	}
	return nil
}
