package connector

import (
	"context"
	"fmt"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"
)

// NewDocumentConnector picks the document storage backend from settings.
func NewDocumentConnector(ctx context.Context, settings *config.StorageSettings, logger logger.Logger) (events.DocumentConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Backend {
	case config.StorageBackendLocal:
		return NewLocalDocumentConnector(settings.LocalDir, logger)
	case config.StorageBackendAzure:
		return NewAzureBlobDocumentConnector(ctx, settings, logger)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", settings.Backend)
	}
}
