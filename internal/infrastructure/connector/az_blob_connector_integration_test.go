//go:build integration
// +build integration

package connector

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAzureConnector(t *testing.T) *AzureBlobDocumentConnector {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	settings := &config.StorageSettings{
		Backend:          config.StorageBackendAzure,
		ConnectionString: TestConnectionString,
		ContainerName:    TestContainerName,
	}
	connector, err := NewAzureBlobDocumentConnector(context.Background(), settings, logger)
	require.NoError(t, err)
	return connector
}

func TestAzureBlobDocumentConnector_UploadDownloadDelete(t *testing.T) {
	connector := newTestAzureConnector(t)
	ctx := context.Background()

	key := "event_rules/" + uuid.NewString() + "-regulamento.pdf"
	content := []byte("%PDF-1.4 regulamento")

	require.NoError(t, connector.Upload(ctx, key, bytes.NewReader(content), "application/pdf"))

	downloaded, err := connector.Download(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, content, downloaded)

	require.NoError(t, connector.Delete(ctx, key))

	_, err = connector.Download(ctx, key)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestAzureBlobDocumentConnector_Delete_Missing(t *testing.T) {
	connector := newTestAzureConnector(t)

	err := connector.Delete(context.Background(), "event_rules/"+uuid.NewString()+".pdf")
	assert.NoError(t, err)
}

func TestNewAzureBlobDocumentConnector_InvalidSettings(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	_, err := NewAzureBlobDocumentConnector(context.Background(), &config.StorageSettings{Backend: config.StorageBackendAzure}, logger)
	assert.Error(t, err)
}
