package connector

import (
	"context"
	"fmt"
	"io"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// AzureBlobDocumentConnector keeps documents in an Azure Blob Storage container.
type AzureBlobDocumentConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureBlobDocumentConnector connects to the container, creating it when missing.
func NewAzureBlobDocumentConnector(ctx context.Context, settings *config.StorageSettings, logger logger.Logger) (*AzureBlobDocumentConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
	}

	return &AzureBlobDocumentConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

func (c *AzureBlobDocumentConnector) Upload(ctx context.Context, key string, r io.Reader, contentType string) error {
	options := &azblob.UploadStreamOptions{}
	if contentType != "" {
		options.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: &contentType}
	}
	if _, err := c.client.UploadStream(ctx, c.containerName, key, r, options); err != nil {
		return fmt.Errorf("failed to upload blob %s: %w", key, err)
	}

	c.logger.Info("Uploaded blob", "container", c.containerName, "key", key)
	return nil
}

func (c *AzureBlobDocumentConnector) Download(ctx context.Context, key string) ([]byte, error) {
	resp, err := c.client.DownloadStream(ctx, c.containerName, key, nil)
	if bloberror.HasCode(err, bloberror.BlobNotFound) {
		return nil, fmt.Errorf("blob %s not found: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to download blob %s: %w", key, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return data, nil
}

func (c *AzureBlobDocumentConnector) Delete(ctx context.Context, key string) error {
	_, err := c.client.DeleteBlob(ctx, c.containerName, key, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.BlobNotFound) {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}

	c.logger.Info("Deleted blob", "container", c.containerName, "key", key)
	return nil
}
