package connector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"
)

// LocalDocumentConnector keeps documents under a directory of the local filesystem.
type LocalDocumentConnector struct {
	root   string
	logger logger.Logger
}

// NewLocalDocumentConnector creates root when missing.
func NewLocalDocumentConnector(root string, logger logger.Logger) (*LocalDocumentConnector, error) {
	if root == "" {
		return nil, errors.New("local document directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create document directory: %w", err)
	}
	return &LocalDocumentConnector{root: root, logger: logger}, nil
}

// path resolves key inside root and rejects keys that escape it.
func (c *LocalDocumentConnector) path(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == "." || filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid document key %q", key)
	}
	return filepath.Join(c.root, cleaned), nil
}

// Upload writes r to a temporary file first, then moves it into place.
func (c *LocalDocumentConnector) Upload(ctx context.Context, key string, r io.Reader, contentType string) error {
	target, err := c.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}

	c.logger.Info("Stored document", "key", key, "content_type", contentType)
	return nil
}

func (c *LocalDocumentConnector) Download(ctx context.Context, key string) ([]byte, error) {
	target, err := c.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("document %s not found: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

func (c *LocalDocumentConnector) Delete(ctx context.Context, key string) error {
	target, err := c.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	c.logger.Info("Deleted document", "key", key)
	return nil
}
