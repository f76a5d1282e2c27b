package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/erp/storefront/internal/application/store"
	"github.com/erp/storefront/internal/domain/shared"
	"github.com/erp/storefront/internal/infrastructure/logger"
	"github.com/erp/storefront/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
)

// FileStore saves and loads datasets as indented JSON documents on the local filesystem
type FileStore struct {
	perm fs.FileMode
}

// NewFileStore creates a new FileStore
func NewFileStore() *FileStore {
	return &FileStore{perm: 0o644}
}

// Ensure FileStore implements store.SnapshotStore
var _ store.SnapshotStore = (*FileStore)(nil)

// Save writes the dataset to path, replacing any existing file.
// The document is written to a temporary file in the same directory and
// renamed into place so a failed write never truncates the previous data.
func (s *FileStore) Save(ctx context.Context, path string, dataset *store.Dataset) error {
	log := logger.L(ctx).With(zap.String("path", path))

	data, err := json.MarshalIndent(models.DocumentFromDataset(dataset), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}
	data = append(data, '\n')

	if err := s.writeAtomically(path, data); err != nil {
		log.Error("Failed to save data file", zap.Error(err))
		return err
	}

	log.Info("Data saved",
		zap.Int("products", len(dataset.Products)),
		zap.Int("customers", len(dataset.Customers)),
		zap.Int("orders", len(dataset.Orders)),
	)
	return nil
}

// Load reads the dataset stored at path. A missing file yields an error
// wrapping fs.ErrNotExist; an unreadable document yields a ParseError.
func (s *FileStore) Load(ctx context.Context, path string) (*store.Dataset, error) {
	log := logger.L(ctx).With(zap.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("Data file not found, keeping current data")
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn("Data file is not valid JSON", zap.Error(err))
		return nil, shared.NewParseError("Invalid data file", err)
	}

	dataset, err := doc.ToDataset()
	if err != nil {
		log.Warn("Data file failed validation", zap.Error(err))
		return nil, err
	}

	log.Info("Data loaded",
		zap.Int("products", len(dataset.Products)),
		zap.Int("customers", len(dataset.Customers)),
		zap.Int("orders", len(dataset.Orders)),
	)
	return dataset, nil
}

func (s *FileStore) writeAtomically(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, s.perm); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}

	committed = true
	return nil
}
