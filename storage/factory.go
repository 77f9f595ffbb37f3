package storage

import (
	"fmt"

	"eduhub/config"

	"github.com/spf13/afero"
)

// NewClient builds the storage backend selected by configuration.
func NewClient(cfg *config.Config) (StorageInterface, error) {
	switch cfg.StorageProvider {
	case "local":
		return NewLocalClient(afero.NewOsFs(), cfg.UploadPath, cfg.PublicBaseURL)
	case "s3":
		return NewS3Client(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage provider: %s", cfg.StorageProvider)
	}
}
