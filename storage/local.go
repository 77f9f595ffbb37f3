package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// LocalClient stores media on the local file system behind an afero Fs
// so tests can run against an in-memory tree.
type LocalClient struct {
	fs       afero.Fs
	basePath string
	baseURL  string
}

// NewLocalClient creates a local storage client rooted at basePath.
// Uploaded objects are served under baseURL + "/uploads/".
func NewLocalClient(fs afero.Fs, basePath, baseURL string) (*LocalClient, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if basePath == "" {
		basePath = "./uploads"
	}
	if err := fs.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	return &LocalClient{
		fs:       fs,
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload saves data to the local file system
func (lc *LocalClient) Upload(key string, data []byte, contentType string) error {
	fullPath := path.Join(lc.basePath, key)
	if err := lc.fs.MkdirAll(path.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return afero.WriteFile(lc.fs, fullPath, data, 0o644)
}

// Delete removes the object
func (lc *LocalClient) Delete(key string) error {
	return lc.fs.Remove(path.Join(lc.basePath, key))
}

// Exists checks whether the object is present
func (lc *LocalClient) Exists(key string) (bool, error) {
	return afero.Exists(lc.fs, path.Join(lc.basePath, key))
}

// GetURL returns the public URL for the object
func (lc *LocalClient) GetURL(key string) (string, error) {
	return lc.baseURL + "/uploads/" + key, nil
}

func (lc *LocalClient) ProviderName() string {
	return "local"
}

// HealthCheck verifies the base path is writable
func (lc *LocalClient) HealthCheck() error {
	probe := path.Join(lc.basePath, ".healthcheck")
	if err := afero.WriteFile(lc.fs, probe, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("local storage not writable: %w", err)
	}
	return lc.fs.Remove(probe)
}
