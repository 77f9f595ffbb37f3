package storage

// StorageInterface defines the common interface for media storage
// providers. Attachments are write-once: upload, serve by URL, delete.
type StorageInterface interface {
	Upload(key string, data []byte, contentType string) error
	Delete(key string) error
	Exists(key string) (bool, error)

	// GetURL returns the public URL the descriptor will carry.
	GetURL(key string) (string, error)

	// Provider info
	ProviderName() string
	HealthCheck() error
}
