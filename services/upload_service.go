package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"eduhub/config"
	"eduhub/models"
	"eduhub/storage"
	"eduhub/utils"

	"github.com/google/uuid"
)

var (
	ErrUploadTooLarge        = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedUploadType = errors.New("only images and PDF documents can be uploaded")
)

// UploadService turns a raw upload into an attachment descriptor. The
// binary lands in the storage backend; only the descriptor travels
// further.
type UploadService struct {
	backend storage.StorageInterface
	maxSize int64
}

func NewUploadService(backend storage.StorageInterface) *UploadService {
	maxSize := int64(10 * 1024 * 1024)
	if config.AppConfig != nil {
		maxSize = config.AppConfig.MaxUploadSize
	}
	return &UploadService{
		backend: backend,
		maxSize: maxSize,
	}
}

// ProcessUpload validates and stores one uploaded file and returns its
// attachment descriptor.
func (us *UploadService) ProcessUpload(fileHeader *multipart.FileHeader, title, description string) (*models.Attachment, error) {
	if fileHeader.Size > us.maxSize {
		return nil, ErrUploadTooLarge
	}

	contentType := fileHeader.Header.Get("Content-Type")
	attachmentType := utils.AttachmentTypeFor(contentType)
	if attachmentType == "" {
		return nil, ErrUnsupportedUploadType
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, us.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > us.maxSize {
		return nil, ErrUploadTooLarge
	}

	publicID := uuid.NewString()
	key := storageKey(publicID, fileHeader.Filename)

	if err := us.backend.Upload(key, data, contentType); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	url, err := us.backend.GetURL(key)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload URL: %w", err)
	}

	return &models.Attachment{
		URL:         url,
		PublicID:    publicID,
		Title:       title,
		Description: description,
		Name:        fileHeader.Filename,
		Type:        attachmentType,
		Size:        int64(len(data)),
	}, nil
}

// DeleteUpload removes a stored object by its public id and name.
func (us *UploadService) DeleteUpload(publicID, name string) error {
	return us.backend.Delete(storageKey(publicID, name))
}

// storageKey derives the object key from the public id so a descriptor
// alone is enough to locate the stored object later.
func storageKey(publicID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return publicID + ext
}
