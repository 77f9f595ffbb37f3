package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduhub/storage"
)

func multipartHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	partHeader.Set("Content-Type", contentType)
	part, err := mw.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/media/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func newTestUploadService(t *testing.T) (*UploadService, *storage.LocalClient) {
	t.Helper()
	backend, err := storage.NewLocalClient(afero.NewMemMapFs(), "/data/uploads", "http://localhost:8080")
	require.NoError(t, err)
	return NewUploadService(backend), backend
}

func TestProcessUpload(t *testing.T) {
	us, backend := newTestUploadService(t)

	header := multipartHeader(t, "paper.pdf", "application/pdf", []byte("%PDF-1.4 content"))
	att, err := us.ProcessUpload(header, "Term paper", "with answers")
	require.NoError(t, err)

	assert.Equal(t, "paper.pdf", att.Name)
	assert.Equal(t, "pdf", att.Type)
	assert.Equal(t, "Term paper", att.Title)
	assert.Equal(t, "with answers", att.Description)
	assert.NotEmpty(t, att.PublicID)
	assert.Equal(t, "http://localhost:8080/uploads/"+att.PublicID+".pdf", att.URL)
	assert.Equal(t, int64(len("%PDF-1.4 content")), att.Size)

	exists, err := backend.Exists(att.PublicID + ".pdf")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProcessUploadRejectsUnsupportedType(t *testing.T) {
	us, _ := newTestUploadService(t)

	header := multipartHeader(t, "movie.mp4", "video/mp4", []byte("mp4"))
	_, err := us.ProcessUpload(header, "", "")
	assert.ErrorIs(t, err, ErrUnsupportedUploadType)
}

func TestProcessUploadRejectsOversizedFile(t *testing.T) {
	us, _ := newTestUploadService(t)
	us.maxSize = 16

	header := multipartHeader(t, "big.pdf", "application/pdf", []byte(strings.Repeat("x", 17)))
	_, err := us.ProcessUpload(header, "", "")
	assert.ErrorIs(t, err, ErrUploadTooLarge)
}

func TestDeleteUpload(t *testing.T) {
	us, backend := newTestUploadService(t)

	header := multipartHeader(t, "cover.png", "image/png", []byte("png-bytes"))
	att, err := us.ProcessUpload(header, "", "")
	require.NoError(t, err)

	require.NoError(t, us.DeleteUpload(att.PublicID, att.Name))
	exists, err := backend.Exists(att.PublicID + ".png")
	require.NoError(t, err)
	assert.False(t, exists)
}
