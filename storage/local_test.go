package storage

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemClient(t *testing.T) *LocalClient {
	t.Helper()
	lc, err := NewLocalClient(afero.NewMemMapFs(), "/data/uploads", "http://localhost:8080/")
	require.NoError(t, err)
	return lc
}

func TestLocalClientUploadAndExists(t *testing.T) {
	lc := newMemClient(t)

	require.NoError(t, lc.Upload("abc123.pdf", []byte("%PDF-1.4"), "application/pdf"))

	exists, err := lc.Exists("abc123.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = lc.Exists("missing.pdf")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalClientDelete(t *testing.T) {
	lc := newMemClient(t)
	require.NoError(t, lc.Upload("abc123.png", []byte("png"), "image/png"))

	require.NoError(t, lc.Delete("abc123.png"))
	exists, err := lc.Exists("abc123.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalClientGetURL(t *testing.T) {
	lc := newMemClient(t)
	url, err := lc.GetURL("abc123.pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/abc123.pdf", url)
}

func TestLocalClientHealthCheck(t *testing.T) {
	lc := newMemClient(t)
	assert.NoError(t, lc.HealthCheck())
	assert.Equal(t, "local", lc.ProviderName())
}
