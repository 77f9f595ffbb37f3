package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsValidObjectID(t *testing.T) {
	assert.True(t, IsValidObjectID(primitive.NewObjectID().Hex()))
	assert.False(t, IsValidObjectID("not-an-id"))
	assert.False(t, IsValidObjectID(""))
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "512 B", FormatFileSize(512))
	assert.Equal(t, "1.0 KB", FormatFileSize(1024))
	assert.Equal(t, "10.0 MB", FormatFileSize(10<<20))
}

func TestAttachmentTypeFor(t *testing.T) {
	assert.Equal(t, "image", AttachmentTypeFor("image/png"))
	assert.Equal(t, "image", AttachmentTypeFor("image/jpeg"))
	assert.Equal(t, "pdf", AttachmentTypeFor("application/pdf"))
	assert.Empty(t, AttachmentTypeFor("video/mp4"))
	assert.Empty(t, AttachmentTypeFor("application/msword"))
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Heading\n\nsome *notes*")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<em>notes</em>")

	out, err = RenderMarkdown("")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenderMarkdownEscapesRawHTML(t *testing.T) {
	out, err := RenderMarkdown("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}
