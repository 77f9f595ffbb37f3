package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategoryRegistry(t *testing.T) {
	reg, err := NewCategoryRegistry([]Category{
		{Slug: "grades", Title: "Grades"},
		{Slug: "video-lessons", Title: "Video Lessons", RoutePrefix: "/videos"},
	})
	require.NoError(t, err)

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, "grades", all[0].Slug)
	assert.Equal(t, "/grades", all[0].RoutePrefix, "missing prefix defaults to the slug")
	assert.Equal(t, "/videos", all[1].RoutePrefix)

	cat, ok := reg.Get("video-lessons")
	require.True(t, ok)
	assert.Equal(t, "Video Lessons", cat.Title)

	assert.True(t, reg.Has("grades"))
	assert.False(t, reg.Has("unknown"))
}

func TestNewCategoryRegistryRejectsBadInput(t *testing.T) {
	_, err := NewCategoryRegistry(nil)
	assert.Error(t, err, "empty registry")

	_, err = NewCategoryRegistry([]Category{{Slug: "Bad Slug", Title: "X"}})
	assert.Error(t, err, "slug with spaces and capitals")

	_, err = NewCategoryRegistry([]Category{{Slug: "grades"}})
	assert.Error(t, err, "missing title")

	_, err = NewCategoryRegistry([]Category{
		{Slug: "grades", Title: "A"},
		{Slug: "grades", Title: "B"},
	})
	assert.Error(t, err, "duplicate slug")
}

func TestLoadCategoryRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	yaml := `categories:
  - slug: grades
    title: Grades
    description: Past papers by grade
    section: academics
  - slug: literature
    title: Literature
    route_prefix: /lit
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	reg, err := LoadCategoryRegistry(path)
	require.NoError(t, err)
	require.Len(t, reg.All(), 2)

	cat, ok := reg.Get("literature")
	require.True(t, ok)
	assert.Equal(t, "/lit", cat.RoutePrefix)

	cat, ok = reg.Get("grades")
	require.True(t, ok)
	assert.Equal(t, "academics", cat.Section)
}

func TestLoadCategoryRegistryMissingFile(t *testing.T) {
	_, err := LoadCategoryRegistry(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
