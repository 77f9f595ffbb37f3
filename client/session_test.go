package client

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduhub/models"
)

func TestSessionStoreMissingFile(t *testing.T) {
	store := NewSessionStore(afero.NewMemMapFs(), "/nope/session.json")

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, sess.Token)
	assert.Empty(t, store.Token())
}

func TestSessionStoreRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewSessionStore(fs, "/home/app/session.json")

	err := store.LoginWith("tok-123", &models.User{
		Email: "teacher@example.com",
		Role:  models.RoleModerator,
	})
	require.NoError(t, err)

	// A fresh store over the same filesystem sees the session.
	reopened := NewSessionStore(fs, "/home/app/session.json")
	sess, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", sess.Token)
	assert.Equal(t, "teacher@example.com", sess.UserEmail)
	assert.Equal(t, models.RoleModerator, sess.UserRole)

	require.NoError(t, reopened.Clear())
	sess, err = reopened.Load()
	require.NoError(t, err)
	assert.Empty(t, sess.Token)
}
