package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eduhub/models"
)

func writeEnvelope(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.APIResponse{
		Success:   status < 400,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func testSession(t *testing.T, role string) *SessionStore {
	t.Helper()
	store := NewSessionStore(afero.NewMemMapFs(), "/session.json")
	if role != "" {
		err := store.LoginWith("test-token", &models.User{
			Email: "teacher@example.com",
			Role:  role,
		})
		require.NoError(t, err)
	}
	return store
}

func gradesConfig() Config {
	return ConfigForCategory(models.Category{
		Slug:        "grades",
		Title:       "Grades",
		RoutePrefix: "/grades",
	})
}

type contentServer struct {
	*httptest.Server
	requests atomic.Int64
	folders  []models.Folder
	me       models.User
}

func newContentServer(t *testing.T, role string) *contentServer {
	t.Helper()
	cs := &contentServer{
		me: models.User{
			ID:       primitive.NewObjectID(),
			FullName: "Test Teacher",
			Email:    "teacher@example.com",
			Role:     role,
			IsActive: true,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		cs.requests.Add(1)
		if r.Header.Get("x-auth-token") == "" {
			writeEnvelope(w, http.StatusUnauthorized, nil)
			return
		}
		writeEnvelope(w, http.StatusOK, cs.me)
	})
	mux.HandleFunc("/api/grades/folders", func(w http.ResponseWriter, r *http.Request) {
		cs.requests.Add(1)
		switch r.Method {
		case http.MethodGet:
			writeEnvelope(w, http.StatusOK, cs.folders)
		case http.MethodPost:
			var req models.FolderRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			folder := models.Folder{
				ID:          primitive.NewObjectID(),
				Category:    "grades",
				Title:       req.Title,
				Description: req.Description,
				CreatedAt:   time.Now(),
			}
			cs.folders = append(cs.folders, folder)
			writeEnvelope(w, http.StatusCreated, folder)
		}
	})
	mux.HandleFunc("/api/grades/folders/", func(w http.ResponseWriter, r *http.Request) {
		cs.requests.Add(1)
		if r.Method == http.MethodDelete {
			writeEnvelope(w, http.StatusOK, nil)
			return
		}
		writeEnvelope(w, http.StatusOK, nil)
	})

	cs.Server = httptest.NewServer(mux)
	t.Cleanup(cs.Close)
	return cs
}

func TestFolderManagerLoadWithoutSession(t *testing.T) {
	cs := newContentServer(t, models.RoleAdmin)
	fm := NewFolderManager(gradesConfig(), cs.URL, nil, testSession(t, ""))

	err := fm.Load(context.Background())
	require.ErrorIs(t, err, ErrLoginRequired)

	status, loadErr := fm.Status()
	assert.Equal(t, StatusLoginRequired, status)
	assert.ErrorIs(t, loadErr, ErrLoginRequired)

	// The gate fires before any request goes out.
	assert.Zero(t, cs.requests.Load())
}

func TestFolderManagerLoad(t *testing.T) {
	cs := newContentServer(t, models.RoleAdmin)
	cs.folders = []models.Folder{
		{ID: primitive.NewObjectID(), Category: "grades", Title: "Grade 10"},
		{ID: primitive.NewObjectID(), Category: "grades", Title: "Grade 11"},
	}

	fm := NewFolderManager(gradesConfig(), cs.URL, nil, testSession(t, models.RoleAdmin))
	require.NoError(t, fm.Load(context.Background()))

	status, _ := fm.Status()
	assert.Equal(t, StatusReady, status)
	assert.True(t, fm.CanModify())

	folders := fm.Folders()
	require.Len(t, folders, 2)
	assert.Equal(t, "Grade 10", folders[0].Title)
}

func TestFolderManagerStudentCannotModify(t *testing.T) {
	cs := newContentServer(t, models.RoleStudent)
	fm := NewFolderManager(gradesConfig(), cs.URL, nil, testSession(t, models.RoleStudent))
	require.NoError(t, fm.Load(context.Background()))

	assert.False(t, fm.CanModify())

	_, err := fm.CreateFolder(context.Background(), FolderForm{Title: "x", Description: "y"})
	assert.ErrorIs(t, err, ErrForbidden)

	err = fm.DeleteFolder(context.Background(), primitive.NewObjectID().Hex(), true)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestFolderManagerCreateAppends(t *testing.T) {
	cs := newContentServer(t, models.RoleModerator)
	fm := NewFolderManager(gradesConfig(), cs.URL, nil, testSession(t, models.RoleModerator))
	require.NoError(t, fm.Load(context.Background()))

	created, err := fm.CreateFolder(context.Background(), FolderForm{
		Title:       "Grade 12",
		Description: "Advanced level",
	})
	require.NoError(t, err)
	assert.Equal(t, "Grade 12", created.Title)

	folders := fm.Folders()
	require.Len(t, folders, 1)
	assert.Equal(t, created.ID, folders[0].ID)
}

func TestFolderManagerCreateRejectsInvalidForm(t *testing.T) {
	cs := newContentServer(t, models.RoleAdmin)
	fm := NewFolderManager(gradesConfig(), cs.URL, nil, testSession(t, models.RoleAdmin))
	require.NoError(t, fm.Load(context.Background()))

	before := cs.requests.Load()
	_, err := fm.CreateFolder(context.Background(), FolderForm{Title: "  "})
	assert.Error(t, err)
	assert.Equal(t, before, cs.requests.Load(), "invalid form must not reach the server")
}

func TestFolderManagerDelete(t *testing.T) {
	cs := newContentServer(t, models.RoleAdmin)
	keep := models.Folder{ID: primitive.NewObjectID(), Category: "grades", Title: "Grade 10"}
	doomed := models.Folder{ID: primitive.NewObjectID(), Category: "grades", Title: "Grade 11"}
	cs.folders = []models.Folder{keep, doomed}

	fm := NewFolderManager(gradesConfig(), cs.URL, nil, testSession(t, models.RoleAdmin))
	require.NoError(t, fm.Load(context.Background()))

	err := fm.DeleteFolder(context.Background(), doomed.ID.Hex(), false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Len(t, fm.Folders(), 2)

	require.NoError(t, fm.DeleteFolder(context.Background(), doomed.ID.Hex(), true))
	folders := fm.Folders()
	require.Len(t, folders, 1)
	assert.Equal(t, keep.ID, folders[0].ID)
}

func TestFolderManagerSubmitLock(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, models.User{
			ID:       primitive.NewObjectID(),
			Role:     models.RoleAdmin,
			IsActive: true,
		})
	})
	mux.HandleFunc("/api/grades/folders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeEnvelope(w, http.StatusOK, []models.Folder{})
			return
		}
		entered <- struct{}{}
		<-release
		writeEnvelope(w, http.StatusCreated, models.Folder{
			ID:       primitive.NewObjectID(),
			Category: "grades",
			Title:    "Slow",
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	fm := NewFolderManager(gradesConfig(), srv.URL, nil, testSession(t, models.RoleAdmin))
	require.NoError(t, fm.Load(context.Background()))

	errCh := make(chan error, 1)
	go func() {
		_, err := fm.CreateFolder(context.Background(), FolderForm{Title: "Slow", Description: "d"})
		errCh <- err
	}()

	// Second submit while the first is held open by the server.
	<-entered
	_, err := fm.CreateFolder(context.Background(), FolderForm{Title: "Double click", Description: "d"})
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-errCh)
	assert.Len(t, fm.Folders(), 1)
}

func TestFolderManagerExploreRoute(t *testing.T) {
	fm := NewFolderManager(gradesConfig(), "http://localhost", nil, testSession(t, ""))
	id := primitive.NewObjectID().Hex()
	assert.Equal(t, "/grades/folder/"+id, fm.ExploreRoute(id))
}
