package client

import (
	"context"
	"net/http"
	"sync"

	"eduhub/models"
)

// Status is the view lifecycle: loading until the initial fetch
// settles, then ready or error. LoginRequired replaces the ad hoc
// "show the login prompt" flag.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusError
	StatusLoginRequired
)

// FolderManager lists and mutates the folders of one category. It is
// the programmatic equivalent of the category's folder page: the
// in-memory folder list is the only model, updated in place after each
// successful mutation.
type FolderManager struct {
	cfg Config
	api *apiClient

	mu         sync.Mutex
	status     Status
	loadErr    error
	role       string
	folders    []models.Folder
	submitting bool
}

// NewFolderManager builds the manager for one category page. baseURL
// points at the content service; httpClient may be nil.
func NewFolderManager(cfg Config, baseURL string, httpClient *http.Client, store *SessionStore) *FolderManager {
	return &FolderManager{
		cfg:    cfg,
		api:    newAPIClient(baseURL, httpClient, store),
		status: StatusLoading,
		role:   models.RoleGuest,
	}
}

// Load resolves the session and fetches the folder list. Without a
// stored token no network call is made at all: the page gates the
// visitor behind a login prompt. A failing identity check is treated
// the same way.
func (fm *FolderManager) Load(ctx context.Context) error {
	fm.mu.Lock()
	fm.status = StatusLoading
	fm.loadErr = nil
	fm.mu.Unlock()

	if fm.api.store.Token() == "" {
		return fm.fail(StatusLoginRequired, ErrLoginRequired)
	}

	me, err := resolveIdentity(ctx, fm.api)
	if err != nil {
		return fm.fail(StatusLoginRequired, ErrLoginRequired)
	}

	var folders []models.Folder
	if err := fm.api.get(ctx, fm.cfg.APIEndpoint+"/folders", &folders); err != nil {
		return fm.fail(StatusError, err)
	}

	fm.mu.Lock()
	fm.status = StatusReady
	fm.role = me.Role
	fm.folders = folders
	fm.mu.Unlock()
	return nil
}

func (fm *FolderManager) fail(status Status, err error) error {
	fm.mu.Lock()
	fm.status = status
	fm.loadErr = err
	fm.mu.Unlock()
	return err
}

// Status returns the view state and the error that produced it.
func (fm *FolderManager) Status() (Status, error) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	return fm.status, fm.loadErr
}

// Role returns the role the identity endpoint reported.
func (fm *FolderManager) Role() string {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	return fm.role
}

// CanModify reports whether mutation controls should render. The
// server re-checks on every call; this only gates presentation.
func (fm *FolderManager) CanModify() bool {
	return models.CanModifyContent(fm.Role())
}

// Folders returns a snapshot of the in-memory list.
func (fm *FolderManager) Folders() []models.Folder {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	out := make([]models.Folder, len(fm.folders))
	copy(out, fm.folders)
	return out
}

// beginSubmit takes the submit lock shared by all mutation forms so a
// double click cannot issue two requests.
func (fm *FolderManager) beginSubmit() error {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	if fm.submitting {
		return ErrSubmitInFlight
	}
	fm.submitting = true
	return nil
}

func (fm *FolderManager) endSubmit() {
	fm.mu.Lock()
	fm.submitting = false
	fm.mu.Unlock()
}

// CreateFolder validates the form, posts it and appends the returned
// folder to the in-memory list.
func (fm *FolderManager) CreateFolder(ctx context.Context, form FolderForm) (*models.Folder, error) {
	if !fm.CanModify() {
		return nil, ErrForbidden
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if err := fm.beginSubmit(); err != nil {
		return nil, err
	}
	defer fm.endSubmit()

	var folder models.Folder
	body := map[string]string{"title": form.Title, "description": form.Description}
	if err := fm.api.post(ctx, fm.cfg.APIEndpoint+"/folders", body, &folder); err != nil {
		return nil, err
	}

	fm.mu.Lock()
	fm.folders = append(fm.folders, folder)
	fm.mu.Unlock()
	return &folder, nil
}

// UpdateFolder validates the form, puts it and replaces the matching
// entry by id.
func (fm *FolderManager) UpdateFolder(ctx context.Context, folderID string, form FolderForm) (*models.Folder, error) {
	if !fm.CanModify() {
		return nil, ErrForbidden
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if err := fm.beginSubmit(); err != nil {
		return nil, err
	}
	defer fm.endSubmit()

	var folder models.Folder
	body := map[string]string{"title": form.Title, "description": form.Description}
	if err := fm.api.put(ctx, fm.cfg.APIEndpoint+"/folders/"+folderID, body, &folder); err != nil {
		return nil, err
	}

	fm.mu.Lock()
	for i := range fm.folders {
		if fm.folders[i].ID == folder.ID {
			fm.folders[i] = folder
			break
		}
	}
	fm.mu.Unlock()
	return &folder, nil
}

// DeleteFolder deletes after confirmation and splices the entry out of
// the in-memory list. There is no undo.
func (fm *FolderManager) DeleteFolder(ctx context.Context, folderID string, confirmed bool) error {
	if !fm.CanModify() {
		return ErrForbidden
	}
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := fm.beginSubmit(); err != nil {
		return err
	}
	defer fm.endSubmit()

	if err := fm.api.delete(ctx, fm.cfg.APIEndpoint+"/folders/"+folderID); err != nil {
		return err
	}

	fm.mu.Lock()
	for i := range fm.folders {
		if fm.folders[i].ID.Hex() == folderID {
			fm.folders = append(fm.folders[:i], fm.folders[i+1:]...)
			break
		}
	}
	fm.mu.Unlock()
	return nil
}

// ExploreRoute returns the client route for a folder's content view.
func (fm *FolderManager) ExploreRoute(folderID string) string {
	return fm.cfg.RoutePath + "/folder/" + folderID
}
