package client

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"eduhub/models"
)

// ErrFileNotFound is returned by Details for an id outside the loaded
// list.
var ErrFileNotFound = errors.New("file not found in this folder")

// FolderView lists and mutates the files of one folder. Folder metadata
// and the file list are fetched concurrently on load; afterwards the
// in-memory file list is the only model.
type FolderView struct {
	cfg      Config
	folderID string
	api      *apiClient

	mu         sync.Mutex
	status     Status
	loadErr    error
	role       string
	folder     *models.Folder
	files      []models.File
	submitting bool
}

func NewFolderView(cfg Config, folderID, baseURL string, httpClient *http.Client, store *SessionStore) *FolderView {
	return &FolderView{
		cfg:      cfg,
		folderID: folderID,
		api:      newAPIClient(baseURL, httpClient, store),
		status:   StatusLoading,
		role:     models.RoleGuest,
	}
}

// Load requires a session and fetches folder metadata and the file
// list concurrently. An unauthenticated visitor is bounced before any
// content fetch, same policy as the folder manager.
func (fv *FolderView) Load(ctx context.Context) error {
	fv.mu.Lock()
	fv.status = StatusLoading
	fv.loadErr = nil
	fv.mu.Unlock()

	if fv.api.store.Token() == "" {
		return fv.fail(StatusLoginRequired, ErrLoginRequired)
	}

	me, err := resolveIdentity(ctx, fv.api)
	if err != nil {
		return fv.fail(StatusLoginRequired, ErrLoginRequired)
	}

	var (
		wg      sync.WaitGroup
		folder  models.Folder
		files   []models.File
		metaErr error
		listErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		metaErr = fv.api.get(ctx, fv.cfg.APIEndpoint+"/folders/"+fv.folderID, &folder)
	}()
	go func() {
		defer wg.Done()
		listErr = fv.api.get(ctx, fv.cfg.APIEndpoint+"/folders/"+fv.folderID+"/files", &files)
	}()
	wg.Wait()

	if metaErr != nil {
		return fv.fail(StatusError, metaErr)
	}
	if listErr != nil {
		return fv.fail(StatusError, listErr)
	}

	fv.mu.Lock()
	fv.status = StatusReady
	fv.role = me.Role
	fv.folder = &folder
	fv.files = files
	fv.mu.Unlock()
	return nil
}

func (fv *FolderView) fail(status Status, err error) error {
	fv.mu.Lock()
	fv.status = status
	fv.loadErr = err
	fv.mu.Unlock()
	return err
}

func (fv *FolderView) Status() (Status, error) {
	fv.mu.Lock()
	defer fv.mu.Unlock()
	return fv.status, fv.loadErr
}

func (fv *FolderView) Role() string {
	fv.mu.Lock()
	defer fv.mu.Unlock()
	return fv.role
}

func (fv *FolderView) CanModify() bool {
	return models.CanModifyContent(fv.Role())
}

// Folder returns the loaded folder metadata, nil before Load settles.
func (fv *FolderView) Folder() *models.Folder {
	fv.mu.Lock()
	defer fv.mu.Unlock()
	return fv.folder
}

// Files returns a snapshot of the in-memory list.
func (fv *FolderView) Files() []models.File {
	fv.mu.Lock()
	defer fv.mu.Unlock()
	out := make([]models.File, len(fv.files))
	copy(out, fv.files)
	return out
}

// Details returns one loaded file for the read-only details view. Pure
// lookup, no server interaction.
func (fv *FolderView) Details(fileID string) (*models.File, error) {
	fv.mu.Lock()
	defer fv.mu.Unlock()
	for i := range fv.files {
		if fv.files[i].ID.Hex() == fileID {
			f := fv.files[i]
			return &f, nil
		}
	}
	return nil, ErrFileNotFound
}

func (fv *FolderView) beginSubmit() error {
	fv.mu.Lock()
	defer fv.mu.Unlock()
	if fv.submitting {
		return ErrSubmitInFlight
	}
	fv.submitting = true
	return nil
}

func (fv *FolderView) endSubmit() {
	fv.mu.Lock()
	fv.submitting = false
	fv.mu.Unlock()
}

func (fv *FolderView) filePayload(form FileForm, links []models.SourceLink) map[string]interface{} {
	return map[string]interface{}{
		"folderId":    fv.folderID,
		"title":       form.Title,
		"description": form.Description,
		"content":     form.Content,
		"attachments": form.Attachments,
		"sourceLinks": links,
	}
}

// CreateFile validates the form (including the attachment-or-link
// rule), posts it and appends the returned file to the in-memory list.
func (fv *FolderView) CreateFile(ctx context.Context, form FileForm) (*models.File, error) {
	if !fv.CanModify() {
		return nil, ErrForbidden
	}
	links, err := form.Validate()
	if err != nil {
		return nil, err
	}
	if err := fv.beginSubmit(); err != nil {
		return nil, err
	}
	defer fv.endSubmit()

	var file models.File
	if err := fv.api.post(ctx, fv.cfg.APIEndpoint+"/files", fv.filePayload(form, links), &file); err != nil {
		return nil, err
	}

	fv.mu.Lock()
	fv.files = append(fv.files, file)
	fv.mu.Unlock()
	return &file, nil
}

// UpdateFile validates the form, puts it and replaces the matching
// entry by id.
func (fv *FolderView) UpdateFile(ctx context.Context, fileID string, form FileForm) (*models.File, error) {
	if !fv.CanModify() {
		return nil, ErrForbidden
	}
	links, err := form.Validate()
	if err != nil {
		return nil, err
	}
	if err := fv.beginSubmit(); err != nil {
		return nil, err
	}
	defer fv.endSubmit()

	var file models.File
	if err := fv.api.put(ctx, fv.cfg.APIEndpoint+"/files/"+fileID, fv.filePayload(form, links), &file); err != nil {
		return nil, err
	}

	fv.mu.Lock()
	for i := range fv.files {
		if fv.files[i].ID == file.ID {
			fv.files[i] = file
			break
		}
	}
	fv.mu.Unlock()
	return &file, nil
}

// DeleteFile deletes after confirmation and splices the entry out of
// the in-memory list.
func (fv *FolderView) DeleteFile(ctx context.Context, fileID string, confirmed bool) error {
	if !fv.CanModify() {
		return ErrForbidden
	}
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := fv.beginSubmit(); err != nil {
		return err
	}
	defer fv.endSubmit()

	if err := fv.api.delete(ctx, fv.cfg.APIEndpoint+"/files/"+fileID); err != nil {
		return err
	}

	fv.mu.Lock()
	for i := range fv.files {
		if fv.files[i].ID.Hex() == fileID {
			fv.files = append(fv.files[:i], fv.files[i+1:]...)
			break
		}
	}
	fv.mu.Unlock()
	return nil
}
