package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"sync"

	"eduhub/models"
)

const maxUploadBytes = 10 << 20

// UploadInput is one file selected for upload.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Title       string
	Description string
	Reader      io.Reader
}

// Uploader pushes attachment files to the media endpoint before a file
// form is submitted. Batches run in parallel, one request per file;
// the first failure aborts the batch result. Files that already made
// it to storage are not rolled back.
type Uploader struct {
	api *apiClient
}

func NewUploader(baseURL string, httpClient *http.Client, store *SessionStore) *Uploader {
	return &Uploader{api: newAPIClient(baseURL, httpClient, store)}
}

func validateUpload(in UploadInput) error {
	ct := strings.ToLower(in.ContentType)
	if !strings.HasPrefix(ct, "image/") && ct != "application/pdf" {
		return fmt.Errorf("%s: only images and PDF files can be attached", in.Filename)
	}
	if in.Size > maxUploadBytes {
		return fmt.Errorf("%s: file exceeds the 10MB limit", in.Filename)
	}
	return nil
}

// Upload validates and uploads every input concurrently and returns
// the attachment descriptors in input order.
func (u *Uploader) Upload(ctx context.Context, inputs []UploadInput) ([]models.Attachment, error) {
	if u.api.store.Token() == "" {
		return nil, ErrLoginRequired
	}
	for _, in := range inputs {
		if err := validateUpload(in); err != nil {
			return nil, err
		}
	}

	results := make([]models.Attachment, len(inputs))
	errs := make([]error, len(inputs))

	var wg sync.WaitGroup
	for i := range inputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = u.uploadOne(ctx, inputs[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (u *Uploader) uploadOne(ctx context.Context, in UploadInput) (models.Attachment, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, in.Filename))
	partHeader.Set("Content-Type", in.ContentType)
	part, err := mw.CreatePart(partHeader)
	if err != nil {
		return models.Attachment{}, err
	}
	if _, err := io.Copy(part, in.Reader); err != nil {
		return models.Attachment{}, err
	}
	if in.Title != "" {
		if err := mw.WriteField("title", in.Title); err != nil {
			return models.Attachment{}, err
		}
	}
	if in.Description != "" {
		if err := mw.WriteField("description", in.Description); err != nil {
			return models.Attachment{}, err
		}
	}
	if err := mw.Close(); err != nil {
		return models.Attachment{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.api.baseURL+"/api/media/upload", &body)
	if err != nil {
		return models.Attachment{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token := u.api.store.Token(); token != "" {
		req.Header.Set("x-auth-token", token)
	}

	resp, err := u.api.http.Do(req)
	if err != nil {
		return models.Attachment{}, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return models.Attachment{}, fmt.Errorf("%s: %w", in.Filename, err)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" && env.Error != nil {
			msg = env.Error.Message
		}
		return models.Attachment{}, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	var att models.Attachment
	if err := json.Unmarshal(env.Data, &att); err != nil {
		return models.Attachment{}, fmt.Errorf("%s: %w", in.Filename, err)
	}
	return att, nil
}
