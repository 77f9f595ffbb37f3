package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"eduhub/models"
)

// Errors the managers surface to their callers. The caller maps them to
// presentation (login modal, disabled buttons, inline alerts).
var (
	ErrLoginRequired  = errors.New("login required")
	ErrForbidden      = errors.New("moderator or admin role required")
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	ErrNotConfirmed   = errors.New("deletion was not confirmed")
)

// APIError is a failed envelope decoded from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// apiClient speaks the service's response envelope and stamps the
// session token on every request.
type apiClient struct {
	baseURL string
	http    *http.Client
	store   *SessionStore
}

func newAPIClient(baseURL string, httpClient *http.Client, store *SessionStore) *apiClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		store:   store,
	}
}

type envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Error   *models.APIError `json:"error"`
}

func (a *apiClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := a.store.Token(); token != "" {
		req.Header.Set("x-auth-token", token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "invalid response from server"}
	}

	if !env.Success {
		msg := env.Message
		if msg == "" && env.Error != nil {
			msg = env.Error.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

func (a *apiClient) get(ctx context.Context, path string, out interface{}) error {
	return a.do(ctx, http.MethodGet, path, nil, out)
}

func (a *apiClient) post(ctx context.Context, path string, body, out interface{}) error {
	return a.do(ctx, http.MethodPost, path, body, out)
}

func (a *apiClient) put(ctx context.Context, path string, body, out interface{}) error {
	return a.do(ctx, http.MethodPut, path, body, out)
}

func (a *apiClient) delete(ctx context.Context, path string) error {
	return a.do(ctx, http.MethodDelete, path, nil, nil)
}
