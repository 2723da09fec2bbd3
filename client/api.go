// Package client is the Go port of the app's persistence layer: an HTTP
// client for the note service plus a file-backed local mirror, glued
// together by a gateway that tries the remote first and falls back to
// local storage so the user is never blocked from writing a note.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/riadev/ria-server/model"
)

// APIError is a well-formed error response from the note service. It is
// distinct from transport failures, which never produce an APIError and
// instead trigger the gateway's local fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// API talks to the remote note service. The bearer token is the static
// public key shared by all clients; X-User-Phone carries the tenant key.
type API struct {
	baseURL string
	anonKey string
	httpc   *http.Client
}

func NewAPI(baseURL, anonKey string) *API {
	return &API{
		baseURL: baseURL,
		anonKey: anonKey,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (a *API) Health(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	if err := a.do(ctx, http.MethodGet, "/health", "", nil, &out); err != nil {
		return err
	}
	if out.Status != "ok" {
		return fmt.Errorf("unexpected health status %q", out.Status)
	}
	return nil
}

func (a *API) SendCode(ctx context.Context, phone string) (string, error) {
	body := map[string]string{"phone": phone}
	var out struct {
		DevCode string `json:"devCode"`
	}
	if err := a.do(ctx, http.MethodPost, "/auth/send-code", "", body, &out); err != nil {
		return "", err
	}
	return out.DevCode, nil
}

func (a *API) Register(ctx context.Context, phone, code, nickname string) (*model.User, error) {
	body := map[string]string{"phone": phone, "code": code, "nickname": nickname}
	var out struct {
		User model.User `json:"user"`
	}
	if err := a.do(ctx, http.MethodPost, "/auth/register", "", body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (a *API) Login(ctx context.Context, phone, code string) (*model.User, error) {
	body := map[string]string{"phone": phone, "code": code}
	var out struct {
		User model.User `json:"user"`
	}
	if err := a.do(ctx, http.MethodPost, "/auth/login", "", body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (a *API) ListNotes(ctx context.Context, phone string) ([]model.Note, error) {
	var out struct {
		Notes []model.Note `json:"notes"`
	}
	if err := a.do(ctx, http.MethodGet, "/notes", phone, nil, &out); err != nil {
		return nil, err
	}
	return out.Notes, nil
}

func (a *API) CreateNote(ctx context.Context, phone, content string, tags []string) (*model.Note, error) {
	body := map[string]any{"content": content, "tags": tags}
	var out struct {
		Note model.Note `json:"note"`
	}
	if err := a.do(ctx, http.MethodPost, "/notes", phone, body, &out); err != nil {
		return nil, err
	}
	return &out.Note, nil
}

func (a *API) UpdateNote(ctx context.Context, phone, noteID, content string, tags []string) (*model.Note, error) {
	body := map[string]any{"content": content, "tags": tags}
	var out struct {
		Note model.Note `json:"note"`
	}
	if err := a.do(ctx, http.MethodPut, "/notes/"+noteID, phone, body, &out); err != nil {
		return nil, err
	}
	return &out.Note, nil
}

func (a *API) DeleteNote(ctx context.Context, phone, noteID string) error {
	return a.do(ctx, http.MethodDelete, "/notes/"+noteID, phone, nil, nil)
}

// do sends one request. Transport problems surface as plain errors; any
// HTTP response, success or not, is considered a server answer and error
// statuses become *APIError.
func (a *API) do(ctx context.Context, method, path, phone string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+a.anonKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if phone != "" {
		req.Header.Set("X-User-Phone", phone)
	}

	resp, err := a.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}
		message := string(data)
		if json.Unmarshal(data, &errBody) == nil && errBody.Error != "" {
			message = errBody.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}
