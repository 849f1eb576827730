// Package client is the dashboard-side data synchronization layer: a
// typed gateway over the REST API plus the stores that keep local state
// consistent with it. The Gateway is the only type in the package that
// performs network I/O; stores never touch the transport directly.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rootandbloom/garden-center/internal/model"
)

// requestTimeout bounds every gateway call so a hung request can never
// leave a store loading forever.
const requestTimeout = 15 * time.Second

// Gateway wraps the remote API. Each method is a single attempt with no
// retries; expected failures come back as errors, never panics. A bearer
// token is attached whenever the caller supplies one and omitted
// otherwise.
type Gateway struct {
	baseURL string
	httpc   *http.Client
}

// NewGateway constructs a Gateway for the API at baseURL (scheme and
// host, no trailing slash required).
func NewGateway(baseURL string) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

// BaseURL returns the configured API base, mostly for diagnostics.
func (g *Gateway) BaseURL() string { return g.baseURL }

// APIError is a well-formed error response from the API: the request
// reached the server and was refused with a message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// IntegrationError means the response was not JSON at all. That is a
// configuration problem rather than a business failure, typically the
// base URL pointing at a static file server whose fallback page answered
// instead of the API.
type IntegrationError struct {
	BaseURL     string
	ContentType string
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("non-JSON response (%s) from %s: check that the API base URL points at the server", e.ContentType, e.BaseURL)
}

// envelope is the server's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// roundTrip performs one HTTP exchange and enforces the JSON content-type
// guard. It returns the status code and raw body; interpreting the
// envelope is left to the caller because the login endpoint may answer
// in a flat shape.
func (g *Gateway) roundTrip(ctx context.Context, method, path, token string, body any) (int, []byte, error) {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		rdr = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, rdr)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.httpc.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("network error: %w", err)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return 0, nil, &IntegrationError{BaseURL: g.baseURL, ContentType: ct}
	}
	return resp.StatusCode, raw, nil
}

// call performs an envelope-shaped exchange and returns the data payload.
func (g *Gateway) call(ctx context.Context, method, path, token string, body any) (json.RawMessage, error) {
	status, raw, err := g.roundTrip(ctx, method, path, token, body)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(status, raw)
}

// decodeEnvelope interprets a raw response body as the uniform envelope
// and returns the data payload, or an APIError built from the most
// specific message available.
func decodeEnvelope(status int, raw []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("network error: malformed response body: %w", err)
	}
	if status < 200 || status >= 300 || !env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = http.StatusText(status)
		}
		return nil, &APIError{Status: status, Message: msg}
	}
	return env.Data, nil
}

// callAs is call plus decoding of the data payload into T.
func callAs[T any](ctx context.Context, g *Gateway, method, path, token string, body any) (T, error) {
	var out T
	data, err := g.call(ctx, method, path, token, body)
	if err != nil {
		return out, err
	}
	if len(data) == 0 || string(data) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("network error: malformed response payload: %w", err)
	}
	return out, nil
}

// ----- Public reads -----

func (g *Gateway) FetchSettings(ctx context.Context) (*model.Settings, error) {
	return callAs[*model.Settings](ctx, g, http.MethodGet, "/v1/settings", "", nil)
}

func (g *Gateway) FetchHours(ctx context.Context) ([]model.Hour, error) {
	return callAs[[]model.Hour](ctx, g, http.MethodGet, "/v1/hours", "", nil)
}

func (g *Gateway) FetchBanners(ctx context.Context) ([]model.Banner, error) {
	return callAs[[]model.Banner](ctx, g, http.MethodGet, "/v1/banners", "", nil)
}

func (g *Gateway) FetchClasses(ctx context.Context) ([]model.Class, error) {
	return callAs[[]model.Class](ctx, g, http.MethodGet, "/v1/classes", "", nil)
}

func (g *Gateway) FetchClassBySlug(ctx context.Context, slug string) (*model.Class, error) {
	return callAs[*model.Class](ctx, g, http.MethodGet, "/v1/classes/"+slug, "", nil)
}

func (g *Gateway) FetchPageContent(ctx context.Context, page string) ([]model.PageContent, error) {
	return callAs[[]model.PageContent](ctx, g, http.MethodGet, "/v1/page-content/"+page, "", nil)
}

// ----- Public writes -----

func (g *Gateway) CreateRegistration(ctx context.Context, req RegistrationRequest) (*model.Registration, error) {
	return callAs[*model.Registration](ctx, g, http.MethodPost, "/v1/registrations", "", req)
}

func (g *Gateway) SubmitContact(ctx context.Context, msg model.ContactMessage) error {
	_, err := g.call(ctx, http.MethodPost, "/v1/contact", "", msg)
	return err
}

// ----- Auth -----

// Login exchanges credentials for a token and identity. The server
// answers with the wrapped envelope, but older builds answered flat
// {token,user}; normalizeAuth accepts either so downstream code only
// ever sees one canonical shape.
func (g *Gateway) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	status, raw, err := g.roundTrip(ctx, http.MethodPost, "/v1/auth/login", "", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", nil, err
	}
	if status < 200 || status >= 300 {
		var env envelope
		msg := http.StatusText(status)
		if json.Unmarshal(raw, &env) == nil {
			if env.Error != "" {
				msg = env.Error
			} else if env.Message != "" {
				msg = env.Message
			}
		}
		return "", nil, &APIError{Status: status, Message: msg}
	}
	return normalizeAuth(raw)
}

// Me returns the identity behind the token.
func (g *Gateway) Me(ctx context.Context, token string) (*model.User, error) {
	return callAs[*model.User](ctx, g, http.MethodGet, "/v1/auth/me", token, nil)
}

// normalizeAuth decodes a login response in either accepted nesting and
// returns the one canonical (token, user) pair.
func normalizeAuth(raw []byte) (string, *model.User, error) {
	var wrapped struct {
		Success bool        `json:"success"`
		Data    authPayload `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data.Token != "" {
		return wrapped.Data.Token, wrapped.Data.User, nil
	}
	var flat authPayload
	if err := json.Unmarshal(raw, &flat); err == nil && flat.Token != "" {
		return flat.Token, flat.User, nil
	}
	return "", nil, errors.New("login response carried no token")
}

// ----- Admin collections -----

// listResource fetches an admin collection at path.
func listResource[T any](ctx context.Context, g *Gateway, path, token string) ([]T, error) {
	return callAs[[]T](ctx, g, http.MethodGet, path, token, nil)
}

// createResource posts a new entity to an admin collection.
func createResource[T any](ctx context.Context, g *Gateway, path, token string, payload T) (T, error) {
	return callAs[T](ctx, g, http.MethodPost, path, token, payload)
}

// updateResource replaces the entity with the given id.
func updateResource[T any](ctx context.Context, g *Gateway, path, token, id string, payload T) (T, error) {
	return callAs[T](ctx, g, http.MethodPut, path+"/"+id, token, payload)
}

// deleteResource removes the entity with the given id.
func deleteResource(ctx context.Context, g *Gateway, path, token, id string) error {
	_, err := g.call(ctx, http.MethodDelete, path+"/"+id, token, nil)
	return err
}

// ----- Admin singletons and one-offs -----

func (g *Gateway) AdminSettings(ctx context.Context, token string) (*model.Settings, error) {
	return callAs[*model.Settings](ctx, g, http.MethodGet, "/v1/admin/settings", token, nil)
}

func (g *Gateway) UpdateAdminSettings(ctx context.Context, token string, s model.Settings) (*model.Settings, error) {
	return callAs[*model.Settings](ctx, g, http.MethodPut, "/v1/admin/settings", token, s)
}

func (g *Gateway) UpdateRegistrationStatus(ctx context.Context, token, id, status string) (*model.Registration, error) {
	body := map[string]string{"status": status}
	return callAs[*model.Registration](ctx, g, http.MethodPatch, "/v1/admin/registrations/"+id+"/status", token, body)
}

// UploadImage stores an image on the server and returns its public URL.
// The file goes up as multipart form data under the "image" field, which
// is the one request the gateway does not send as JSON.
func (g *Gateway) UploadImage(ctx context.Context, token, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/admin/uploads", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("network error: %w", err)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return "", &IntegrationError{BaseURL: g.baseURL, ContentType: ct}
	}

	data, err := decodeEnvelope(resp.StatusCode, raw)
	if err != nil {
		return "", err
	}
	var out struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("network error: malformed response payload: %w", err)
	}
	return out.URL, nil
}
