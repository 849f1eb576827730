package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootandbloom/garden-center/internal/model"
)

// writeOK writes the server's success envelope.
func writeOK(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

// readJSON decodes a request body in test handlers.
func readJSON(t *testing.T, r *http.Request, v any) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		t.Fatalf("decode request: %v", err)
	}
}

// writeErr writes the server's failure envelope.
func writeErr(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}

func TestGatewayAttachesBearerOnlyWhenSupplied(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		writeOK(w, http.StatusOK, []model.Banner{})
	}))
	defer srv.Close()

	g := NewGateway(srv.URL)
	_, err := g.FetchBanners(context.Background())
	require.NoError(t, err)
	_, err = listResource[model.Banner](context.Background(), g, "/v1/admin/banners", "tok-123")
	require.NoError(t, err)

	require.Len(t, gotAuth, 2)
	assert.Equal(t, "", gotAuth[0])
	assert.Equal(t, "Bearer tok-123", gotAuth[1])
}

func TestGatewayNonJSONResponseIsIntegrationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>not the api</html>"))
	}))
	defer srv.Close()

	g := NewGateway(srv.URL)
	_, err := g.FetchHours(context.Background())
	require.Error(t, err)
	var integ *IntegrationError
	require.ErrorAs(t, err, &integ)
	assert.Equal(t, srv.URL, integ.BaseURL)
	assert.Contains(t, err.Error(), srv.URL)
}

func TestGatewayErrorMessageFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, http.StatusConflict, "slug already exists")
	}))
	defer srv.Close()

	g := NewGateway(srv.URL)
	_, err := g.FetchClasses(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "slug already exists", apiErr.Message)
}

func TestGatewayMessageFieldFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"bad input"}`))
	}))
	defer srv.Close()

	g := NewGateway(srv.URL)
	_, err := g.FetchClasses(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad input", apiErr.Message)
}

func TestGatewayStatusTextFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := NewGateway(srv.URL)
	_, err := g.FetchClasses(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), apiErr.Message)
}

func TestGatewayNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening any more

	g := NewGateway(srv.URL)
	_, err := g.FetchSettings(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network error")
}

func TestGatewayUploadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/admin/uploads", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		body, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "photo.png", hdr.Filename)
		assert.Equal(t, "fake png bytes", string(body))

		writeOK(w, http.StatusCreated, map[string]string{"url": "/uploads/abc123.png"})
	}))
	defer srv.Close()

	g := NewGateway(srv.URL)
	url, err := g.UploadImage(context.Background(), "tok-123", "photo.png", strings.NewReader("fake png bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc123.png", url)
}

func TestGatewayUploadImageRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, http.StatusBadRequest, "unsupported image type")
	}))
	defer srv.Close()

	g := NewGateway(srv.URL)
	_, err := g.UploadImage(context.Background(), "tok-123", "notes.txt", strings.NewReader("plain text"))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "unsupported image type", apiErr.Message)
}

func TestNormalizeAuthAcceptsBothNestings(t *testing.T) {
	wrapped := []byte(`{"success":true,"data":{"token":"t1","user":{"id":"7","email":"a@b.c","name":"A","role":"ADMIN"}}}`)
	tok, user, err := normalizeAuth(wrapped)
	require.NoError(t, err)
	assert.Equal(t, "t1", tok)
	require.NotNil(t, user)
	assert.Equal(t, uint64(7), user.ID)

	flat := []byte(`{"token":"t2","user":{"id":"8","email":"x@y.z","name":"X","role":"STAFF"}}`)
	tok, user, err = normalizeAuth(flat)
	require.NoError(t, err)
	assert.Equal(t, "t2", tok)
	require.NotNil(t, user)
	assert.Equal(t, "STAFF", user.Role)

	_, _, err = normalizeAuth([]byte(`{"success":false,"error":"nope"}`))
	require.Error(t, err)
}
