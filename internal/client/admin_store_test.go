package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootandbloom/garden-center/internal/model"
)

// bannerServer is an in-memory admin banner API good enough for store
// tests: list, create, update, delete, all requiring a bearer token.
type bannerServer struct {
	mu      sync.Mutex
	nextID  uint64
	banners []model.Banner
	calls   atomic.Int64
}

func (s *bannerServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		if r.Header.Get("Authorization") != "Bearer admin-token" {
			writeErr(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		switch {
		case r.Method == http.MethodGet:
			writeOK(w, http.StatusOK, s.banners)
		case r.Method == http.MethodPost:
			var b model.Banner
			_ = jsonDecode(r, &b)
			s.nextID++
			b.ID = s.nextID
			s.banners = append(s.banners, b)
			writeOK(w, http.StatusCreated, b)
		case r.Method == http.MethodPut:
			id := pathTail(r.URL.Path)
			var b model.Banner
			_ = jsonDecode(r, &b)
			for i := range s.banners {
				if strconv.FormatUint(s.banners[i].ID, 10) == id {
					b.ID = s.banners[i].ID
					s.banners[i] = b
					writeOK(w, http.StatusOK, b)
					return
				}
			}
			writeErr(w, http.StatusNotFound, "banner not found")
		case r.Method == http.MethodDelete:
			id := pathTail(r.URL.Path)
			for i := range s.banners {
				if strconv.FormatUint(s.banners[i].ID, 10) == id {
					s.banners = append(s.banners[:i], s.banners[i+1:]...)
					writeOK(w, http.StatusOK, map[string]bool{"deleted": true})
					return
				}
			}
			writeErr(w, http.StatusNotFound, "banner not found")
		}
	})
}

func jsonDecode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func pathTail(p string) string {
	parts := strings.Split(strings.TrimSuffix(p, "/"), "/")
	return parts[len(parts)-1]
}

func newAuthedStores(t *testing.T, url string) (*SessionStore, *CollectionStore[model.Banner]) {
	t.Helper()
	gw := NewGateway(url)
	storage := &MemoryTokenStorage{}
	require.NoError(t, storage.Save("admin-token"))
	session := NewSessionStore(gw, storage)
	return session, NewBannerStore(gw, session)
}

func TestAdminStoreCreateThenFetchIncludes(t *testing.T) {
	fake := &bannerServer{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	_, store := newAuthedStores(t, srv.URL)
	require.NoError(t, store.Create(context.Background(), model.Banner{Title: "Spring Sale", Type: model.BannerInfo, IsActive: true}))

	// Create re-fetches, so the collection already includes the new banner.
	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Spring Sale", items[0].Title)

	require.NoError(t, store.FetchAll(context.Background()))
	require.Len(t, store.Items(), 1)
}

func TestAdminStoreDeleteThenFetchExcludes(t *testing.T) {
	fake := &bannerServer{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	_, store := newAuthedStores(t, srv.URL)
	require.NoError(t, store.Create(context.Background(), model.Banner{Title: "A", Type: model.BannerInfo}))
	require.NoError(t, store.Create(context.Background(), model.Banner{Title: "B", Type: model.BannerInfo}))
	require.Len(t, store.Items(), 2)

	id := strconv.FormatUint(store.Items()[0].ID, 10)
	require.NoError(t, store.Delete(context.Background(), id))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].Title)
}

func TestAdminStoreUpdateRefetches(t *testing.T) {
	fake := &bannerServer{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	_, store := newAuthedStores(t, srv.URL)
	require.NoError(t, store.Create(context.Background(), model.Banner{Title: "Old", Type: model.BannerInfo}))

	b := store.Items()[0]
	b.Title = "New"
	require.NoError(t, store.Update(context.Background(), strconv.FormatUint(b.ID, 10), b))
	assert.Equal(t, "New", store.Items()[0].Title)
}

func TestAdminStoreMutationFailureLeavesCollection(t *testing.T) {
	fake := &bannerServer{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	_, store := newAuthedStores(t, srv.URL)
	require.NoError(t, store.Create(context.Background(), model.Banner{Title: "Keep", Type: model.BannerInfo}))

	err := store.Delete(context.Background(), "9999")
	require.Error(t, err)
	assert.Equal(t, "banner not found", store.Err())
	require.Len(t, store.Items(), 1, "failed mutation must leave the collection untouched")
	assert.Equal(t, "Keep", store.Items()[0].Title)
}

func TestAdminStoreMissingTokenIsSilentNoOp(t *testing.T) {
	fake := &bannerServer{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	gw := NewGateway(srv.URL)
	session := NewSessionStore(gw, &MemoryTokenStorage{})
	store := NewBannerStore(gw, session)

	require.NoError(t, store.Create(context.Background(), model.Banner{Title: "X"}))
	require.NoError(t, store.Update(context.Background(), "1", model.Banner{}))
	require.NoError(t, store.Delete(context.Background(), "1"))
	assert.Equal(t, int64(0), fake.calls.Load(), "mutations without a token never reach the network")
}

func TestAdminStoreStaleOverlappingFetchDiscarded(t *testing.T) {
	firstArrived := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(firstArrived)
			<-release
			writeOK(w, http.StatusOK, []model.Banner{{ID: 1, Title: "Stale"}})
			return
		}
		writeOK(w, http.StatusOK, []model.Banner{{ID: 2, Title: "Fresh"}})
	}))
	defer srv.Close()

	_, store := newAuthedStores(t, srv.URL)

	done := make(chan error, 1)
	go func() { done <- store.FetchAll(context.Background()) }()
	<-firstArrived

	require.NoError(t, store.FetchAll(context.Background()))

	close(release)
	require.NoError(t, <-done)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Fresh", items[0].Title, "the late response from the superseded fetch must be discarded")
	assert.False(t, store.IsLoading())
}

func TestRegistrationStoreUpdateStatus(t *testing.T) {
	var regs []model.Registration
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case r.Method == http.MethodGet:
			writeOK(w, http.StatusOK, regs)
		case r.Method == http.MethodPatch && strings.HasSuffix(r.URL.Path, "/status"):
			var body struct {
				Status string `json:"status"`
			}
			_ = jsonDecode(r, &body)
			regs[0].Status = body.Status
			writeOK(w, http.StatusOK, regs[0])
		default:
			writeErr(w, http.StatusNotFound, "not found")
		}
	}))
	defer srv.Close()

	regs = []model.Registration{{ID: 5, Name: "Pat", Seats: 2, Status: model.RegistrationPending}}

	gw := NewGateway(srv.URL)
	storage := &MemoryTokenStorage{}
	require.NoError(t, storage.Save("admin-token"))
	store := NewRegistrationStore(gw, NewSessionStore(gw, storage))

	require.NoError(t, store.UpdateStatus(context.Background(), "5", model.RegistrationConfirmed))
	require.Len(t, store.Items(), 1)
	assert.Equal(t, model.RegistrationConfirmed, store.Items()[0].Status)

	err := store.UpdateStatus(context.Background(), "5", "archived")
	require.ErrorIs(t, err, model.ErrBadStatus)
}
