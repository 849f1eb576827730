package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootandbloom/garden-center/internal/model"
)

func TestPublicStoreFetchReplacesCollectionExactly(t *testing.T) {
	banners := []model.Banner{
		{ID: 1, Title: "B1", IsActive: true},
		{ID: 2, Title: "B2", IsActive: true},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, http.StatusOK, banners)
	}))
	defer srv.Close()

	store := NewPublicStore(NewGateway(srv.URL))
	require.NoError(t, store.FetchBanners(context.Background()))
	require.Len(t, store.Banners(), 2)

	// Second fetch must replace wholesale, never merge.
	banners = []model.Banner{
		{ID: 1, Title: "B1", IsActive: true},
		{ID: 3, Title: "B3", IsActive: true},
	}
	require.NoError(t, store.FetchBanners(context.Background()))
	got := store.Banners()
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, uint64(3), got[1].ID)
	assert.False(t, store.IsLoading())
	assert.Empty(t, store.Err())
}

func TestPublicStoreFailureLeavesPriorState(t *testing.T) {
	failing := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing {
			writeErr(w, http.StatusInternalServerError, "database error")
			return
		}
		writeOK(w, http.StatusOK, []model.Hour{{ID: 1, DayOfWeek: "Monday", OpenTime: "09:00", CloseTime: "17:00"}})
	}))
	defer srv.Close()

	store := NewPublicStore(NewGateway(srv.URL))
	require.NoError(t, store.FetchHours(context.Background()))
	require.Len(t, store.Hours(), 1)

	failing = true
	err := store.FetchHours(context.Background())
	require.Error(t, err)

	assert.Len(t, store.Hours(), 1, "failed refetch must not corrupt prior state")
	assert.Equal(t, "database error", store.Err())
	assert.False(t, store.IsLoading())
}

func TestPublicStoreStaleOverlappingFetchDiscarded(t *testing.T) {
	firstArrived := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(firstArrived)
			<-release
			writeOK(w, http.StatusOK, []model.Hour{{ID: 1, DayOfWeek: "Monday", OpenTime: "09:00", CloseTime: "17:00"}})
			return
		}
		writeOK(w, http.StatusOK, []model.Hour{{ID: 2, DayOfWeek: "Tuesday", OpenTime: "10:00", CloseTime: "18:00"}})
	}))
	defer srv.Close()

	store := NewPublicStore(NewGateway(srv.URL))

	done := make(chan error, 1)
	go func() { done <- store.FetchHours(context.Background()) }()
	<-firstArrived

	// A second fetch completes while the first is still in flight.
	require.NoError(t, store.FetchHours(context.Background()))

	close(release)
	require.NoError(t, <-done)

	got := store.Hours()
	require.Len(t, got, 1)
	assert.Equal(t, uint64(2), got[0].ID, "the late response from the superseded fetch must be discarded")
	assert.False(t, store.IsLoading())
	assert.Empty(t, store.Err())
}

func TestPublicStoreFetchClassDoesNotTouchCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/classes":
			writeOK(w, http.StatusOK, []model.Class{{ID: 1, Slug: "pruning", Title: "Pruning"}})
		case "/v1/classes/composting":
			writeOK(w, http.StatusOK, model.Class{ID: 2, Slug: "composting", Title: "Composting"})
		default:
			writeErr(w, http.StatusNotFound, "class not found")
		}
	}))
	defer srv.Close()

	store := NewPublicStore(NewGateway(srv.URL))
	require.NoError(t, store.FetchClasses(context.Background()))

	cl, err := store.FetchClass(context.Background(), "composting")
	require.NoError(t, err)
	require.NotNil(t, cl)
	assert.Equal(t, "composting", cl.Slug)

	// The shared collection still holds only the listed class.
	require.Len(t, store.Classes(), 1)
	assert.Equal(t, "pruning", store.Classes()[0].Slug)
}

func TestPublicStoreFetchClassUnknownSlug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, http.StatusNotFound, "class not found")
	}))
	defer srv.Close()

	store := NewPublicStore(NewGateway(srv.URL))
	cl, err := store.FetchClass(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, cl)
}

func TestPublicStoreSettingsFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, http.StatusOK, model.Settings{StoreName: "Root & Bloom", Phone: "555-0100"})
	}))
	defer srv.Close()

	store := NewPublicStore(NewGateway(srv.URL))
	require.NoError(t, store.FetchSettings(context.Background()))
	require.NotNil(t, store.Settings())
	assert.Equal(t, "Root & Bloom", store.Settings().StoreName)
}
