package client

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/rootandbloom/garden-center/internal/model"
)

// PublicStore caches the publicly visible storefront content. Each fetch
// replaces the held value wholesale on success and leaves it untouched on
// failure, so a failed refresh never corrupts previously good state.
//
// Overlapping fetches of the same resource are resolved with a per-resource
// sequence number: only the response matching the latest issued request is
// applied, so a slow stale response can never overwrite a newer one.
type PublicStore struct {
	mu sync.Mutex
	gw *Gateway

	settings *model.Settings
	hours    []model.Hour
	banners  []model.Banner
	classes  []model.Class

	loading int // fetches currently in flight
	errMsg  string

	seqSettings uint64
	seqHours    uint64
	seqBanners  uint64
	seqClasses  uint64
}

// NewPublicStore constructs a PublicStore over the given gateway.
func NewPublicStore(gw *Gateway) *PublicStore {
	if gw == nil {
		panic("nil gateway passed to NewPublicStore")
	}
	return &PublicStore{gw: gw}
}

// FetchSettings loads the store settings singleton.
func (s *PublicStore) FetchSettings(ctx context.Context) error {
	s.mu.Lock()
	s.seqSettings++
	seq := s.seqSettings
	s.loading++
	s.mu.Unlock()

	settings, err := s.gw.FetchSettings(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--
	if seq != s.seqSettings {
		return nil // a newer fetch superseded this one
	}
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.settings = settings
	s.errMsg = ""
	return nil
}

// FetchHours loads the opening hours collection.
func (s *PublicStore) FetchHours(ctx context.Context) error {
	s.mu.Lock()
	s.seqHours++
	seq := s.seqHours
	s.loading++
	s.mu.Unlock()

	hours, err := s.gw.FetchHours(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--
	if seq != s.seqHours {
		return nil
	}
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.hours = hours
	s.errMsg = ""
	return nil
}

// FetchBanners loads the banner collection. Banners are returned as
// stored; visibility is derived per banner with VisibleAt.
func (s *PublicStore) FetchBanners(ctx context.Context) error {
	s.mu.Lock()
	s.seqBanners++
	seq := s.seqBanners
	s.loading++
	s.mu.Unlock()

	banners, err := s.gw.FetchBanners(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--
	if seq != s.seqBanners {
		return nil
	}
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.banners = banners
	s.errMsg = ""
	return nil
}

// FetchClasses loads the active class collection.
func (s *PublicStore) FetchClasses(ctx context.Context) error {
	s.mu.Lock()
	s.seqClasses++
	seq := s.seqClasses
	s.loading++
	s.mu.Unlock()

	classes, err := s.gw.FetchClasses(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--
	if seq != s.seqClasses {
		return nil
	}
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.classes = classes
	s.errMsg = ""
	return nil
}

// FetchClass is a point lookup by slug. It never touches the shared
// classes collection: the result goes straight to the caller, and an
// unknown slug comes back as (nil, nil).
func (s *PublicStore) FetchClass(ctx context.Context, slug string) (*model.Class, error) {
	cl, err := s.gw.FetchClassBySlug(ctx, slug)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return cl, nil
}

// Settings returns the last successfully fetched settings, or nil.
func (s *PublicStore) Settings() *model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Hours returns the last successfully fetched hours.
func (s *PublicStore) Hours() []model.Hour {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hours
}

// Banners returns the last successfully fetched banners.
func (s *PublicStore) Banners() []model.Banner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.banners
}

// Classes returns the last successfully fetched classes.
func (s *PublicStore) Classes() []model.Class {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.classes
}

// IsLoading reports whether any fetch is in flight.
func (s *PublicStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

// Err returns the message of the most recent failed fetch, cleared by the
// next success.
func (s *PublicStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
