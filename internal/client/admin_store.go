package client

import (
	"context"
	"sync"

	"github.com/rootandbloom/garden-center/internal/model"
)

// CollectionStore is the uniform admin mutation store for one resource
// kind. Every successful mutation re-fetches the whole collection rather
// than patching the changed record in place; the displayed list therefore
// always matches server truth, including server-derived fields such as a
// recomputed availableSeats. A failed mutation leaves the collection
// untouched.
//
// Mutations read the bearer token from the session store. A missing token
// makes the mutation a silent no-op guard, not a surfaced error; route
// guards in the dashboard make that case unreachable in practice.
type CollectionStore[T any] struct {
	mu      sync.Mutex
	gw      *Gateway
	session *SessionStore
	path    string

	items     []T
	isLoading bool
	errMsg    string
	seq       uint64
}

func newCollectionStore[T any](gw *Gateway, session *SessionStore, path string) *CollectionStore[T] {
	if gw == nil || session == nil {
		panic("nil dependency passed to collection store")
	}
	return &CollectionStore[T]{gw: gw, session: session, path: path}
}

// NewBannerStore constructs the admin banner store.
func NewBannerStore(gw *Gateway, session *SessionStore) *CollectionStore[model.Banner] {
	return newCollectionStore[model.Banner](gw, session, bannersPath)
}

// NewClassStore constructs the admin class store.
func NewClassStore(gw *Gateway, session *SessionStore) *CollectionStore[model.Class] {
	return newCollectionStore[model.Class](gw, session, classesPath)
}

// NewHourStore constructs the admin hours store.
func NewHourStore(gw *Gateway, session *SessionStore) *CollectionStore[model.Hour] {
	return newCollectionStore[model.Hour](gw, session, hoursPath)
}

// NewPageContentStore constructs the admin page content store.
func NewPageContentStore(gw *Gateway, session *SessionStore) *CollectionStore[model.PageContent] {
	return newCollectionStore[model.PageContent](gw, session, pageContentPath)
}

// FetchAll replaces the collection with the server's current truth.
// Overlapping fetches are sequenced; a stale response is discarded.
func (s *CollectionStore[T]) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.isLoading = true
	token := s.session.Token()
	s.mu.Unlock()

	items, err := listResource[T](ctx, s.gw, s.path, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return nil
	}
	s.isLoading = false
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.items = items
	s.errMsg = ""
	return nil
}

// Create posts a new entity and re-fetches the collection.
func (s *CollectionStore[T]) Create(ctx context.Context, payload T) error {
	token := s.session.Token()
	if token == "" {
		return nil
	}
	if _, err := createResource(ctx, s.gw, s.path, token, payload); err != nil {
		s.setErr(err)
		return err
	}
	return s.FetchAll(ctx)
}

// Update replaces the entity with the given id and re-fetches.
func (s *CollectionStore[T]) Update(ctx context.Context, id string, payload T) error {
	token := s.session.Token()
	if token == "" {
		return nil
	}
	if _, err := updateResource(ctx, s.gw, s.path, token, id, payload); err != nil {
		s.setErr(err)
		return err
	}
	return s.FetchAll(ctx)
}

// Delete removes the entity with the given id and re-fetches.
func (s *CollectionStore[T]) Delete(ctx context.Context, id string) error {
	token := s.session.Token()
	if token == "" {
		return nil
	}
	if err := deleteResource(ctx, s.gw, s.path, token, id); err != nil {
		s.setErr(err)
		return err
	}
	return s.FetchAll(ctx)
}

func (s *CollectionStore[T]) setErr(err error) {
	s.mu.Lock()
	s.errMsg = err.Error()
	s.mu.Unlock()
}

// Items returns the last fetched collection.
func (s *CollectionStore[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

// IsLoading reports whether a fetch is in flight.
func (s *CollectionStore[T]) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// Err returns the most recent error message, cleared on the next
// successful fetch.
func (s *CollectionStore[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// RegistrationStore manages registrations, which support a status
// transition and deletion instead of a generic update.
type RegistrationStore struct {
	*CollectionStore[model.Registration]
}

// NewRegistrationStore constructs the admin registration store.
func NewRegistrationStore(gw *Gateway, session *SessionStore) *RegistrationStore {
	return &RegistrationStore{
		CollectionStore: newCollectionStore[model.Registration](gw, session, registrationsPath),
	}
}

// UpdateStatus transitions a registration's lifecycle state and
// re-fetches the collection. Status must be pending, confirmed or
// cancelled; the seat arithmetic happens server-side.
func (s *RegistrationStore) UpdateStatus(ctx context.Context, id, status string) error {
	token := s.session.Token()
	if token == "" {
		return nil
	}
	if !model.ValidRegistrationStatus(status) {
		return model.ErrBadStatus
	}
	if _, err := s.gw.UpdateRegistrationStatus(ctx, token, id, status); err != nil {
		s.setErr(err)
		return err
	}
	return s.FetchAll(ctx)
}

// SettingsStore manages the settings singleton, which supports only read
// and update.
type SettingsStore struct {
	mu      sync.Mutex
	gw      *Gateway
	session *SessionStore

	settings *model.Settings
	errMsg   string
}

// NewSettingsStore constructs the admin settings store.
func NewSettingsStore(gw *Gateway, session *SessionStore) *SettingsStore {
	if gw == nil || session == nil {
		panic("nil dependency passed to NewSettingsStore")
	}
	return &SettingsStore{gw: gw, session: session}
}

// Fetch loads the settings singleton.
func (s *SettingsStore) Fetch(ctx context.Context) error {
	token := s.session.Token()
	if token == "" {
		return nil
	}
	settings, err := s.gw.AdminSettings(ctx, token)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.settings = settings
	s.errMsg = ""
	return nil
}

// Update validates and saves the settings, keeping the returned copy.
func (s *SettingsStore) Update(ctx context.Context, settings model.Settings) error {
	token := s.session.Token()
	if token == "" {
		return nil
	}
	if err := settings.Validate(); err != nil {
		s.mu.Lock()
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	saved, err := s.gw.UpdateAdminSettings(ctx, token, settings)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.settings = saved
	s.errMsg = ""
	return nil
}

// Settings returns the last fetched settings, or nil.
func (s *SettingsStore) Settings() *model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Err returns the most recent error message.
func (s *SettingsStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
