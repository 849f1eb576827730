package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootandbloom/garden-center/internal/model"
)

func TestMaterialsRoundTrip(t *testing.T) {
	original := []string{"soil", "seeds"}
	joined := JoinMaterials(original)
	assert.Equal(t, "soil, seeds", joined)
	assert.Equal(t, original, SplitMaterials(joined))
}

func TestSplitMaterialsTrimsAndDropsEmpties(t *testing.T) {
	assert.Equal(t, []string{"gloves", "pruners"}, SplitMaterials("  gloves ,, pruners , "))
	assert.Nil(t, SplitMaterials(""))
	assert.Nil(t, SplitMaterials(" , ,"))
}

func TestClassDraftRoundTrip(t *testing.T) {
	cl := model.Class{
		ID:        42,
		Slug:      "spring-pruning",
		Title:     "Spring Pruning",
		Materials: []string{"soil", "seeds"},
		MaxSeats:  12,
	}
	draft := ClassDraftFrom(cl)
	assert.Equal(t, "42", draft.ID)
	assert.Equal(t, "soil, seeds", draft.Materials)

	back := draft.Class()
	assert.Equal(t, cl.Materials, back.Materials)
	assert.Equal(t, cl.Slug, back.Slug)
	assert.Equal(t, cl.MaxSeats, back.MaxSeats)
}

func TestClassFormSubmitSendsMaterialsList(t *testing.T) {
	var sent model.Class
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			readJSON(t, r, &sent)
			writeOK(w, http.StatusOK, sent)
		case http.MethodGet:
			writeOK(w, http.StatusOK, []model.Class{sent})
		}
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL)
	storage := &MemoryTokenStorage{}
	require.NoError(t, storage.Save("admin-token"))
	store := NewClassStore(gw, NewSessionStore(gw, storage))
	form := NewClassForm(store)

	form.StartEdit(model.Class{ID: 7, Slug: "herbs", Title: "Herbs", Materials: []string{"soil", "seeds"}, MaxSeats: 8})
	require.NoError(t, form.Submit(context.Background()))

	// Submitting an unmodified draft reproduces the original list exactly.
	assert.Equal(t, []string{"soil", "seeds"}, sent.Materials)

	// Submit resets the form to the neutral draft.
	assert.Equal(t, ClassDraft{}, form.Draft())
}

func TestClassFormCancelDiscardsDraft(t *testing.T) {
	form := NewClassForm(nil)
	form.StartEdit(model.Class{ID: 3, Title: "Terrariums"})
	require.NotEqual(t, ClassDraft{}, form.Draft())
	form.Cancel()
	assert.Equal(t, ClassDraft{}, form.Draft())
}

func TestHourFormRejectsAmbiguousVariant(t *testing.T) {
	form := NewHourForm(nil)

	// Both weekday and special date set.
	form.SetDraft(HourDraft{DayOfWeek: "Monday", IsSpecial: true, SpecialDate: "2026-12-24", OpenTime: "09:00", CloseTime: "12:00"})
	err := form.Submit(context.Background())
	require.ErrorIs(t, err, model.ErrHourVariantAmbiguous)

	// Neither set.
	form.SetDraft(HourDraft{OpenTime: "09:00", CloseTime: "17:00"})
	err = form.Submit(context.Background())
	require.ErrorIs(t, err, model.ErrHourVariantAmbiguous)
}

func TestHourFormSubmitsValidRegularRow(t *testing.T) {
	var sent model.Hour
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			readJSON(t, r, &sent)
			writeOK(w, http.StatusCreated, sent)
		case http.MethodGet:
			writeOK(w, http.StatusOK, []model.Hour{sent})
		}
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL)
	storage := &MemoryTokenStorage{}
	require.NoError(t, storage.Save("admin-token"))
	form := NewHourForm(NewHourStore(gw, NewSessionStore(gw, storage)))

	form.SetDraft(HourDraft{DayOfWeek: "Saturday", OpenTime: "08:00", CloseTime: "16:00"})
	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, "Saturday", sent.DayOfWeek)
}

func TestEntityFormDispatchesCreateVsUpdate(t *testing.T) {
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methods = append(methods, r.Method)
		}
		switch r.Method {
		case http.MethodGet:
			writeOK(w, http.StatusOK, []model.Banner{})
		default:
			writeOK(w, http.StatusOK, model.Banner{})
		}
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL)
	storage := &MemoryTokenStorage{}
	require.NoError(t, storage.Save("admin-token"))
	form := NewBannerForm(NewBannerStore(gw, NewSessionStore(gw, storage)))

	form.StartCreate()
	form.SetDraft(model.Banner{Title: "Fresh"})
	require.NoError(t, form.Submit(context.Background()))

	form.StartEdit(model.Banner{ID: 9, Title: "Existing"})
	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, []string{http.MethodPost, http.MethodPut}, methods)
}
