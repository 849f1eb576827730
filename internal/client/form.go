package client

import (
	"context"
	"strconv"
	"strings"

	"github.com/rootandbloom/garden-center/internal/model"
)

// JoinMaterials flattens a materials list into the single comma-separated
// string shown in the edit form.
func JoinMaterials(materials []string) string {
	return strings.Join(materials, ", ")
}

// SplitMaterials is the inverse of JoinMaterials: it splits on commas,
// trims whitespace and drops empty entries, so an unmodified draft
// reconstructs the original list exactly.
func SplitMaterials(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// EntityForm is the shared edit micro-protocol for resource kinds whose
// draft is the entity itself: StartEdit seeds the draft from an existing
// entity, Cancel discards it, Submit dispatches create or update
// depending on whether an id is being edited.
type EntityForm[T any] struct {
	store     *CollectionStore[T]
	idOf      func(T) uint64
	draft     T
	editingID string
}

// NewBannerForm constructs the banner edit form.
func NewBannerForm(store *CollectionStore[model.Banner]) *EntityForm[model.Banner] {
	return &EntityForm[model.Banner]{store: store, idOf: func(b model.Banner) uint64 { return b.ID }}
}

// NewPageContentForm constructs the page content edit form.
func NewPageContentForm(store *CollectionStore[model.PageContent]) *EntityForm[model.PageContent] {
	return &EntityForm[model.PageContent]{store: store, idOf: func(p model.PageContent) uint64 { return p.ID }}
}

// StartEdit seeds the draft from an existing entity.
func (f *EntityForm[T]) StartEdit(e T) {
	f.draft = e
	f.editingID = formatID(f.idOf(e))
}

// StartCreate resets the draft to the zero value for a new entity.
func (f *EntityForm[T]) StartCreate() {
	var zero T
	f.draft = zero
	f.editingID = ""
}

// Cancel discards the draft and returns to the neutral default.
func (f *EntityForm[T]) Cancel() {
	var zero T
	f.draft = zero
	f.editingID = ""
}

// Draft returns the current draft for display or modification.
func (f *EntityForm[T]) Draft() T { return f.draft }

// SetDraft replaces the current draft.
func (f *EntityForm[T]) SetDraft(d T) { f.draft = d }

// Submit dispatches the draft as a create or update and, on success,
// resets the form.
func (f *EntityForm[T]) Submit(ctx context.Context) error {
	var err error
	if f.editingID == "" {
		err = f.store.Create(ctx, f.draft)
	} else {
		err = f.store.Update(ctx, f.editingID, f.draft)
	}
	if err != nil {
		return err
	}
	f.Cancel()
	return nil
}

// ClassDraft is the editable representation of a Class, with the
// materials list flattened to a comma-separated string for the form.
type ClassDraft struct {
	ID              string
	Slug            string
	Title           string
	Description     string
	LongDescription string
	Instructor      string
	ImageURL        string
	Date            string
	Time            string
	Duration        string
	Price           float64
	MaxSeats        int
	AvailableSeats  int
	IsFeatured      bool
	IsActive        bool
	Materials       string
	Prerequisites   string
}

// ClassDraftFrom seeds a draft from an existing class.
func ClassDraftFrom(c model.Class) ClassDraft {
	return ClassDraft{
		ID:              formatID(c.ID),
		Slug:            c.Slug,
		Title:           c.Title,
		Description:     c.Description,
		LongDescription: c.LongDescription,
		Instructor:      c.Instructor,
		ImageURL:        c.ImageURL,
		Date:            c.Date,
		Time:            c.Time,
		Duration:        c.Duration,
		Price:           c.Price,
		MaxSeats:        c.MaxSeats,
		AvailableSeats:  c.AvailableSeats,
		IsFeatured:      c.IsFeatured,
		IsActive:        c.IsActive,
		Materials:       JoinMaterials(c.Materials),
		Prerequisites:   c.Prerequisites,
	}
}

// Class converts the draft back into the wire shape, re-splitting the
// materials string.
func (d ClassDraft) Class() model.Class {
	return model.Class{
		Slug:            d.Slug,
		Title:           d.Title,
		Description:     d.Description,
		LongDescription: d.LongDescription,
		Instructor:      d.Instructor,
		ImageURL:        d.ImageURL,
		Date:            d.Date,
		Time:            d.Time,
		Duration:        d.Duration,
		Price:           d.Price,
		MaxSeats:        d.MaxSeats,
		AvailableSeats:  d.AvailableSeats,
		IsFeatured:      d.IsFeatured,
		IsActive:        d.IsActive,
		Materials:       SplitMaterials(d.Materials),
		Prerequisites:   d.Prerequisites,
	}
}

// ClassForm is the edit micro-protocol for classes, working through
// ClassDraft rather than the entity itself.
type ClassForm struct {
	store *CollectionStore[model.Class]
	draft ClassDraft
}

// NewClassForm constructs the class edit form.
func NewClassForm(store *CollectionStore[model.Class]) *ClassForm {
	return &ClassForm{store: store}
}

// StartEdit seeds the draft from an existing class.
func (f *ClassForm) StartEdit(c model.Class) { f.draft = ClassDraftFrom(c) }

// StartCreate resets the draft for a new class.
func (f *ClassForm) StartCreate() { f.draft = ClassDraft{} }

// Cancel discards the draft.
func (f *ClassForm) Cancel() { f.draft = ClassDraft{} }

// Draft returns the current draft.
func (f *ClassForm) Draft() ClassDraft { return f.draft }

// SetDraft replaces the current draft.
func (f *ClassForm) SetDraft(d ClassDraft) { f.draft = d }

// Submit dispatches the draft as a create or update.
func (f *ClassForm) Submit(ctx context.Context) error {
	var err error
	if f.draft.ID == "" {
		err = f.store.Create(ctx, f.draft.Class())
	} else {
		err = f.store.Update(ctx, f.draft.ID, f.draft.Class())
	}
	if err != nil {
		return err
	}
	f.Cancel()
	return nil
}

// HourDraft is the editable representation of an Hour. One shared form
// covers both variants; IsSpecial switches which fields are relevant and
// IsClosed suppresses the two time fields.
type HourDraft struct {
	ID          string
	DayOfWeek   string
	OpenTime    string
	CloseTime   string
	IsClosed    bool
	IsSpecial   bool
	SpecialDate string
	SpecialNote string
}

// HourDraftFrom seeds a draft from an existing hour row.
func HourDraftFrom(h model.Hour) HourDraft {
	return HourDraft{
		ID:          formatID(h.ID),
		DayOfWeek:   h.DayOfWeek,
		OpenTime:    h.OpenTime,
		CloseTime:   h.CloseTime,
		IsClosed:    h.IsClosed,
		IsSpecial:   h.IsSpecial,
		SpecialDate: h.SpecialDate,
		SpecialNote: h.SpecialNote,
	}
}

// Hour converts the draft back into the wire shape.
func (d HourDraft) Hour() model.Hour {
	return model.Hour{
		DayOfWeek:   d.DayOfWeek,
		OpenTime:    d.OpenTime,
		CloseTime:   d.CloseTime,
		IsClosed:    d.IsClosed,
		IsSpecial:   d.IsSpecial,
		SpecialDate: d.SpecialDate,
		SpecialNote: d.SpecialNote,
	}
}

// HourForm is the edit micro-protocol for hours. Submit rejects drafts
// that claim to be both regular and special, or neither, before anything
// reaches the network.
type HourForm struct {
	store *CollectionStore[model.Hour]
	draft HourDraft
}

// NewHourForm constructs the hours edit form.
func NewHourForm(store *CollectionStore[model.Hour]) *HourForm {
	return &HourForm{store: store}
}

// StartEdit seeds the draft from an existing hour row.
func (f *HourForm) StartEdit(h model.Hour) { f.draft = HourDraftFrom(h) }

// StartCreate resets the draft for a new row.
func (f *HourForm) StartCreate() { f.draft = HourDraft{} }

// Cancel discards the draft.
func (f *HourForm) Cancel() { f.draft = HourDraft{} }

// Draft returns the current draft.
func (f *HourForm) Draft() HourDraft { return f.draft }

// SetDraft replaces the current draft.
func (f *HourForm) SetDraft(d HourDraft) { f.draft = d }

// Submit validates the draft and dispatches create or update.
func (f *HourForm) Submit(ctx context.Context) error {
	hour := f.draft.Hour()
	if err := hour.Validate(); err != nil {
		return err
	}
	var err error
	if f.draft.ID == "" {
		err = f.store.Create(ctx, hour)
	} else {
		err = f.store.Update(ctx, f.draft.ID, hour)
	}
	if err != nil {
		return err
	}
	f.Cancel()
	return nil
}
