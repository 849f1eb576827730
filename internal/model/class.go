package model

import "time"

// Class represents a bookable workshop row in the `classes` table. The
// public lookup key is the human-readable Slug, which must be unique and
// is distinct from the numeric primary key. Capacity is tracked as
// MaxSeats with AvailableSeats decremented as registrations come in;
// AvailableSeats is server-derived and clients must treat it as
// read-mostly (it is recomputed on registration and cancellation).
//
// Fields:
//  ID              – primary key identifier.
//  Slug            – unique URL-safe lookup key (e.g. "spring-pruning").
//  Title           – display title.
//  Description     – short description for list views.
//  LongDescription – optional full description for the detail page.
//  Instructor      – who teaches the class.
//  ImageURL        – hero image for the class.
//  Date            – class date as "2006-01-02".
//  Time            – start time as shown to customers (e.g. "10:00 AM").
//  Duration        – human-readable length (e.g. "2 hours").
//  Price           – price in dollars.
//  MaxSeats        – total capacity.
//  AvailableSeats  – seats still open; never below zero.
//  IsFeatured      – surfaces the class on the home page.
//  IsActive        – inactive classes are hidden from the public list.
//  Materials       – ordered list of what to bring (may be empty).
//  Prerequisites   – optional free-text prerequisites.
//  CreatedAt       – row creation timestamp.
//  UpdatedAt       – last update timestamp.
type Class struct {
	ID              uint64    `json:"id,string"`                 // classes.id
	Slug            string    `json:"slug"`                      // classes.slug
	Title           string    `json:"title"`                     // classes.title
	Description     string    `json:"description"`               // classes.description
	LongDescription string    `json:"longDescription,omitempty"` // classes.long_description
	Instructor      string    `json:"instructor"`                // classes.instructor
	ImageURL        string    `json:"imageUrl"`                  // classes.image_url
	Date            string    `json:"date"`                      // classes.class_date
	Time            string    `json:"time"`                      // classes.class_time
	Duration        string    `json:"duration"`                  // classes.duration
	Price           float64   `json:"price"`                     // classes.price
	MaxSeats        int       `json:"maxSeats"`                  // classes.max_seats
	AvailableSeats  int       `json:"availableSeats"`            // classes.available_seats
	IsFeatured      bool      `json:"isFeatured"`                // classes.is_featured
	IsActive        bool      `json:"isActive"`                  // classes.is_active
	Materials       []string  `json:"materials,omitempty"`       // classes.materials (JSON column)
	Prerequisites   string    `json:"prerequisites,omitempty"`   // classes.prerequisites
	CreatedAt       time.Time `json:"-"`                         // classes.created_at
	UpdatedAt       time.Time `json:"-"`                         // classes.updated_at
}
