package models

import "time"

// Note is a single user note. A note belongs to exactly one account and
// is never reassigned. Notes are created and deleted, never edited in
// place, so UpdatedAt always equals CreatedAt.
type Note struct {
	// NoteID is the opaque unique identifier of the note.
	NoteID string `json:"id"`

	// OwnerID references the AccountID of the owning account.
	// Set at creation and immutable afterwards.
	OwnerID string `json:"owner_id"`

	// Title is the user-entered note title.
	Title string `json:"title"`

	// Content is the user-entered note body.
	Content string `json:"content"`

	// CreatedAt is the note creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt mirrors CreatedAt at construction time.
	UpdatedAt time.Time `json:"updated_at"`
}
