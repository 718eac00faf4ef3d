// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteTaker Authors

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/notetaker/notetaker/internal/logger"
	"github.com/notetaker/notetaker/internal/store"
	"github.com/notetaker/notetaker/models"
)

// NoteService manages the active account's note partition. Every
// operation requires a logged-in account; the partition is never
// visible across accounts.
type NoteService struct {
	notes   store.NoteRepository
	ids     IDGenerator
	session *activeSession
	logger  *logger.Logger
}

// NewNoteService wires the note service over the shared session state.
func NewNoteService(notes store.NoteRepository, ids IDGenerator, session *activeSession, log *logger.Logger) *NoteService {
	return &NoteService{
		notes:   notes,
		ids:     ids,
		session: session,
		logger:  log,
	}
}

// Create adds a note to the active account's partition. Title and
// content must be non-blank after trimming.
func (s *NoteService) Create(ctx context.Context, title, content string) (models.Note, error) {
	account, ok := s.session.current()
	if !ok {
		return models.Note{}, ErrNoActiveSession
	}

	validation := &ValidationError{}
	if strings.TrimSpace(title) == "" {
		validation.add("title", "title is required")
	}
	if strings.TrimSpace(content) == "" {
		validation.add("content", "content is required")
	}
	if validation.hasErrors() {
		return models.Note{}, validation
	}

	now := time.Now().UTC()
	note := models.Note{
		NoteID:    s.ids.Generate(),
		OwnerID:   account.AccountID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.notes.Add(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("add note: %w", err)
	}

	s.session.addNote(note)

	s.logger.Info().
		Str("func", "NoteService.Create").
		Str("note_id", note.NoteID).
		Msg("note created")

	return note, nil
}

// Delete removes a note from the active account's partition. A note id
// outside the partition, including another account's, is a no-op.
func (s *NoteService) Delete(ctx context.Context, noteID string) error {
	if _, ok := s.session.current(); !ok {
		return ErrNoActiveSession
	}

	if !s.ownsNote(noteID) {
		return nil
	}

	if err := s.notes.Remove(ctx, noteID); err != nil {
		return fmt.Errorf("remove note: %w", err)
	}

	s.session.removeNote(noteID)

	s.logger.Info().
		Str("func", "NoteService.Delete").
		Str("note_id", noteID).
		Msg("note deleted")

	return nil
}

// List returns the active account's notes in creation order. Without a
// session the list is empty.
func (s *NoteService) List() []models.Note {
	return s.session.partition()
}

func (s *NoteService) ownsNote(noteID string) bool {
	for _, note := range s.session.partition() {
		if note.NoteID == noteID {
			return true
		}
	}

	return false
}
