package service

import (
	"sync"

	"github.com/notetaker/notetaker/models"
)

// activeSession is the single process-wide session state: the currently
// authenticated account (or none) and its cached note partition. It is
// created once by the composition root and shared by the auth and note
// services; there is no implicit package-level singleton.
type activeSession struct {
	mu      sync.RWMutex
	account *models.Account
	notes   []models.Note
}

func newActiveSession() *activeSession {
	return &activeSession{}
}

func (s *activeSession) set(account models.Account, notes []models.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.account = &account
	s.notes = notes
}

func (s *activeSession) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.account = nil
	s.notes = nil
}

func (s *activeSession) current() (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.account == nil {
		return models.Account{}, false
	}

	return *s.account, true
}

func (s *activeSession) partition() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]models.Note, len(s.notes))
	copy(notes, s.notes)

	return notes
}

func (s *activeSession) addNote(note models.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account == nil {
		return
	}

	s.notes = append(s.notes, note)
}

func (s *activeSession) removeNote(noteID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.notes[:0]
	for _, note := range s.notes {
		if note.NoteID != noteID {
			kept = append(kept, note)
		}
	}
	s.notes = kept
}
