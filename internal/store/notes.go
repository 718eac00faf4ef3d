package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/notetaker/notetaker/internal/logger"
	"github.com/notetaker/notetaker/models"
)

// noteStore keeps every note of every owner as one JSON snapshot in the
// key-value medium, in creation order. Ownership filtering happens on
// read; the snapshot itself is shared across owners.
type noteStore struct {
	kv     KeyValue
	seed   []models.Note
	logger *logger.Logger

	mu     sync.RWMutex
	loaded bool
	notes  []models.Note
}

// NewNoteStore builds the note repository on top of the key-value
// medium. seed is the collection used when no usable snapshot exists.
func NewNoteStore(kv KeyValue, seed []models.Note, log *logger.Logger) NoteRepository {
	return &noteStore{kv: kv, seed: seed, logger: log}
}

func (s *noteStore) load(ctx context.Context) {
	if s.loaded {
		return
	}

	raw, err := s.kv.Get(ctx, notesKey)
	if err == nil {
		var notes []models.Note
		if jsonErr := json.Unmarshal([]byte(raw), &notes); jsonErr == nil {
			s.notes = notes
			s.loaded = true
			return
		}
		s.logger.Warn().
			Str("func", "noteStore.load").
			Msg("stored notes snapshot is malformed, falling back to seed data")
	}

	s.notes = make([]models.Note, len(s.seed))
	copy(s.notes, s.seed)
	s.loaded = true
}

func (s *noteStore) persist(ctx context.Context) {
	raw, err := json.Marshal(s.notes)
	if err != nil {
		s.logger.Err(err).Str("func", "noteStore.persist").Msg("failed to encode notes snapshot")
		return
	}

	if err = s.kv.Put(ctx, notesKey, string(raw)); err != nil {
		s.logger.Err(err).Str("func", "noteStore.persist").Msg("failed to persist notes snapshot")
	}
}

func (s *noteStore) AllForOwner(ctx context.Context, ownerID string) ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	var notes []models.Note
	for _, note := range s.notes {
		if note.OwnerID == ownerID {
			notes = append(notes, note)
		}
	}

	return notes, nil
}

func (s *noteStore) Add(ctx context.Context, note models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	s.notes = append(s.notes, note)
	s.persist(ctx)

	return nil
}

// Remove deletes the note with the given id. Removing an id that is not
// present is a no-op, not an error.
func (s *noteStore) Remove(ctx context.Context, noteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	kept := s.notes[:0]
	removed := false
	for _, note := range s.notes {
		if note.NoteID == noteID {
			removed = true
			continue
		}
		kept = append(kept, note)
	}
	s.notes = kept

	if removed {
		s.persist(ctx)
	}

	return nil
}
