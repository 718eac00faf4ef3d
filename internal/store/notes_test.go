package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notetaker/notetaker/internal/logger"
	"github.com/notetaker/notetaker/models"
)

func seedNotes() []models.Note {
	created := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	return []models.Note{
		{
			NoteID:    "sample_note_1",
			OwnerID:   "demo_user_1",
			Title:     "Welcome to NoteTaker",
			Content:   "This is your first note!",
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
}

func TestNoteStore_SeedsOnFirstRun(t *testing.T) {
	kv := newFakeKeyValue()
	repo := NewNoteStore(kv, seedNotes(), logger.Nop())

	notes, err := repo.AllForOwner(context.Background(), "demo_user_1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Welcome to NoteTaker", notes[0].Title)
}

func TestNoteStore_AllForOwner_FiltersAndKeepsOrder(t *testing.T) {
	kv := newFakeKeyValue()
	repo := NewNoteStore(kv, nil, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, models.Note{NoteID: "n1", OwnerID: "A", Title: "first"}))
	require.NoError(t, repo.Add(ctx, models.Note{NoteID: "n2", OwnerID: "B", Title: "other"}))
	require.NoError(t, repo.Add(ctx, models.Note{NoteID: "n3", OwnerID: "A", Title: "second"}))

	notesA, err := repo.AllForOwner(ctx, "A")
	require.NoError(t, err)
	require.Len(t, notesA, 2)
	assert.Equal(t, "n1", notesA[0].NoteID)
	assert.Equal(t, "n3", notesA[1].NoteID)

	notesB, err := repo.AllForOwner(ctx, "B")
	require.NoError(t, err)
	require.Len(t, notesB, 1)
	assert.Equal(t, "n2", notesB[0].NoteID)
}

func TestNoteStore_Remove(t *testing.T) {
	kv := newFakeKeyValue()
	repo := NewNoteStore(kv, nil, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, models.Note{NoteID: "n1", OwnerID: "A"}))
	require.NoError(t, repo.Add(ctx, models.Note{NoteID: "n2", OwnerID: "A"}))

	require.NoError(t, repo.Remove(ctx, "n1"))

	notes, err := repo.AllForOwner(ctx, "A")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "n2", notes[0].NoteID)

	var persisted []models.Note
	require.NoError(t, json.Unmarshal([]byte(kv.values[notesKey]), &persisted))
	require.Len(t, persisted, 1)
}

func TestNoteStore_Remove_AbsentIDIsNoOp(t *testing.T) {
	kv := newFakeKeyValue()
	repo := NewNoteStore(kv, seedNotes(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Remove(ctx, "ghost"))

	notes, err := repo.AllForOwner(ctx, "demo_user_1")
	require.NoError(t, err)
	assert.Len(t, notes, 1, "store must be unchanged")
}

func TestNoteStore_SeedsOnCorruptedSnapshot(t *testing.T) {
	kv := newFakeKeyValue()
	kv.values[notesKey] = "[[["

	repo := NewNoteStore(kv, seedNotes(), logger.Nop())

	notes, err := repo.AllForOwner(context.Background(), "demo_user_1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "sample_note_1", notes[0].NoteID)
}
