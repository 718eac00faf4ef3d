package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notetaker/notetaker/models"
)

func TestDemoSeed_AccountSignsInWithDemoPassword(t *testing.T) {
	accounts, _ := DemoSeed()
	require.Len(t, accounts, 1)

	demo := accounts[0]
	assert.Equal(t, "demo_user_1", demo.AccountID)
	assert.Equal(t, "demo@example.com", demo.Email)
	assert.Equal(t, "Demo User", demo.Name)
	assert.Equal(t, models.AuthKindPassword, demo.AuthKind)

	assert.True(t, NewCredentialCodec().Matches("Demo123!", demo.Credential))
}

func TestDemoSeed_WelcomeNoteOwnedByDemoAccount(t *testing.T) {
	accounts, notes := DemoSeed()
	require.Len(t, notes, 1)

	welcome := notes[0]
	assert.Equal(t, "sample_note_1", welcome.NoteID)
	assert.Equal(t, accounts[0].AccountID, welcome.OwnerID)
	assert.Equal(t, "Welcome to NoteTaker", welcome.Title)
	assert.Equal(t, welcome.CreatedAt, welcome.UpdatedAt)
	assert.Equal(t, time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC), welcome.CreatedAt)
}
