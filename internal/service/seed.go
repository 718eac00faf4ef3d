package service

import (
	"time"

	"github.com/notetaker/notetaker/models"
)

// DemoSeed returns the starting state used whenever no usable snapshot
// exists in local storage: one password-based demo account and one
// welcome note owned by it. The credential is stored encoded, the same
// form SignIn compares against.
func DemoSeed() ([]models.Account, []models.Note) {
	codec := NewCredentialCodec()
	seededAt := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

	accounts := []models.Account{
		{
			AccountID:  "demo_user_1",
			Email:      "demo@example.com",
			Name:       "Demo User",
			AuthKind:   models.AuthKindPassword,
			Credential: codec.Encode("Demo123!"),
			CreatedAt:  seededAt,
		},
	}

	notes := []models.Note{
		{
			NoteID:    "sample_note_1",
			OwnerID:   "demo_user_1",
			Title:     "Welcome to NoteTaker",
			Content:   "This is your first note! You can create, edit, and delete notes here. Start organizing your thoughts!",
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
	}

	return accounts, notes
}
