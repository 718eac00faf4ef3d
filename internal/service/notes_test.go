package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/notetaker/notetaker/internal/logger"
	"github.com/notetaker/notetaker/internal/mock"
	"github.com/notetaker/notetaker/models"
)

func newTestNoteSvc(t *testing.T, ctrl *gomock.Controller) (*NoteService, *mock.MockNoteRepository, *activeSession) {
	t.Helper()

	mockNotes := mock.NewMockNoteRepository(ctrl)

	mockIDs := mock.NewMockIDGenerator(ctrl)
	mockIDs.EXPECT().Generate().Return("note-id-1").AnyTimes()

	session := newActiveSession()
	svc := NewNoteService(mockNotes, mockIDs, session, logger.Nop())

	return svc, mockNotes, session
}

func activeAccount() models.Account {
	return models.Account{
		AccountID: "acc-1",
		Email:     "user@example.com",
		Name:      "Test User",
		AuthKind:  models.AuthKindPassword,
		CreatedAt: time.Now().UTC(),
	}
}

func TestNoteService_Create_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestNoteSvc(t, ctrl)

	_, err := svc.Create(context.Background(), "Title", "Content")
	assert.True(t, errors.Is(err, ErrNoActiveSession))
}

func TestNoteService_Create_BlankFieldsReportedTogether(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, session := newTestNoteSvc(t, ctrl)
	session.set(activeAccount(), nil)

	_, err := svc.Create(context.Background(), "   ", "\t\n")
	require.Error(t, err)

	var validation *ValidationError
	require.True(t, errors.As(err, &validation))
	assert.NotEmpty(t, validation.FieldMessage("title"))
	assert.NotEmpty(t, validation.FieldMessage("content"))
}

func TestNoteService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes, session := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	session.set(activeAccount(), nil)

	mockNotes.EXPECT().Add(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, note models.Note) error {
			assert.Equal(t, "note-id-1", note.NoteID)
			assert.Equal(t, "acc-1", note.OwnerID)
			assert.Equal(t, "Groceries", note.Title)
			assert.Equal(t, "Milk, eggs", note.Content)
			assert.Equal(t, note.CreatedAt, note.UpdatedAt)
			return nil
		},
	)

	note, err := svc.Create(ctx, "Groceries", "Milk, eggs")
	require.NoError(t, err)
	assert.Equal(t, "note-id-1", note.NoteID)

	list := svc.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Groceries", list[0].Title)
}

func TestNoteService_Create_StoreFailureSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes, session := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	session.set(activeAccount(), nil)

	mockNotes.EXPECT().Add(ctx, gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Create(ctx, "Title", "Content")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add note")

	assert.Empty(t, svc.List())
}

func TestNoteService_Delete_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestNoteSvc(t, ctrl)

	err := svc.Delete(context.Background(), "n1")
	assert.True(t, errors.Is(err, ErrNoActiveSession))
}

func TestNoteService_Delete_RemovesOwnedNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes, session := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	owned := models.Note{NoteID: "n1", OwnerID: "acc-1", Title: "First"}
	session.set(activeAccount(), []models.Note{owned})

	mockNotes.EXPECT().Remove(ctx, "n1").Return(nil)

	require.NoError(t, svc.Delete(ctx, "n1"))
	assert.Empty(t, svc.List())
}

func TestNoteService_Delete_OutsidePartitionIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, session := newTestNoteSvc(t, ctrl)
	session.set(activeAccount(), []models.Note{{NoteID: "n1", OwnerID: "acc-1"}})

	// no Remove expected: another owner's note id never reaches the store
	require.NoError(t, svc.Delete(context.Background(), "other-owners-note"))

	assert.Len(t, svc.List(), 1)
}

func TestNoteService_List_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, session := newTestNoteSvc(t, ctrl)
	session.set(activeAccount(), []models.Note{{NoteID: "n1", Title: "Original"}})

	list := svc.List()
	require.Len(t, list, 1)
	list[0].Title = "Mutated"

	fresh := svc.List()
	assert.Equal(t, "Original", fresh[0].Title)
}

func TestNoteService_List_EmptyWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestNoteSvc(t, ctrl)

	assert.Empty(t, svc.List())
}
