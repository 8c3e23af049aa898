package notes_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"notekeep/internal/notes/app/dto"
	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/domain/queries"
	"notekeep/internal/notes/ports/repositories"
)

type mockNotesService struct {
	mock.Mock
}

func (m *mockNotesService) CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*dto.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Response), args.Error(1)
}

func (m *mockNotesService) FindNoteByID(ctx context.Context, id string) (*entities.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNotesService) FindNoteByTitle(ctx context.Context, title string) (*entities.Note, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNotesService) DoesNoteExistByTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	return args.Bool(0), args.Error(1)
}

func (m *mockNotesService) FindAll(ctx context.Context, query *queries.NoteQuery) (*queries.NotesPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.NotesPage), args.Error(1)
}

func (m *mockNotesService) FindTotal(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockNotesService) UpdateNoteByID(ctx context.Context, id string, req *dto.UpdateNoteRequest) (*dto.Response, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Response), args.Error(1)
}

func (m *mockNotesService) UpdateNote(ctx context.Context, note *entities.Note, req *dto.UpdateNoteRequest) (*dto.Response, error) {
	args := m.Called(ctx, note, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Response), args.Error(1)
}

func (m *mockNotesService) DeleteNoteByID(ctx context.Context, id string) (*dto.Response, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Response), args.Error(1)
}

func (m *mockNotesService) DeleteNote(ctx context.Context, note *entities.Note) (*dto.Response, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Response), args.Error(1)
}

func (m *mockNotesService) UpdateManyNotes(ctx context.Context, operations []repositories.BulkUpdateOperation) (*repositories.BulkUpdateResult, error) {
	args := m.Called(ctx, operations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.BulkUpdateResult), args.Error(1)
}
