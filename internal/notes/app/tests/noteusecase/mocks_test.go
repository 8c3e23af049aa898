package noteusecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/domain/queries"
	"notekeep/internal/notes/ports/repositories"
)

const (
	ErrCreateNote   = "failed to create note"
	ErrFindByID     = "failed to find note by ID"
	ErrFindByTitle  = "failed to find note by title"
	ErrCheckTitle   = "error while checking note title"
	ErrUpdateNote   = "error while updating note"
	ErrDeleteNote   = "error when deleting note"
	ErrListNotes    = "error when listing notes"
	ErrCountNotes   = "error when counting notes"
	ErrBulkUpdate   = "error when bulk updating notes"
	ErrCacheGet     = "error when reading from cache"
	ErrCacheSet     = "error when writing to cache"
	ErrCacheDelete  = "error when deleting from cache"
)

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCreateNote, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Note), nil
}

func (m *mockNoteRepository) FindByID(ctx context.Context, id string) (*entities.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindByID, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Note), nil
}

func (m *mockNoteRepository) FindByTitle(ctx context.Context, title string) (*entities.Note, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindByTitle, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Note), nil
}

func (m *mockNoteRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	if err := args.Error(1); err != nil {
		return false, fmt.Errorf("%s: %w", ErrCheckTitle, err)
	}
	return args.Bool(0), nil
}

func (m *mockNoteRepository) UpdateByID(ctx context.Context, id string, fields repositories.UpdateNoteFields) (*entities.Note, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrUpdateNote, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Note), nil
}

func (m *mockNoteRepository) DeleteByID(ctx context.Context, id string) error {
	if err := m.Called(ctx, id).Error(0); err != nil {
		return fmt.Errorf("%s: %w", ErrDeleteNote, err)
	}
	return nil
}

func (m *mockNoteRepository) GetAll(ctx context.Context, query *queries.NoteQuery) (*queries.NotesPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
		}
		return nil, nil
	}
	return args.Get(0).(*queries.NotesPage), nil
}

func (m *mockNoteRepository) GetTotalCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	if err := args.Error(1); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrCountNotes, err)
	}
	return args.Int(0), nil
}

func (m *mockNoteRepository) BulkUpdate(ctx context.Context, operations []repositories.BulkUpdateOperation) (*repositories.BulkUpdateResult, error) {
	args := m.Called(ctx, operations)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrBulkUpdate, err)
		}
		return nil, nil
	}
	return args.Get(0).(*repositories.BulkUpdateResult), nil
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	if err := args.Error(1); err != nil {
		return "", fmt.Errorf("%s: %w", ErrCacheGet, err)
	}
	return args.String(0), nil
}

func (m *mockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := m.Called(ctx, key, value, ttl).Error(0); err != nil {
		return fmt.Errorf("%s: %w", ErrCacheSet, err)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if err := m.Called(ctx, key).Error(0); err != nil {
		return fmt.Errorf("%s: %w", ErrCacheDelete, err)
	}
	return nil
}

func (m *mockCache) Close() error {
	return m.Called().Error(0)
}
