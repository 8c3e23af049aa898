package noteusecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notes/app"
	"notekeep/internal/notes/domain/entities"
)

func TestFindNoteByTitle(t *testing.T) {
	testTitle := "Grocery List"
	storedNote := &entities.Note{
		ID:    "note-id-123",
		Title: testTitle,
	}

	tests := []struct {
		name        string
		title       string
		setupMocks  func(mockRepo *mockNoteRepository)
		expected    *entities.Note
		expectedErr error
	}{
		{
			name:  "Success - note found",
			title: testTitle,
			setupMocks: func(mockRepo *mockNoteRepository) {
				mockRepo.On("FindByTitle", mock.Anything, testTitle).Return(storedNote, nil).Once()
			},
			expected: storedNote,
		},
		{
			name:  "Error - note not found",
			title: "Missing Note",
			setupMocks: func(mockRepo *mockNoteRepository) {
				mockRepo.On("FindByTitle", mock.Anything, "Missing Note").Return(nil, nil).Once()
			},
			expectedErr: app.ErrNoteNotFound,
		},
		{
			name:  "Error - database error",
			title: testTitle,
			setupMocks: func(mockRepo *mockNoteRepository) {
				mockRepo.On("FindByTitle", mock.Anything, testTitle).
					Return(nil, errors.New("database error")).Once()
			},
			expectedErr: errors.New("failed to get note"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mockNoteRepository)
			tt.setupMocks(mockRepo)

			useCase := app.NewNoteUseCase(mockRepo, nil)

			note, err := useCase.FindNoteByTitle(context.Background(), tt.title)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
				assert.Nil(t, note)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, note)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDoesNoteExistByTitle(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		setupMocks  func(mockRepo *mockNoteRepository)
		expected    bool
		expectedErr error
	}{
		{
			name:  "Success - note exists",
			title: "Grocery List",
			setupMocks: func(mockRepo *mockNoteRepository) {
				mockRepo.On("ExistsByTitle", mock.Anything, "Grocery List").Return(true, nil).Once()
			},
			expected: true,
		},
		{
			name:  "Success - note does not exist",
			title: "Missing Note",
			setupMocks: func(mockRepo *mockNoteRepository) {
				mockRepo.On("ExistsByTitle", mock.Anything, "Missing Note").Return(false, nil).Once()
			},
			expected: false,
		},
		{
			name:  "Error - database error",
			title: "Grocery List",
			setupMocks: func(mockRepo *mockNoteRepository) {
				mockRepo.On("ExistsByTitle", mock.Anything, "Grocery List").
					Return(false, errors.New("database error")).Once()
			},
			expectedErr: errors.New("failed to check note title"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mockNoteRepository)
			tt.setupMocks(mockRepo)

			useCase := app.NewNoteUseCase(mockRepo, nil)

			exists, err := useCase.DoesNoteExistByTitle(context.Background(), tt.title)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
				assert.False(t, exists)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, exists)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
