package noteusecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notes/app"
	"notekeep/internal/notes/app/dto"
	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/ports/repositories"
)

func TestCreateNote(t *testing.T) {
	testTitle := "Grocery List"
	testContent := "Milk, Eggs, Bread"
	testTags := []string{"home", "shopping"}

	now := time.Now().UTC()
	createdNote := &entities.Note{
		ID:        "generated-note-id",
		Title:     testTitle,
		Content:   testContent,
		Tags:      testTags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tests := []struct {
		name        string
		req         *dto.CreateNoteRequest
		setupMocks  func(mockRepo *mockNoteRepository)
		expected    *dto.Response
		expectedErr error
	}{
		{
			name: "Success - note created",
			req:  &dto.CreateNoteRequest{Title: testTitle, Content: testContent, Tags: testTags},
			setupMocks: func(mockRepo *mockNoteRepository) {
				mockRepo.On("FindByTitle", mock.Anything, testTitle).Return(nil, nil).Once()
				mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
					return n.Title == testTitle && n.Content == testContent && len(n.Tags) == 2
				})).Return(createdNote, nil).Once()
			},
			expected: &dto.Response{
				Message:    "Note Grocery List created successfully",
				StatusCode: http.StatusOK,
				Data:       createdNote,
			},
		},
		{
			name: "Success - note without content and tags",
			req:  &dto.CreateNoteRequest{Title: testTitle},
			setupMocks: func(mockRepo *mockNoteRepository) {
				mockRepo.On("FindByTitle", mock.Anything, testTitle).Return(nil, nil).Once()
				mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
					return n.Title == testTitle && n.Content == "" && n.Tags == nil
				})).Return(createdNote, nil).Once()
			},
			expected: &dto.Response{
				Message:    "Note Grocery List created successfully",
				StatusCode: http.StatusOK,
				Data:       createdNote,
			},
		},
		{
			name: "Error - title already taken",
			req:  &dto.CreateNoteRequest{Title: testTitle},
			setupMocks: func(mockRepo *mockNoteRepository) {
				mockRepo.On("FindByTitle", mock.Anything, testTitle).Return(createdNote, nil).Once()
			},
			expectedErr: app.ErrNoteAlreadyExists,
		},
		{
			name: "Error - duplicate title race on insert",
			req:  &dto.CreateNoteRequest{Title: testTitle},
			setupMocks: func(mockRepo *mockNoteRepository) {
				mockRepo.On("FindByTitle", mock.Anything, testTitle).Return(nil, nil).Once()
				mockRepo.On("Create", mock.Anything, mock.Anything).
					Return(nil, repositories.ErrDuplicateTitle).Once()
			},
			expectedErr: app.ErrNoteAlreadyExists,
		},
		{
			name: "Error - database error during title check",
			req:  &dto.CreateNoteRequest{Title: testTitle},
			setupMocks: func(mockRepo *mockNoteRepository) {
				mockRepo.On("FindByTitle", mock.Anything, testTitle).
					Return(nil, errors.New("database error")).Once()
			},
			expectedErr: errors.New("failed to check note title"),
		},
		{
			name: "Error - database error during insert",
			req:  &dto.CreateNoteRequest{Title: testTitle},
			setupMocks: func(mockRepo *mockNoteRepository) {
				mockRepo.On("FindByTitle", mock.Anything, testTitle).Return(nil, nil).Once()
				mockRepo.On("Create", mock.Anything, mock.Anything).
					Return(nil, errors.New("database error")).Once()
			},
			expectedErr: errors.New("failed to create note"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mockNoteRepository)
			tt.setupMocks(mockRepo)

			useCase := app.NewNoteUseCase(mockRepo, nil)

			resp, err := useCase.CreateNote(context.Background(), tt.req)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
				if errors.Is(tt.expectedErr, app.ErrNoteAlreadyExists) {
					assert.ErrorIs(t, err, app.ErrNoteAlreadyExists)
				}
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, tt.expected.Message, resp.Message)
				assert.Equal(t, tt.expected.StatusCode, resp.StatusCode)
				assert.Equal(t, tt.expected.Data, resp.Data)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
