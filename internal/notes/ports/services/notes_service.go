// Package services defines service interfaces exposed to the HTTP boundary.
package services

import (
	"context"

	"notekeep/internal/notes/app/dto"
	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/domain/queries"
	"notekeep/internal/notes/ports/repositories"
)

// NotesService определяет интерфейс бизнес-логики заметок.
type NotesService interface {
	CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*dto.Response, error)
	FindNoteByID(ctx context.Context, id string) (*entities.Note, error)
	FindNoteByTitle(ctx context.Context, title string) (*entities.Note, error)
	DoesNoteExistByTitle(ctx context.Context, title string) (bool, error)
	FindAll(ctx context.Context, query *queries.NoteQuery) (*queries.NotesPage, error)
	FindTotal(ctx context.Context) (int, error)
	UpdateNoteByID(ctx context.Context, id string, req *dto.UpdateNoteRequest) (*dto.Response, error)
	UpdateNote(ctx context.Context, note *entities.Note, req *dto.UpdateNoteRequest) (*dto.Response, error)
	DeleteNoteByID(ctx context.Context, id string) (*dto.Response, error)
	DeleteNote(ctx context.Context, note *entities.Note) (*dto.Response, error)
	UpdateManyNotes(ctx context.Context, operations []repositories.BulkUpdateOperation) (*repositories.BulkUpdateResult, error)
}
