// Package repositories defines repository interfaces for the notes service.
package repositories

import (
	"context"
	"errors"

	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/domain/queries"
)

// ErrDuplicateTitle возвращается хранилищем при нарушении уникальности
// заголовка. Это единственная ошибка хранилища, которую сервис
// транслирует в конфликт.
var ErrDuplicateTitle = errors.New("note title already exists")

// UpdateNoteFields описывает частичное обновление заметки.
// Только ненулевые указатели записываются в хранилище.
type UpdateNoteFields struct {
	Title   *string
	Content *string
	Tags    *[]string
}

// IsEmpty сообщает, что ни одно поле не задано.
func (f *UpdateNoteFields) IsEmpty() bool {
	return f.Title == nil && f.Content == nil && f.Tags == nil
}

// BulkUpdateOperation - одна независимая операция массового обновления.
type BulkUpdateOperation struct {
	ID     string
	Fields UpdateNoteFields
}

// BulkUpdateResult - итог массового обновления без гарантий атомарности:
// часть операций могла примениться, часть - нет.
type BulkUpdateResult struct {
	Updated int
	Missed  int
	Failed  int
}

// NoteRepository определяет интерфейс хранилища заметок.
// Отсутствие записи выражается как (nil, nil): хранилище не порождает
// бизнес-ошибок, это обязанность сервисного слоя.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	FindByID(ctx context.Context, id string) (*entities.Note, error)
	FindByTitle(ctx context.Context, title string) (*entities.Note, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	UpdateByID(ctx context.Context, id string, fields UpdateNoteFields) (*entities.Note, error)
	DeleteByID(ctx context.Context, id string) error
	GetAll(ctx context.Context, query *queries.NoteQuery) (*queries.NotesPage, error)
	GetTotalCount(ctx context.Context) (int, error)
	BulkUpdate(ctx context.Context, operations []BulkUpdateOperation) (*BulkUpdateResult, error)
}
