// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"notekeep/internal/notes/app/dto"
	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/domain/queries"
	"notekeep/internal/notes/ports/cache"
	"notekeep/internal/notes/ports/repositories"
	"notekeep/pkg/logger"
)

// Ошибки уровня бизнес-логики.
var (
	ErrNoteNotFound      = errors.New("note not found")
	ErrNoteAlreadyExists = errors.New("note already exists")
)

// Шаблоны сообщений конверта ответа. Клиенты разбирают текст сообщений,
// формулировки менять нельзя.
const (
	MsgNoteCreated = "Note %s created successfully"
	MsgNoteUpdated = "Note %s updated successfully"
	MsgNoteDeleted = "All note data %s has been deleted successfully"
)

const noteCacheKeyPrefix = "note:"

// NoteUseCase представляет собой бизнес-логику работы с заметками.
// Хранилище выражает отсутствие записи как (nil, nil); превращение
// отсутствия в ошибку NotFound происходит здесь.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
	cache    cache.Cache
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
// Кэш опционален: nil отключает кэширование.
func NewNoteUseCase(noteRepo repositories.NoteRepository, noteCache cache.Cache) *NoteUseCase {
	return &NoteUseCase{
		noteRepo: noteRepo,
		cache:    noteCache,
	}
}

// CreateNote создает новую заметку. Занятый заголовок - конфликт.
func (uc *NoteUseCase) CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*dto.Response, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.CreateNote"))
	log.Info(ctx, "creating note", zap.String("title", req.Title))

	existing, err := uc.noteRepo.FindByTitle(ctx, req.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to check note title: %w", err)
	}
	if existing != nil {
		log.Warn(ctx, "note already exists", zap.String("title", req.Title))
		return nil, ErrNoteAlreadyExists
	}

	created, err := uc.noteRepo.Create(ctx, entities.NewNote(req.Title, req.Content, req.Tags))
	if err != nil {
		// Уникальное ограничение хранилища закрывает гонку между
		// проверкой заголовка и вставкой.
		if errors.Is(err, repositories.ErrDuplicateTitle) {
			log.Warn(ctx, "note already exists", zap.String("title", req.Title))
			return nil, ErrNoteAlreadyExists
		}
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Info(ctx, "note created", zap.String("noteID", created.ID))

	return &dto.Response{
		Message:    fmt.Sprintf(MsgNoteCreated, created.Title),
		StatusCode: http.StatusOK,
		Data:       created,
	}, nil
}

// FindNoteByID возвращает заметку по идентификатору или ErrNoteNotFound.
func (uc *NoteUseCase) FindNoteByID(ctx context.Context, id string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.FindNoteByID"))

	if note := uc.cachedNote(ctx, id); note != nil {
		return note, nil
	}

	note, err := uc.noteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		log.Warn(ctx, "note not found", zap.String("noteID", id))
		return nil, ErrNoteNotFound
	}

	uc.cacheNote(ctx, note)
	return note, nil
}

// FindNoteByTitle возвращает заметку по точному заголовку или ErrNoteNotFound.
func (uc *NoteUseCase) FindNoteByTitle(ctx context.Context, title string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.FindNoteByTitle"))

	note, err := uc.noteRepo.FindByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		log.Warn(ctx, "note not found", zap.String("title", title))
		return nil, ErrNoteNotFound
	}

	return note, nil
}

// DoesNoteExistByTitle - чистая делегация в хранилище.
func (uc *NoteUseCase) DoesNoteExistByTitle(ctx context.Context, title string) (bool, error) {
	exists, err := uc.noteRepo.ExistsByTitle(ctx, title)
	if err != nil {
		return false, fmt.Errorf("failed to check note title: %w", err)
	}
	return exists, nil
}

// FindAll - чистая делегация выборки в хранилище, без бизнес-правил.
func (uc *NoteUseCase) FindAll(ctx context.Context, query *queries.NoteQuery) (*queries.NotesPage, error) {
	page, err := uc.noteRepo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return page, nil
}

// FindTotal возвращает общее количество заметок.
func (uc *NoteUseCase) FindTotal(ctx context.Context) (int, error) {
	total, err := uc.noteRepo.GetTotalCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return total, nil
}

// UpdateNoteByID разрешает идентификатор и обновляет заметку.
func (uc *NoteUseCase) UpdateNoteByID(ctx context.Context, id string, req *dto.UpdateNoteRequest) (*dto.Response, error) {
	note, err := uc.FindNoteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.UpdateNote(ctx, note, req)
}

// UpdateNote применяет частичное обновление к уже разрешенной заметке.
// Смена заголовка - обычное обновление полей с повторной проверкой
// уникальности относительно других заметок.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, note *entities.Note, req *dto.UpdateNoteRequest) (*dto.Response, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.UpdateNote"))
	log.Info(ctx, "updating note", zap.String("noteID", note.ID))

	if req.Title != nil && *req.Title != note.Title {
		taken, err := uc.noteRepo.ExistsByTitle(ctx, *req.Title)
		if err != nil {
			return nil, fmt.Errorf("failed to check note title: %w", err)
		}
		if taken {
			log.Warn(ctx, "note already exists", zap.String("title", *req.Title))
			return nil, ErrNoteAlreadyExists
		}
	}

	fields := repositories.UpdateNoteFields{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}

	updated, err := uc.noteRepo.UpdateByID(ctx, note.ID, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateTitle) {
			return nil, ErrNoteAlreadyExists
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	if updated == nil {
		log.Warn(ctx, "note not found", zap.String("noteID", note.ID))
		return nil, ErrNoteNotFound
	}

	uc.invalidateNote(ctx, note.ID)

	return &dto.Response{
		Message:    fmt.Sprintf(MsgNoteUpdated, note.Title),
		StatusCode: http.StatusOK,
		Data:       updated,
	}, nil
}

// DeleteNoteByID разрешает идентификатор и удаляет заметку.
func (uc *NoteUseCase) DeleteNoteByID(ctx context.Context, id string) (*dto.Response, error) {
	note, err := uc.FindNoteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.DeleteNote(ctx, note)
}

// DeleteNote удаляет уже разрешенную заметку. Удаление необратимо.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, note *entities.Note) (*dto.Response, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.DeleteNote"))
	log.Info(ctx, "deleting note", zap.String("noteID", note.ID))

	if err := uc.noteRepo.DeleteByID(ctx, note.ID); err != nil {
		return nil, fmt.Errorf("failed to delete note: %w", err)
	}

	uc.invalidateNote(ctx, note.ID)

	log.Info(ctx, "note deleted", zap.String("title", note.Title))

	return &dto.Response{
		Message:    fmt.Sprintf(MsgNoteDeleted, note.Title),
		StatusCode: http.StatusOK,
	}, nil
}

// UpdateManyNotes применяет пакет независимых обновлений без атомарности
// и повторов: итог хранилища передается как есть.
func (uc *NoteUseCase) UpdateManyNotes(ctx context.Context, operations []repositories.BulkUpdateOperation) (*repositories.BulkUpdateResult, error) {
	result, err := uc.noteRepo.BulkUpdate(ctx, operations)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk update notes: %w", err)
	}

	for _, op := range operations {
		uc.invalidateNote(ctx, op.ID)
	}

	return result, nil
}

// cachedNote читает заметку из кэша. Ошибки кэша не фатальны.
func (uc *NoteUseCase) cachedNote(ctx context.Context, id string) *entities.Note {
	if uc.cache == nil {
		return nil
	}

	raw, err := uc.cache.Get(ctx, noteCacheKeyPrefix+id)
	if err != nil || raw == "" {
		return nil
	}

	var note entities.Note
	if err := json.Unmarshal([]byte(raw), &note); err != nil {
		logger.Log(ctx).Warn(ctx, "failed to decode cached note", zap.Error(err))
		return nil
	}
	return &note
}

func (uc *NoteUseCase) cacheNote(ctx context.Context, note *entities.Note) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(note)
	if err != nil {
		return
	}
	// TTL по умолчанию задается конфигурацией кэша.
	_ = uc.cache.Set(ctx, noteCacheKeyPrefix+note.ID, string(raw), 0)
}

func (uc *NoteUseCase) invalidateNote(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	_ = uc.cache.Delete(ctx, noteCacheKeyPrefix+id)
}
