// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/notes/adapters/http/middleware"
	"notekeep/internal/notes/app"
	"notekeep/internal/notes/app/dto"
	"notekeep/internal/notes/domain/queries"
	"notekeep/internal/notes/ports/services"
	"notekeep/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidQuery       = "invalid query parameters"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgEmptyTitle         = "title is required"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	notesService services.NotesService
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notesService services.NotesService) *Handler {
	return &Handler{
		notesService: notesService,
	}
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	reqCtx := middleware.RequestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(reqCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(reqCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidRequestBody)
	}

	if req.Title == "" {
		log.Error(reqCtx, ErrMsgEmptyTitle)
		return badRequest(ctx, ErrMsgEmptyTitle)
	}

	resp, err := h.notesService.CreateNote(reqCtx, &req)
	if err != nil {
		log.Error(reqCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(resp.StatusCode).JSON(resp); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	reqCtx := middleware.RequestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(reqCtx, LogHandlerGetNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(reqCtx, ErrMsgInvalidNoteID)
		return badRequest(ctx, ErrMsgInvalidNoteID)
	}

	note, err := h.notesService.FindNoteByID(reqCtx, noteID)
	if err != nil {
		log.Error(reqCtx, "failed to get note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение списка заметок с фильтрами
// и пагинацией.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	reqCtx := middleware.RequestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(reqCtx, LogHandlerListNotes)

	query, err := parseNoteQuery(ctx)
	if err != nil {
		log.Error(reqCtx, ErrMsgInvalidQuery, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidQuery)
	}

	page, err := h.notesService.FindAll(reqCtx, query)
	if err != nil {
		log.Error(reqCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(page); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	reqCtx := middleware.RequestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(reqCtx, LogHandlerUpdateNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(reqCtx, ErrMsgInvalidNoteID)
		return badRequest(ctx, ErrMsgInvalidNoteID)
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(reqCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidRequestBody)
	}

	resp, err := h.notesService.UpdateNoteByID(reqCtx, noteID, &req)
	if err != nil {
		log.Error(reqCtx, "failed to update note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(resp.StatusCode).JSON(resp); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	reqCtx := middleware.RequestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(reqCtx, LogHandlerDeleteNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(reqCtx, ErrMsgInvalidNoteID)
		return badRequest(ctx, ErrMsgInvalidNoteID)
	}

	resp, err := h.notesService.DeleteNoteByID(reqCtx, noteID)
	if err != nil {
		log.Error(reqCtx, "failed to delete note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(resp.StatusCode).JSON(resp); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// parseNoteQuery собирает параметры выборки из query-строки запроса.
// Отсутствующие limit и page получают значения по умолчанию.
func parseNoteQuery(ctx fiber.Ctx) (*queries.NoteQuery, error) {
	query := &queries.NoteQuery{
		Title:   ctx.Query("title"),
		Content: ctx.Query("content"),
		Tag:     ctx.Query("tag"),
		Date:    queries.NoteOrderBy(ctx.Query("date")),
		Order:   queries.Order(ctx.Query("order")),
		OrderBy: queries.NoteOrderBy(ctx.Query("orderBy")),
		Limit:   queries.DefaultLimit,
		Page:    queries.DefaultPage,
	}

	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse limit: %w", err)
		}
		query.Limit = limit
	}

	if raw := ctx.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse page: %w", err)
		}
		query.Page = page
	}

	if raw := ctx.Query("fromDate"); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fromDate: %w", err)
		}
		query.FromDate = &from
	}

	if raw := ctx.Query("toDate"); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse toDate: %w", err)
		}
		query.ToDate = &to
	}

	return query, nil
}

// parseDate принимает метку времени RFC3339 либо дату без времени.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("unsupported date format %q: %w", raw, err)
	}
	return t, nil
}

// badRequest отправляет клиенту ответ 400 с описанием ошибки.
func badRequest(ctx fiber.Ctx, message string) error {
	if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("failed to send bad request response: %w", err)
	}
	return nil
}

// handleError обрабатывает ошибки и возвращает соответствующий HTTP-статус.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, app.ErrNoteNotFound):
		if err := ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": app.ErrNoteNotFound.Error(),
		}); err != nil {
			return fmt.Errorf("error sending 404 response: %w", err)
		}
		return nil
	case errors.Is(err, app.ErrNoteAlreadyExists):
		if err := ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": app.ErrNoteAlreadyExists.Error(),
		}); err != nil {
			return fmt.Errorf("error sending 409 response: %w", err)
		}
		return nil
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if err := ctx.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		}); err != nil {
			return fmt.Errorf("fiber error response error: %w", err)
		}
		return nil
	}

	if err := ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	}); err != nil {
		return fmt.Errorf("error sending 500 response: %w", err)
	}
	return nil
}
