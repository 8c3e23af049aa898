// Package dto содержит структуры запросов и ответов сервиса заметок.
package dto

import (
	"notekeep/internal/notes/domain/entities"
)

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// UpdateNoteRequest содержит данные для частичного обновления заметки.
// Незаданные поля не перезаписываются.
type UpdateNoteRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// Response - единый конверт успешного ответа мутирующих операций.
type Response struct {
	Message    string         `json:"message"`
	StatusCode int            `json:"statusCode"`
	Data       *entities.Note `json:"data,omitempty"`
}
