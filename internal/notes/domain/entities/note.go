// Package entities defines the domain entities for the notes service.
package entities

import "time"

// Note представляет собой заметку.
// Tags без значения сериализуются как отсутствующее поле, не как пустой массив.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewNote creates a new note with the given title, content and tags.
// ID and timestamps are assigned by the storage layer.
func NewNote(title, content string, tags []string) *Note {
	return &Note{
		Title:   title,
		Content: content,
		Tags:    tags,
	}
}
