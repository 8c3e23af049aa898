// Package seed наполняет хранилище стартовыми данными при запуске сервиса.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"notekeep/internal/notes/app/dto"
	"notekeep/pkg/logger"
)

// Содержимое стартовой заметки.
const (
	defaultNoteTitle   = "Grocery List"
	defaultNoteContent = "Milk, Eggs, Bread"
)

var defaultNoteTags = []string{"home", "shopping"}

// noteSeedService - срез бизнес-логики, необходимый сидеру.
type noteSeedService interface {
	CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*dto.Response, error)
	DoesNoteExistByTitle(ctx context.Context, title string) (bool, error)
	FindTotal(ctx context.Context) (int, error)
}

// Seeder создает стартовую заметку, если ее еще нет.
type Seeder struct {
	notesService noteSeedService
}

// NewSeeder создает новый экземпляр сидера.
func NewSeeder(notesService noteSeedService) *Seeder {
	return &Seeder{notesService: notesService}
}

// Run выполняет наполнение. Ошибка наполнения не мешает запуску сервиса,
// решение об остановке принимает вызывающая сторона.
func (s *Seeder) Run(ctx context.Context) error {
	log := logger.Log(ctx)
	log.Info(ctx, "seeding database")

	exists, err := s.notesService.DoesNoteExistByTitle(ctx, defaultNoteTitle)
	if err != nil {
		return fmt.Errorf("failed to check seed note: %w", err)
	}

	if exists {
		log.Info(ctx, "seed note already exists", zap.String("title", defaultNoteTitle))
	} else {
		log.Info(ctx, "seeding default note", zap.String("title", defaultNoteTitle))

		if _, err := s.notesService.CreateNote(ctx, &dto.CreateNoteRequest{
			Title:   defaultNoteTitle,
			Content: defaultNoteContent,
			Tags:    defaultNoteTags,
		}); err != nil {
			return fmt.Errorf("failed to create seed note: %w", err)
		}

		log.Info(ctx, "seed note created", zap.String("title", defaultNoteTitle))
	}

	total, err := s.notesService.FindTotal(ctx)
	if err != nil {
		return fmt.Errorf("failed to count notes after seeding: %w", err)
	}

	log.Info(ctx, "seeding finished", zap.Int("total_notes", total))
	return nil
}
