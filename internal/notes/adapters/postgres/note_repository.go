package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/domain/queries"
	"notekeep/internal/notes/ports/repositories"
	"notekeep/pkg/logger"
)

// Константы для сообщений об ошибках.
const (
	ErrCreatingNote   = "failed to create note"
	ErrFindingNote    = "failed to find note"
	ErrCheckingTitle  = "failed to check note title"
	ErrUpdatingNote   = "failed to update note"
	ErrDeletingNote   = "failed to delete note"
	ErrCountingNotes  = "failed to count notes"
	ErrListingNotes   = "failed to list notes"
	ErrScanningNote   = "failed to scan note"
	ErrIteratingNotes = "error iterating rows"
)

// Код Postgres для нарушения уникального ограничения.
const uniqueViolationCode = "23505"

const noteColumns = "id, title, content, tags, created_at, updated_at"

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	db DB
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(db DB) repositories.NoteRepository {
	return &NoteRepository{db: db}
}

// Create сохраняет новую заметку, назначая идентификатор и временные метки.
// Нарушение уникальности заголовка транслируется в ErrDuplicateTitle.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("title", note.Title))

	now := time.Now().UTC()
	created := &entities.Note{
		ID:        uuid.NewString(),
		Title:     note.Title,
		Content:   note.Content,
		Tags:      note.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO notes (id, title, content, tags, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		created.ID, created.Title, created.Content, created.Tags, created.CreatedAt, created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "duplicate note title", zap.String("title", note.Title))
			return nil, repositories.ErrDuplicateTitle
		}
		log.Error(ctx, ErrCreatingNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreatingNote, err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return created, nil
}

// FindByID получает заметку по идентификатору. Отсутствие записи - (nil, nil).
func (r *NoteRepository) FindByID(ctx context.Context, id string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.FindByID"))
	log.Debug(ctx, "getting note", zap.String("noteID", id))

	row := r.db.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1`,
		id,
	)
	note, err := scanNote(row)
	if err != nil {
		log.Error(ctx, ErrFindingNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFindingNote, err)
	}
	if note == nil {
		log.Debug(ctx, "note not found", zap.String("noteID", id))
	}
	return note, nil
}

// FindByTitle получает заметку по точному совпадению заголовка.
func (r *NoteRepository) FindByTitle(ctx context.Context, title string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.FindByTitle"))
	log.Debug(ctx, "getting note by title", zap.String("title", title))

	row := r.db.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE title = $1`,
		title,
	)
	note, err := scanNote(row)
	if err != nil {
		log.Error(ctx, ErrFindingNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFindingNote, err)
	}
	if note == nil {
		log.Debug(ctx, "note not found", zap.String("title", title))
	}
	return note, nil
}

// ExistsByTitle проверяет существование заметки с данным заголовком.
func (r *NoteRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ExistsByTitle"))

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM notes WHERE title = $1)`,
		title,
	).Scan(&exists)
	if err != nil {
		log.Error(ctx, ErrCheckingTitle, zap.Error(err))
		return false, fmt.Errorf("%s: %w", ErrCheckingTitle, err)
	}

	return exists, nil
}

// UpdateByID применяет только заданные поля и обновляет updated_at.
// Возвращает заметку после обновления, (nil, nil) если записи нет.
func (r *NoteRepository) UpdateByID(ctx context.Context, id string, fields repositories.UpdateNoteFields) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.UpdateByID"))
	log.Debug(ctx, "updating note", zap.String("noteID", id))

	set, args := buildUpdateSet(fields)
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE notes SET %s WHERE id = $%d RETURNING `+noteColumns,
		strings.Join(set, ", "), len(args),
	)

	row := r.db.QueryRow(ctx, query, args...)
	note, err := scanNote(row)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "duplicate note title on update", zap.String("noteID", id))
			return nil, repositories.ErrDuplicateTitle
		}
		log.Error(ctx, ErrUpdatingNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrUpdatingNote, err)
	}
	if note == nil {
		log.Debug(ctx, "note not found", zap.String("noteID", id))
	}
	return note, nil
}

// DeleteByID удаляет заметку. Отсутствие записи не является ошибкой.
func (r *NoteRepository) DeleteByID(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.DeleteByID"))
	log.Debug(ctx, "deleting note", zap.String("noteID", id))

	if _, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id); err != nil {
		log.Error(ctx, ErrDeletingNote, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrDeletingNote, err)
	}

	return nil
}

// GetAll выполняет выборку по фильтрам запроса с сортировкой и пагинацией.
// Общее количество считается отдельным запросом по тому же предикату.
func (r *NoteRepository) GetAll(ctx context.Context, query *queries.NoteQuery) (*queries.NotesPage, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetAll"))

	query.Normalize()
	where, args := buildFilter(query)

	log.Debug(ctx, "listing notes",
		zap.Int("limit", query.Limit),
		zap.Int("page", query.Page))

	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notes`+where, args...).Scan(&total)
	if err != nil {
		log.Error(ctx, ErrCountingNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCountingNotes, err)
	}

	listArgs := append(args, query.Limit, query.Offset())
	listQuery := fmt.Sprintf(
		`SELECT `+noteColumns+` FROM notes%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		where, orderColumn(query.OrderBy), sortDirection(query.Order),
		len(listArgs)-1, len(listArgs),
	)

	rows, err := r.db.Query(ctx, listQuery, listArgs...)
	if err != nil {
		log.Error(ctx, ErrListingNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListingNotes, err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.Tags, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Error(ctx, ErrScanningNote, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrScanningNote, err)
		}
		notes = append(notes, &note)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, ErrIteratingNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrIteratingNotes, err)
	}

	return &queries.NotesPage{
		Total:        total,
		TotalPages:   query.TotalPages(total),
		LimitPerPage: query.Limit,
		CurrentPage:  query.Page,
		Data:         notes,
	}, nil
}

// GetTotalCount возвращает общее количество заметок без фильтров.
func (r *NoteRepository) GetTotalCount(ctx context.Context) (int, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetTotalCount"))

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notes`).Scan(&total); err != nil {
		log.Error(ctx, ErrCountingNotes, zap.Error(err))
		return 0, fmt.Errorf("%s: %w", ErrCountingNotes, err)
	}

	return total, nil
}

// BulkUpdate применяет независимые операции обновления без атомарности
// между ними: часть может примениться, часть - нет. Операции без полей
// и операции по несуществующим идентификаторам учитываются как Missed.
func (r *NoteRepository) BulkUpdate(ctx context.Context, operations []repositories.BulkUpdateOperation) (*repositories.BulkUpdateResult, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.BulkUpdate"))
	log.Debug(ctx, "bulk updating notes", zap.Int("operations", len(operations)))

	result := &repositories.BulkUpdateResult{}
	for _, op := range operations {
		if op.Fields.IsEmpty() {
			result.Missed++
			continue
		}

		set, args := buildUpdateSet(op.Fields)
		args = append(args, op.ID)
		query := fmt.Sprintf(
			`UPDATE notes SET %s WHERE id = $%d`,
			strings.Join(set, ", "), len(args),
		)

		tag, err := r.db.Exec(ctx, query, args...)
		if err != nil {
			log.Warn(ctx, ErrUpdatingNote, zap.String("noteID", op.ID), zap.Error(err))
			result.Failed++
			continue
		}
		if tag.RowsAffected() == 0 {
			result.Missed++
			continue
		}
		result.Updated++
	}

	return result, nil
}

// scanNote читает одну строку заметки; pgx.ErrNoRows превращается в (nil, nil).
func scanNote(row pgx.Row) (*entities.Note, error) {
	var note entities.Note
	err := row.Scan(&note.ID, &note.Title, &note.Content, &note.Tags, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

// buildUpdateSet собирает SET-часть частичного обновления.
// updated_at обновляется всегда.
func buildUpdateSet(fields repositories.UpdateNoteFields) ([]string, []any) {
	set := []string{"updated_at = $1"}
	args := []any{time.Now().UTC()}

	if fields.Title != nil {
		args = append(args, *fields.Title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if fields.Content != nil {
		args = append(args, *fields.Content)
		set = append(set, fmt.Sprintf("content = $%d", len(args)))
	}
	if fields.Tags != nil {
		args = append(args, *fields.Tags)
		set = append(set, fmt.Sprintf("tags = $%d", len(args)))
	}

	return set, args
}

// buildFilter собирает WHERE-часть выборки: все активные фильтры
// объединяются по AND.
func buildFilter(q *queries.NoteQuery) (string, []any) {
	conds := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if q.Title != "" {
		args = append(args, q.Title)
		conds = append(conds, fmt.Sprintf("title ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if q.Content != "" {
		args = append(args, q.Content)
		conds = append(conds, fmt.Sprintf("content ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if q.Tag != "" {
		args = append(args, q.Tag)
		conds = append(conds, fmt.Sprintf("$%d = ANY(tags)", len(args)))
	}
	if q.HasDateRange() {
		col := orderColumn(q.Date)
		if q.FromDate != nil {
			args = append(args, *q.FromDate)
			conds = append(conds, fmt.Sprintf("%s >= $%d", col, len(args)))
		}
		if q.ToDate != nil {
			args = append(args, *q.ToDate)
			conds = append(conds, fmt.Sprintf("%s <= $%d", col, len(args)))
		}
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderColumn сопоставляет поле контракта имени столбца.
// Неизвестные значения сводятся к created_at.
func orderColumn(field queries.NoteOrderBy) string {
	if field == queries.OrderByUpdatedAt {
		return "updated_at"
	}
	return "created_at"
}

func sortDirection(order queries.Order) string {
	if order == queries.OrderAsc {
		return "ASC"
	}
	return "DESC"
}

// isUniqueViolation распознает нарушение уникального ограничения Postgres.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
