// Package queries определяет контракт фильтрации, сортировки и пагинации
// списка заметок, общий для слоя сервиса и слоя хранилища.
package queries

import (
	"time"

	"notekeep/internal/notes/domain/entities"
)

// Order задает направление сортировки.
type Order string

// Поддерживаемые направления сортировки.
const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// NoteOrderBy задает поле сортировки и поле для фильтрации по диапазону дат.
type NoteOrderBy string

// Поля с временными метками.
const (
	OrderByCreatedAt NoteOrderBy = "createdAt"
	OrderByUpdatedAt NoteOrderBy = "updatedAt"
)

// Значения по умолчанию для пагинации.
const (
	DefaultLimit = 10
	DefaultPage  = 1
)

// NoteQuery описывает параметры выборки заметок.
// Все фильтры опциональны и объединяются по AND.
type NoteQuery struct {
	// Title - подстрока заголовка, без учета регистра.
	Title string
	// Content - подстрока содержимого, без учета регистра.
	Content string
	// Tag - точное совпадение с одним из тегов заметки.
	Tag string
	// Date выбирает поле даты для фильтрации диапазоном. Пустое значение
	// или неизвестное поле означает, что диапазон не применяется,
	// даже если FromDate/ToDate заданы.
	Date NoteOrderBy
	// FromDate и ToDate - включительные границы диапазона.
	FromDate *time.Time
	ToDate   *time.Time

	Order   Order
	OrderBy NoteOrderBy
	Limit   int
	Page    int
}

// NotesPage - дескриптор страницы результатов.
type NotesPage struct {
	Total        int              `json:"total"`
	TotalPages   int              `json:"totalPages"`
	LimitPerPage int              `json:"limitPerPage"`
	CurrentPage  int              `json:"currentPage"`
	Data         []*entities.Note `json:"data"`
}

// Normalize подставляет значения по умолчанию для незаполненных параметров.
// Limit без положительного значения означает размер страницы по умолчанию:
// нулевой запрос ведет себя как запрос первой страницы из десяти записей.
func (q *NoteQuery) Normalize() {
	if q.Order != OrderAsc && q.Order != OrderDesc {
		q.Order = OrderDesc
	}
	if q.OrderBy == "" {
		q.OrderBy = OrderByCreatedAt
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Page == 0 {
		q.Page = DefaultPage
	}
}

// Offset возвращает число пропускаемых записей. Для page <= 1
// смещение равно нулю: нулевая и отрицательные страницы ведут
// себя как первая.
func (q *NoteQuery) Offset() int {
	offset := (q.Page - 1) * q.Limit
	if offset < 0 {
		return 0
	}
	return offset
}

// TotalPages вычисляет количество страниц для данного total.
// Нулевой limit не приводит к делению на ноль.
func (q *NoteQuery) TotalPages(total int) int {
	if q.Limit <= 0 || total <= 0 {
		return 0
	}
	return (total + q.Limit - 1) / q.Limit
}

// HasDateRange сообщает, применяется ли фильтр по диапазону дат.
func (q *NoteQuery) HasDateRange() bool {
	if q.Date != OrderByCreatedAt && q.Date != OrderByUpdatedAt {
		return false
	}
	return q.FromDate != nil || q.ToDate != nil
}
