// Package pagination turns (page, limit, total) into page metadata.
package pagination

// Политики лимитов для эндпоинтов
const (
	DefaultLimit            = 20
	MaxLimit                = 100
	DefaultMeasurementLimit = 100
	MaxMeasurementLimit     = 500
)

// Request - нормализованный запрос страницы, Page >= 1, Limit >= 1
type Request struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Page - метаданные страницы
type Page struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Result - элементы страницы вместе с метаданными
type Result[T any] struct {
	Items []T  `json:"items"`
	Page  Page `json:"pagination"`
}

// Clamp применяет политику вызывающей стороны: page < 1 -> 1,
// limit < 1 -> defaultLimit, limit > maxLimit -> maxLimit
func Clamp(page, limit, defaultLimit, maxLimit int) Request {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return Request{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// Assemble считает метаданные страницы. Входные значения не корректируются:
// page >= 1 и limit >= 1 обеспечивает Clamp.
func Assemble(page, limit, total int) Page {
	totalPages := 0
	if total > 0 && limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Page{
		Page:       page,
		Limit:      limit,
		Offset:     (page - 1) * limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// NewResult собирает Result; nil items превращаются в пустой срез
func NewResult[T any](items []T, req Request, total int) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{Items: items, Page: Assemble(req.Page, req.Limit, total)}
}
