package query

import "strings"

// Builder собирает запрос из клауз
type Builder struct {
	parts []string
	args  []any
}

// NewBuilder возвращает пустой Builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Add добавляет фрагмент с аргументами; контракт плейсхолдеров - как у New
func (b *Builder) Add(sql string, args ...any) *Builder {
	return b.Append(New(sql, args...))
}

// Append добавляет клаузы по порядку, пустые пропускаются
func (b *Builder) Append(clauses ...Clause) *Builder {
	for _, c := range clauses {
		if c.IsEmpty() {
			continue
		}
		b.parts = append(b.parts, c.SQL)
		b.args = append(b.args, c.Args...)
	}
	return b
}

// Clause возвращает собранный запрос одной клаузой
func (b *Builder) Clause() Clause {
	args := make([]any, len(b.args))
	copy(args, b.args)
	return Clause{SQL: strings.Join(b.parts, "\n"), Args: args}
}

// Build возвращает текст запроса и упорядоченные параметры
func (b *Builder) Build() (string, []any) {
	c := b.Clause()
	return c.SQL, c.Args
}
