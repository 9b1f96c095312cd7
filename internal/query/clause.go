// Package query связывает фрагменты SQL с их параметрами.
//
// Фрагменты используют позиционные плейсхолдеры "?". У Clause ровно столько
// аргументов, сколько плейсхолдеров, а Builder добавляет текст и аргументы вместе,
// поэтому при склейке клауз порядок параметров не расходится с текстом.
package query

import (
	"fmt"
	"strings"
)

// Placeholder - позиционный плейсхолдер во всех фрагментах
const Placeholder = "?"

// Clause - фрагмент SQL и параметры его плейсхолдеров по порядку
type Clause struct {
	SQL  string
	Args []any
}

// New создаёт клаузу; паникует, если число плейсхолдеров не равно len(args).
// Расхождение - ошибка в коде, а не в данных.
func New(sql string, args ...any) Clause {
	if n := strings.Count(sql, Placeholder); n != len(args) {
		panic(fmt.Sprintf("query: %d placeholders but %d args in %q", n, len(args), sql))
	}
	return Clause{SQL: sql, Args: args}
}

// Raw - клауза без параметров
func Raw(sql string) Clause {
	return New(sql)
}

// IsEmpty возвращает true, если текста нет
func (c Clause) IsEmpty() bool {
	return strings.TrimSpace(c.SQL) == ""
}

// Placeholders возвращает n плейсхолдеров через запятую: "?, ?, ?"
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat(Placeholder+", ", n), ", ")
}

// In - "column IN (?, ...)" ровно на len(values) значений
func In[T any](column string, values []T) Clause {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return New(fmt.Sprintf("%s IN (%s)", column, Placeholders(len(values))), args...)
}

// Between - "column BETWEEN ? AND ?"
func Between(column string, lo, hi any) Clause {
	return New(column+" BETWEEN ? AND ?", lo, hi)
}

// Eq - "column = ?"
func Eq(column string, v any) Clause {
	return New(column+" = ?", v)
}

// Join склеивает непустые клаузы через sep, аргументы идут в порядке клауз
func Join(sep string, clauses ...Clause) Clause {
	parts := make([]string, 0, len(clauses))
	var args []any
	for _, c := range clauses {
		if c.IsEmpty() {
			continue
		}
		parts = append(parts, c.SQL)
		args = append(args, c.Args...)
	}
	return Clause{SQL: strings.Join(parts, sep), Args: args}
}

// And склеивает клаузы через AND
func And(clauses ...Clause) Clause {
	return Join(" AND ", clauses...)
}

// Where - "WHERE a AND b ..." или пустая клауза, если фильтровать нечего
func Where(clauses ...Clause) Clause {
	c := And(clauses...)
	if c.IsEmpty() {
		return Clause{}
	}
	return Clause{SQL: "WHERE " + c.SQL, Args: c.Args}
}

// Summarize сжимает пробелы и обрезает sql до max байт для логов.
// Значения аргументов сюда не попадают.
func Summarize(sql string, max int) string {
	sql = strings.Join(strings.Fields(sql), " ")
	if max <= 0 || len(sql) <= max {
		return sql
	}
	return sql[:max] + "..."
}
