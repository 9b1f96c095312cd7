package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PanicsOnPlaceholderMismatch(t *testing.T) {
	assert.Panics(t, func() { New("a = ? AND b = ?", 1) })
	assert.Panics(t, func() { New("a = 1", 1) })
	assert.NotPanics(t, func() { New("a = ? AND b = ?", 1, 2) })
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "", Placeholders(0))
	assert.Equal(t, "?", Placeholders(1))
	assert.Equal(t, "?, ?, ?", Placeholders(3))
}

func TestIn_SizedToValues(t *testing.T) {
	c := In("p.platform_number", []string{"2902746", "2902747", "5906468"})

	assert.Equal(t, "p.platform_number IN (?, ?, ?)", c.SQL)
	assert.Equal(t, []any{"2902746", "2902747", "5906468"}, c.Args)

	single := In("p.platform_number", []string{"1"})
	assert.Equal(t, "p.platform_number IN (?)", single.SQL)
}

func TestWhere(t *testing.T) {
	assert.True(t, Where().IsEmpty())
	assert.True(t, Where(Clause{}, Raw("  ")).IsEmpty())

	w := Where(Between("p.latitude", 0, 25), Eq("p.data_mode", "D"))
	assert.Equal(t, "WHERE p.latitude BETWEEN ? AND ? AND p.data_mode = ?", w.SQL)
	assert.Equal(t, []any{0, 25, "D"}, w.Args)
}

func TestBuilder_KeepsArgumentOrder(t *testing.T) {
	where := Where(Eq("p.data_centre", "IN"), Between("m.pres_adjusted", 0.0, 100.0))

	sql, args := NewBuilder().
		Add("SELECT COUNT(*) FROM t WHERE x = ?", "first").
		Append(where, Clause{}).
		Add("LIMIT ? OFFSET ?", 20, 40).
		Build()

	assert.Equal(t, "SELECT COUNT(*) FROM t WHERE x = ?\nWHERE p.data_centre = ? AND m.pres_adjusted BETWEEN ? AND ?\nLIMIT ? OFFSET ?", sql)
	assert.Equal(t, []any{"first", "IN", 0.0, 100.0, 20, 40}, args)
}

func TestBuilder_ClauseIsACopy(t *testing.T) {
	b := NewBuilder().Add("a = ?", 1)
	c := b.Clause()
	c.Args[0] = 99

	_, args := b.Build()
	require.Len(t, args, 1)
	assert.Equal(t, 1, args[0])
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "SELECT a FROM t WHERE x = ?", Summarize("SELECT a\n\t FROM t\n  WHERE x = ?", 100))
	assert.Equal(t, "SELEC...", Summarize("SELECT 1", 5))
	assert.Equal(t, "SELECT 1", Summarize("  SELECT   1 ", 0))
}
