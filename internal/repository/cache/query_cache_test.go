package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/argo-float-service/internal/domain"
	"github.com/argo-float-service/internal/pkg/metrics"
)

type mockExecutor struct {
	mock.Mock
}

func (m *mockExecutor) Execute(ctx context.Context, query string, params []any) ([]domain.Row, error) {
	args := m.Called(ctx, query, params)
	rows, _ := args.Get(0).([]domain.Row)
	return rows, args.Error(1)
}

func newMini(t *testing.T) (*miniredis.Miniredis, *Redis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedisFromClient(client, zap.NewNop())
	t.Cleanup(func() { _ = r.Close() })
	return mr, r
}

func TestQueryCache_MissThenHit(t *testing.T) {
	mr, r := newMini(t)
	m := metrics.New()
	next := new(mockExecutor)

	q := "SELECT p.platform_number AS id FROM t p WHERE p.latitude BETWEEN ? AND ?"
	params := []any{0.0, 25.0}
	next.On("Execute", mock.Anything, q, params).
		Return([]domain.Row{{"id": "2902746", "temperature": 28.5}}, nil).Once()

	c := NewQueryCache(next, NewCacheRepository(r), time.Minute, zap.NewNop(), m)
	ctx := context.Background()

	first, err := c.Execute(ctx, q, params)
	require.NoError(t, err)
	second, err := c.Execute(ctx, q, params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "2902746", second[0]["id"])
	next.AssertNumberOfCalls(t, "Execute", 1)

	key, err := Key(q, params)
	require.NoError(t, err)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")))
}

func TestQueryCache_ExecutorErrorIsNotCached(t *testing.T) {
	mr, r := newMini(t)
	next := new(mockExecutor)
	boom := errors.New("warehouse unavailable")
	next.On("Execute", mock.Anything, "SELECT 1", []any(nil)).Return(nil, boom)

	c := NewQueryCache(next, NewCacheRepository(r), time.Minute, nil, nil)

	_, err := c.Execute(context.Background(), "SELECT 1", nil)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, mr.Keys())
}

func TestQueryCache_RedisDownFallsThrough(t *testing.T) {
	mr, r := newMini(t)
	mr.Close()

	next := new(mockExecutor)
	next.On("Execute", mock.Anything, "SELECT 1", []any(nil)).Return([]domain.Row{{"ok": int64(1)}}, nil)

	c := NewQueryCache(next, NewCacheRepository(r), time.Minute, nil, nil)

	rows, err := c.Execute(context.Background(), "SELECT 1", nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	next.AssertExpectations(t)
}

func TestKey(t *testing.T) {
	a, err := Key("SELECT ?", []any{1.0})
	require.NoError(t, err)
	b, err := Key("SELECT ?", []any{2.0})
	require.NoError(t, err)
	again, err := Key("SELECT ?", []any{1.0})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, again)
	assert.Contains(t, a, keyPrefix)
}

func TestQueryCache_CorruptedEntryIsEvicted(t *testing.T) {
	mr, r := newMini(t)
	next := new(mockExecutor)
	next.On("Execute", mock.Anything, "SELECT 1", []any(nil)).Return([]domain.Row{{"ok": 1.0}}, nil)

	key, err := Key("SELECT 1", nil)
	require.NoError(t, err)
	require.NoError(t, mr.Set(key, "{not json"))

	c := NewQueryCache(next, NewCacheRepository(r), time.Minute, nil, nil)

	rows, err := c.Execute(context.Background(), "SELECT 1", nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.Row{{"ok": 1.0}}, rows)

	// запись перезаписана валидным результатом
	cached, err := mr.Get(key)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"ok":1}]`, cached)
	next.AssertNumberOfCalls(t, "Execute", 1)
}
