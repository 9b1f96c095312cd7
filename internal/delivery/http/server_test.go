package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/argo-float-service/internal/config"
	httpDelivery "github.com/argo-float-service/internal/delivery/http"
	"github.com/argo-float-service/internal/delivery/http/handler"
	"github.com/argo-float-service/internal/delivery/http/middleware"
	"github.com/argo-float-service/internal/domain"
	"github.com/argo-float-service/internal/pkg/metrics"
	"github.com/argo-float-service/internal/usecase"
)

// MockWarehouse is a mock of WarehouseExecutor and HealthChecker
type MockWarehouse struct {
	mock.Mock
}

func (m *MockWarehouse) Execute(ctx context.Context, query string, params []any) ([]domain.Row, error) {
	args := m.Called(ctx, query, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Row), args.Error(1)
}

func (m *MockWarehouse) Health(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newTestServer(t *testing.T) (*httpDelivery.Server, *MockWarehouse, *metrics.Provider) {
	t.Helper()

	cfg := &config.Config{
		Server:    config.ServerConfig{Host: "127.0.0.1", Port: 0, CORSAllowOrigins: "*"},
		Warehouse: config.WarehouseConfig{Driver: config.DriverDuckDB, Timeout: 5 * time.Second},
	}
	logger := zap.NewNop()
	m := metrics.New()
	wh := new(MockWarehouse)

	uc := usecase.NewFloatUseCase(wh, usecase.Tables{
		Profiles:     "argo_data.profiles",
		Measurements: "argo_data.measurements",
	}, logger)

	server := httpDelivery.NewServer(cfg, logger, m, wh, httpDelivery.Handlers{
		Float:   handler.NewFloatHandler(uc, m, logger),
		Profile: handler.NewProfileHandler(uc, m, logger),
		Stats:   handler.NewStatsHandler(uc, m, logger),
	})
	return server, wh, m
}

func do(t *testing.T, s *httpDelivery.Server, target string) (*http.Response, envelope) {
	t.Helper()

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	}
	return resp, body
}

func TestServer_Health(t *testing.T) {
	s, wh, _ := newTestServer(t)
	wh.On("Health", mock.Anything).Return(nil).Once()
	wh.On("Health", mock.Anything).Return(assert.AnError).Once()

	resp, _ := do(t, s, "/api/v1/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	resp, _ = do(t, s, "/api/v1/health")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestServer_FloatSearch_ValidationError(t *testing.T) {
	s, wh, m := newTestServer(t)

	resp, body := do(t, s, "/api/v1/floats?minTemp=30&maxTemp=10")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "temperatureRange", body.Error.Details["field"])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FilterValidations.WithLabelValues("temperatureRange")))
	wh.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
}

func TestServer_FloatSearch(t *testing.T) {
	s, wh, _ := newTestServer(t)

	wh.On("Execute", mock.Anything, mock.MatchedBy(func(q string) bool { return len(q) > 0 }), mock.Anything).
		Return([]domain.Row{{"id": "2902746", "total": int64(1), "latitude": 15.0, "longitude": 65.0}}, nil)

	resp, body := do(t, s, "/api/v1/floats?dataCenter=IN&limit=500")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Floats struct {
			Items      []map[string]any `json:"items"`
			Pagination map[string]any   `json:"pagination"`
		} `json:"floats"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.Len(t, data.Floats.Items, 1)
	assert.Equal(t, "2902746", data.Floats.Items[0]["id"])
	assert.Equal(t, 100.0, data.Floats.Pagination["limit"], "limit is clamped to max")
	assert.Equal(t, 1.0, body.Meta["total"])
}

func TestServer_Nearest(t *testing.T) {
	s, wh, _ := newTestServer(t)

	resp, body := do(t, s, "/api/v1/floats/nearest?lon=65")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "lat", body.Error.Details["field"])

	resp, body = do(t, s, "/api/v1/floats/nearest?lat=0&lon=0&limit=500")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "limit", body.Error.Details["field"])

	wh.On("Execute", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.Row{{"id": "2902746", "latitude": 0.0, "longitude": 1.0, "cycle": int64(4)}}, nil)

	resp, body = do(t, s, "/api/v1/floats/nearest?lat=0&lon=0&maxDistance=200")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		MaxDistance float64 `json:"maxDistance"`
		FloatsFound int     `json:"floatsFound"`
		Floats      []struct {
			ID         string  `json:"id"`
			DistanceKm float64 `json:"distanceKm"`
		} `json:"floats"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, 200.0, data.MaxDistance)
	assert.Equal(t, 1, data.FloatsFound)
	assert.Equal(t, 111.19, data.Floats[0].DistanceKm)
}

func TestServer_FloatProfile_NotFound(t *testing.T) {
	s, wh, _ := newTestServer(t)
	wh.On("Execute", mock.Anything, mock.Anything, []any{"0000000"}).Return([]domain.Row{}, nil)

	resp, body := do(t, s, "/api/v1/floats/0000000/profile")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "FLOAT_NOT_FOUND", body.Error.Code)
}

func TestServer_WarehouseFailure(t *testing.T) {
	s, wh, _ := newTestServer(t)
	wh.On("Execute", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)

	resp, body := do(t, s, "/api/v1/quality-control-stats?platformNumbers=2902746")

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "WAREHOUSE_ERROR", body.Error.Code)
	assert.Equal(t, true, body.Error.Details["retryable"])
	assert.NotContains(t, body.Error.Message, "2902746")
}

func TestServer_Measurements_NonNumericID(t *testing.T) {
	s, wh, m := newTestServer(t)

	resp, body := do(t, s, "/api/v1/profiles/secret-42/measurements")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_REQUEST", body.Error.Code)
	assert.Equal(t, "id", body.Error.Details["field"])
	assert.NotContains(t, body.Error.Details["reason"], "secret-42")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FilterValidations.WithLabelValues("id")))
	wh.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
}

func TestServer_Measurements_LoneMinDepth(t *testing.T) {
	s, wh, _ := newTestServer(t)

	openDepth := mock.MatchedBy(func(q string) bool {
		return strings.Contains(q, "m.pres_adjusted >= ?") && !strings.Contains(q, "BETWEEN")
	})
	wh.On("Execute", mock.Anything, openDepth, mock.MatchedBy(func(params []any) bool {
		return len(params) >= 2 && params[0] == int64(7) && params[1] == 7000.0
	})).Return([]domain.Row{{"total": int64(0)}}, nil)
	wh.On("Execute", mock.Anything, mock.Anything, []any{int64(7)}).
		Return([]domain.Row{{"profile_id": int64(7), "platform_number": "2902746"}}, nil)

	resp, body := do(t, s, "/api/v1/profiles/7/measurements?minDepth=7000")

	require.Equal(t, http.StatusOK, resp.StatusCode, string(body.Data))
	wh.AssertNumberOfCalls(t, "Execute", 3)
}

func TestServer_CompareRegions_BadDepth(t *testing.T) {
	s, _, _ := newTestServer(t)

	resp, body := do(t, s, "/api/v1/compare/regions?depthRange=deep")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "depthRange", body.Error.Details["field"])
}

func TestServer_Metrics(t *testing.T) {
	s, wh, _ := newTestServer(t)
	wh.On("Health", mock.Anything).Return(nil)

	do(t, s, "/api/v1/health")

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `argo_http_request_duration_seconds_count{method="GET",route="/api/v1/health",status="200"} 1`)
}

func TestServer_UnknownRoute(t *testing.T) {
	s, _, _ := newTestServer(t)

	resp, body := do(t, s, "/api/v1/nope")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}
