package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/argo-float-service/internal/pkg/metrics"
	"github.com/argo-float-service/internal/pkg/pagination"
	"github.com/argo-float-service/internal/pkg/utils"
	"github.com/argo-float-service/internal/pkg/validator"
	"github.com/argo-float-service/internal/usecase"
	"github.com/argo-float-service/internal/usecase/dto"
)

// FloatHandler - обработчик запросов по буям
type FloatHandler struct {
	floatUC *usecase.FloatUseCase
	metrics *metrics.Provider
	logger  *zap.Logger
}

// NewFloatHandler - создание нового FloatHandler
func NewFloatHandler(floatUC *usecase.FloatUseCase, m *metrics.Provider, logger *zap.Logger) *FloatHandler {
	return &FloatHandler{
		floatUC: floatUC,
		metrics: m,
		logger:  logger,
	}
}

// Search godoc
// @Summary Поиск буёв по фильтру
// @Description Возвращает последний подходящий профиль каждого буя с приповерхностными значениями и статистику выборки. Bounding box учитывается только при всех четырёх границах, радиус - при всех трёх параметрах.
// @Tags Floats
// @Produce json
// @Param startDate query string false "Начало периода (RFC 3339 или YYYY-MM-DD)"
// @Param endDate query string false "Конец периода (RFC 3339 или YYYY-MM-DD)"
// @Param minLat query number false "Южная граница"
// @Param maxLat query number false "Северная граница"
// @Param minLon query number false "Западная граница"
// @Param maxLon query number false "Восточная граница"
// @Param centerLat query number false "Широта центра"
// @Param centerLon query number false "Долгота центра"
// @Param radiusKm query number false "Радиус, км"
// @Param minTemp query number false "Минимальная температура" default(-10)
// @Param maxTemp query number false "Максимальная температура" default(40)
// @Param minSalinity query number false "Минимальная солёность" default(0)
// @Param maxSalinity query number false "Максимальная солёность" default(50)
// @Param minDepth query number false "Минимальное давление, дбар" default(0)
// @Param maxDepth query number false "Максимальное давление, дбар" default(6000)
// @Param platformNumbers query string false "Номера платформ через запятую"
// @Param dataCenter query string false "Код дата-центра"
// @Param projectName query string false "Название проекта"
// @Param dataMode query string false "Режим данных (R, A, D)"
// @Param goodOnly query bool false "Только good QC"
// @Param includeQuestionable query bool false "Good и questionable QC"
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы (до 100)" default(20)
// @Success 200 {object} utils.SuccessResponse{data=dto.FloatSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/floats [get]
func (h *FloatHandler) Search(c *fiber.Ctx) error {
	q := queryOf(c)

	req, err := dto.ParseFilter(q)
	if err != nil {
		return sendError(c, h.metrics, err)
	}
	page := dto.ParsePage(q, pagination.DefaultLimit, pagination.MaxLimit)

	result, err := h.floatUC.Search(c.UserContext(), req, page)
	if err != nil {
		return sendError(c, h.metrics, err)
	}

	return utils.SendSuccess(c, result, utils.PageMeta(result.Floats.Page))
}

// Nearest godoc
// @Summary Ближайшие буи
// @Description Последнее положение каждого буя в радиусе от точки, по возрастанию расстояния
// @Tags Floats
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Param maxDistance query number false "Радиус поиска, км" default(500)
// @Param limit query int false "Количество буёв (до 100)" default(10)
// @Success 200 {object} utils.SuccessResponse{data=dto.NearestFloatsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/floats/nearest [get]
func (h *FloatHandler) Nearest(c *fiber.Ctx) error {
	req, err := dto.ParseNearest(queryOf(c))
	if err != nil {
		return sendError(c, h.metrics, err)
	}

	if err := validator.Validate(&req); err != nil {
		return sendError(c, h.metrics, err)
	}

	floats, err := h.floatUC.NearestFloats(c.UserContext(), req.Center(), req.MaxDistance, req.Limit)
	if err != nil {
		return sendError(c, h.metrics, err)
	}

	resp := dto.NewNearestFloatsResponse(req, floats)
	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.FloatsFound})
}

// Profile godoc
// @Summary Вертикальный профиль буя
// @Description Уровни последнего профиля буя: глубина, температура, солёность и качество каждого уровня
// @Tags Floats
// @Produce json
// @Param id path string true "Номер платформы"
// @Success 200 {object} utils.SuccessResponse{data=dto.FloatProfileResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/floats/{id}/profile [get]
func (h *FloatHandler) Profile(c *fiber.Ctx) error {
	id := c.Params("id")

	profile, err := h.floatUC.FloatProfile(c.UserContext(), id)
	if err != nil {
		return sendError(c, h.metrics, err)
	}

	return utils.SendSuccess(c, dto.FloatProfileResponse{
		PlatformNumber: id,
		Levels:         profile.Len(),
		FloatProfile:   *profile,
	}, nil)
}

// TimeSeries godoc
// @Summary Временной ряд буя
// @Description Средние приповерхностные температура и солёность по циклам
// @Tags Floats
// @Produce json
// @Param id path string true "Номер платформы"
// @Param start query string false "Начало периода"
// @Param end query string false "Конец периода"
// @Success 200 {object} utils.SuccessResponse{data=dto.TimeSeriesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/floats/{id}/timeseries [get]
func (h *FloatHandler) TimeSeries(c *fiber.Ctx) error {
	id := c.Params("id")

	dr, err := dto.ParseDateRange(queryOf(c), "start", "end")
	if err != nil {
		return sendError(c, h.metrics, err)
	}

	points, err := h.floatUC.FloatTimeSeries(c.UserContext(), id, dr)
	if err != nil {
		return sendError(c, h.metrics, err)
	}

	return utils.SendSuccess(c, dto.TimeSeriesResponse{PlatformNumber: id, Points: points},
		&utils.Meta{Total: len(points)})
}

// Trajectory godoc
// @Summary Траектория буя
// @Description Положение буя по циклам с приповерхностной температурой
// @Tags Floats
// @Produce json
// @Param id path string true "Номер платформы"
// @Param start query string false "Начало периода"
// @Param end query string false "Конец периода"
// @Success 200 {object} utils.SuccessResponse{data=dto.TrajectoryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/floats/{id}/trajectory [get]
func (h *FloatHandler) Trajectory(c *fiber.Ctx) error {
	id := c.Params("id")

	dr, err := dto.ParseDateRange(queryOf(c), "start", "end")
	if err != nil {
		return sendError(c, h.metrics, err)
	}

	points, err := h.floatUC.FloatTrajectory(c.UserContext(), id, dr)
	if err != nil {
		return sendError(c, h.metrics, err)
	}

	return utils.SendSuccess(c, dto.TrajectoryResponse{PlatformNumber: id, Points: points},
		&utils.Meta{Total: len(points)})
}
