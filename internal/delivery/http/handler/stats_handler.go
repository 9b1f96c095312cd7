package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/argo-float-service/internal/pkg/errors"
	"github.com/argo-float-service/internal/pkg/metrics"
	"github.com/argo-float-service/internal/pkg/utils"
	"github.com/argo-float-service/internal/usecase"
	"github.com/argo-float-service/internal/usecase/dto"
)

// StatsHandler обрабатывает запросы для статистики
type StatsHandler struct {
	floatUC *usecase.FloatUseCase
	metrics *metrics.Provider
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(floatUC *usecase.FloatUseCase, m *metrics.Provider, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		floatUC: floatUC,
		metrics: m,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Статистика выборки
// @Description Количество буёв, профилей и измерений и средние значения для отфильтрованной выборки
// @Tags Statistics
// @Produce json
// @Param startDate query string false "Начало периода"
// @Param endDate query string false "Конец периода"
// @Param platformNumbers query string false "Номера платформ через запятую"
// @Success 200 {object} utils.SuccessResponse{data=domain.DatasetStatistics}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	req, err := dto.ParseFilter(queryOf(c))
	if err != nil {
		return sendError(c, h.metrics, err)
	}

	stats, err := h.floatUC.DatasetStatistics(c.UserContext(), req)
	if err != nil {
		if !errors.IsValidation(err) {
			h.logger.Error("Failed to get statistics", zap.Error(err))
		}
		return sendError(c, h.metrics, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

// CompareRegions godoc
// @Summary Сравнение океанских регионов
// @Description Статистика температуры и солёности по предопределённым регионам. Неизвестные ключи пропускаются.
// @Tags Statistics
// @Produce json
// @Param regions query string false "Ключи регионов через запятую (по умолчанию все)"
// @Param startDate query string false "Начало периода"
// @Param endDate query string false "Конец периода"
// @Param depthRange query string false "Диапазон давления min-max" default(0-100)
// @Success 200 {object} utils.SuccessResponse{data=dto.RegionComparisonResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/compare/regions [get]
func (h *StatsHandler) CompareRegions(c *fiber.Ctx) error {
	req, err := dto.ParseCompareRegions(queryOf(c))
	if err != nil {
		return sendError(c, h.metrics, err)
	}

	regions, err := h.floatUC.CompareRegions(c.UserContext(), req.Keys, req.DateRange, req.Depth)
	if err != nil {
		if !errors.IsValidation(err) {
			h.logger.Error("Failed to compare regions", zap.Strings("regions", req.Keys), zap.Error(err))
		}
		return sendError(c, h.metrics, err)
	}

	return utils.SendSuccess(c, dto.RegionComparisonResponse{
		Regions:    regions,
		DateRange:  req.DateRange,
		DepthRange: req.Depth,
	}, &utils.Meta{Total: len(regions)})
}

// QualityControl godoc
// @Summary Распределение флагов качества
// @Description Количество измерений по уровням качества для температуры, солёности и давления с учётом фильтра
// @Tags Statistics
// @Produce json
// @Param startDate query string false "Начало периода"
// @Param endDate query string false "Конец периода"
// @Param platformNumbers query string false "Номера платформ через запятую"
// @Success 200 {object} utils.SuccessResponse{data=dto.QualityControlStatsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/quality-control-stats [get]
func (h *StatsHandler) QualityControl(c *fiber.Ctx) error {
	req, err := dto.ParseFilter(queryOf(c))
	if err != nil {
		return sendError(c, h.metrics, err)
	}

	stats, err := h.floatUC.QualityControlStats(c.UserContext(), req)
	if err != nil {
		return sendError(c, h.metrics, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
