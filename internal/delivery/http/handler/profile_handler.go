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

// ProfileHandler - обработчик запросов по профилям
type ProfileHandler struct {
	floatUC *usecase.FloatUseCase
	metrics *metrics.Provider
	logger  *zap.Logger
}

// NewProfileHandler - создание нового ProfileHandler
func NewProfileHandler(floatUC *usecase.FloatUseCase, m *metrics.Provider, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		floatUC: floatUC,
		metrics: m,
		logger:  logger,
	}
}

// List godoc
// @Summary Список профилей
// @Description Профили, подходящие под фильтр, новые первыми. Принимает те же параметры фильтра, что и /floats.
// @Tags Profiles
// @Produce json
// @Param startDate query string false "Начало периода"
// @Param endDate query string false "Конец периода"
// @Param platformNumbers query string false "Номера платформ через запятую"
// @Param goodOnly query bool false "Только good QC"
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы (до 100)" default(20)
// @Success 200 {object} utils.SuccessResponse{data=dto.ProfileListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/profiles [get]
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	q := queryOf(c)

	req, err := dto.ParseFilter(q)
	if err != nil {
		return sendError(c, h.metrics, err)
	}
	page := dto.ParsePage(q, pagination.DefaultLimit, pagination.MaxLimit)

	result, err := h.floatUC.ListProfiles(c.UserContext(), req, page)
	if err != nil {
		return sendError(c, h.metrics, err)
	}

	return utils.SendSuccess(c, result, utils.PageMeta(result.Profiles.Page))
}

// Measurements godoc
// @Summary Измерения профиля
// @Description Измерения одного профиля по возрастанию level_index
// @Tags Profiles
// @Produce json
// @Param id path string true "ID профиля (неотрицательное целое)"
// @Param minDepth query number false "Минимальное давление, дбар"
// @Param maxDepth query number false "Максимальное давление, дбар"
// @Param goodOnly query bool false "Только good QC"
// @Param includeQuestionable query bool false "Good и questionable QC"
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы (до 500)" default(100)
// @Success 200 {object} utils.SuccessResponse{data=dto.MeasurementsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/profiles/{id}/measurements [get]
func (h *ProfileHandler) Measurements(c *fiber.Ctx) error {
	req, err := dto.ParseMeasurements(c.Params("id"), queryOf(c))
	if err != nil {
		return sendError(c, h.metrics, err)
	}

	if err := validator.Validate(&req); err != nil {
		return sendError(c, h.metrics, err)
	}

	result, err := h.floatUC.ProfileMeasurements(c.UserContext(), req)
	if err != nil {
		return sendError(c, h.metrics, err)
	}

	return utils.SendSuccess(c, result, utils.PageMeta(result.Measurements.Page))
}
