package handler

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/argo-float-service/internal/pkg/errors"
	"github.com/argo-float-service/internal/pkg/metrics"
	"github.com/argo-float-service/internal/pkg/utils"
	"github.com/argo-float-service/internal/usecase/dto"
)

// queryOf адаптирует query string запроса к dto.Query
func queryOf(c *fiber.Ctx) dto.Query {
	return func(key string) string {
		return c.Query(key)
	}
}

// sendError учитывает отклонённое поле фильтра и отдаёт ошибку клиенту
func sendError(c *fiber.Ctx, m *metrics.Provider, err error) error {
	var ve *errors.ValidationError
	if stderrors.As(err, &ve) {
		m.ValidationFailed(ve.Field)
	}
	return utils.SendError(c, err)
}
