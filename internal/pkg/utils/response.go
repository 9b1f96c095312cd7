package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/argo-float-service/internal/pkg/errors"
	"github.com/argo-float-service/internal/pkg/pagination"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total      int     `json:"total,omitempty"`
	Page       int     `json:"page,omitempty"`
	Limit      int     `json:"limit,omitempty"`
	TotalPages int     `json:"totalPages,omitempty"`
	HasNext    bool    `json:"hasNext,omitempty"`
	HasPrev    bool    `json:"hasPrev,omitempty"`
	TimeMSec   float64 `json:"time_ms,omitempty"`
}

// PageMeta переносит метаданные страницы в meta ответа
func PageMeta(p pagination.Page) *Meta {
	return &Meta{
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
		HasNext:    p.HasNext,
		HasPrev:    p.HasPrev,
	}
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendError отдаёт ошибку в формате {error}; ValidationError, ExecutionError и
// AppError маппятся на свои статусы, всё остальное - 500
func SendError(c *fiber.Ctx, err error) error {
	appErr := errors.ToAppError(err)
	return c.Status(errors.StatusCode(appErr)).JSON(ErrorResponse{
		Error: appErr,
	})
}
