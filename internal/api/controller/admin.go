package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ihbirlik/geocoord-pro/internal/domain/dto"
)

func (c *Controller) RecomputeWells(ctx echo.Context) error {
	processed, err := c.service.RecomputeAll(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.RecomputeResponse{Processed: processed})
}
