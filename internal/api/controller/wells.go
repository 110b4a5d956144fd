package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ihbirlik/geocoord-pro/internal/domain/dto"
)

func (c *Controller) CreateWell(ctx echo.Context) error {
	var req dto.CreateWellRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	well, err := c.service.CreateWell(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, well)
}

func (c *Controller) ListWells(ctx echo.Context) error {
	wells, err := c.service.ListWells(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, wells)
}

func (c *Controller) GetWell(ctx echo.Context) error {
	well, err := c.service.GetWell(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, well)
}

func (c *Controller) DeleteWell(ctx echo.Context) error {
	if err := c.service.DeleteWell(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) UpdateGeometry(ctx echo.Context) error {
	var req dto.UpdateGeometryRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	well, err := c.service.UpdateGeometry(ctx.Request().Context(), ctx.Param("id"), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, well)
}
