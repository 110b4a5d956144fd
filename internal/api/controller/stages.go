package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ihbirlik/geocoord-pro/internal/domain/dto"
)

func (c *Controller) AddStage(ctx echo.Context) error {
	var req dto.AddStageRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	well, err := c.service.AddStage(ctx.Request().Context(), ctx.Param("id"), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, well)
}

func (c *Controller) UpdateStageConfig(ctx echo.Context) error {
	var req dto.UpdateStageConfigRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	well, err := c.service.UpdateStageConfig(ctx.Request().Context(), ctx.Param("id"), ctx.Param("stage_id"), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, well)
}

func (c *Controller) UpdateStageDepths(ctx echo.Context) error {
	var req dto.UpdateStageDepthsRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	well, err := c.service.UpdateStageDepths(ctx.Request().Context(), ctx.Param("id"), ctx.Param("stage_id"), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, well)
}

func (c *Controller) SetStageFlowType(ctx echo.Context) error {
	var req dto.SetFlowTypeRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	well, err := c.service.SetStageFlowType(ctx.Request().Context(), ctx.Param("id"), ctx.Param("stage_id"), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, well)
}

func (c *Controller) DeleteStage(ctx echo.Context) error {
	well, err := c.service.DeleteStage(ctx.Request().Context(), ctx.Param("id"), ctx.Param("stage_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, well)
}

func (c *Controller) UpdateMeasurement(ctx echo.Context) error {
	var req dto.UpdateMeasurementRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	well, err := c.service.UpdateMeasurement(
		ctx.Request().Context(),
		ctx.Param("id"),
		ctx.Param("stage_id"),
		ctx.Param("measurement_id"),
		req,
	)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, well)
}
