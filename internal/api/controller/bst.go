package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ihbirlik/geocoord-pro/internal/domain/dto"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/bst"
)

func (c *Controller) PressureSteps(ctx echo.Context) error {
	var req dto.PressureStepsRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	typ := bst.NormalizePressureType(req.PressureType)
	steps := bst.PressureSteps(bst.Number(req.MaxPressure), typ, req.Reversible)
	if steps == nil {
		steps = []float64{}
	}

	return ctx.JSON(http.StatusOK, dto.PressureStepsResponse{PressureType: typ, Steps: steps})
}

func (c *Controller) Lugeon(ctx echo.Context) error {
	var req dto.LugeonRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	res := bst.CalculateLugeon(bst.LugeonInput{
		TotalLoss:        bst.Number(req.TotalLoss),
		AppliedPressure:  bst.Number(req.AppliedPressure),
		StageLength:      bst.Number(req.StageLength),
		CenterDepth:      bst.Number(req.CenterDepth),
		GroundwaterDepth: bst.NumberOr(req.GroundwaterDepth, bst.DefaultGroundwaterDepth),
		ManometerHeight:  bst.NumberOr(req.ManometerHeight, bst.DefaultManometerHeight),
		Diameter:         bst.NumberOr(req.Diameter, bst.DefaultDiameter),
	})
	lugeon := bst.Fixed2(res.Lugeon)

	return ctx.JSON(http.StatusOK, dto.LugeonResponse{
		Lugeon:             lugeon,
		EffectivePressure:  bst.Fixed2(res.EffectivePressure),
		PermeabilityStatus: bst.PermeabilityStatus(lugeon),
	})
}

func (c *Controller) Permeability(ctx echo.Context) error {
	lugeon := ctx.QueryParam("lugeon")

	return ctx.JSON(http.StatusOK, dto.PermeabilityResponse{
		Lugeon: lugeon,
		Status: bst.PermeabilityStatus(lugeon),
	})
}
