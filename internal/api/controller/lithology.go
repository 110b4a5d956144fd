package controller

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ihbirlik/geocoord-pro/internal/domain/dto"
)

func (c *Controller) ReplaceLithology(ctx echo.Context) error {
	var req dto.ReplaceLithologyRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	well, err := c.service.ReplaceLithology(ctx.Request().Context(), ctx.Param("id"), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, well)
}

// ImportLithology accepts either a raw text/html body or a JSON body with an
// "html" field.
func (c *Controller) ImportLithology(ctx echo.Context) error {
	var body io.Reader
	if strings.HasPrefix(ctx.Request().Header.Get(echo.HeaderContentType), echo.MIMETextHTML) {
		body = ctx.Request().Body
	} else {
		var req dto.ImportLithologyRequest
		if err := ctx.Bind(&req); err != nil {
			return err
		}
		body = strings.NewReader(req.HTML)
	}

	well, err := c.service.ImportLithologyHTML(ctx.Request().Context(), ctx.Param("id"), body)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, well)
}

func (c *Controller) UpdateSegmentLugeon(ctx echo.Context) error {
	var req dto.UpdateSegmentLugeonRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	well, err := c.service.UpdateSegmentLugeon(ctx.Request().Context(), ctx.Param("id"), ctx.Param("segment_id"), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, well)
}

func (c *Controller) SyncLithology(ctx echo.Context) error {
	resp, err := c.service.SyncLithology(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}
