package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ihbirlik/geocoord-pro/internal/service/well"
)

type Controller struct {
	service *well.Service
}

func NewController(service *well.Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) Healthz(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
