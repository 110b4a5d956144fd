package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ihbirlik/geocoord-pro/internal/domain"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/constants"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/logger"
)

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	msg := err.Error()
	code := http.StatusInternalServerError

	var (
		ce *constants.CodedError
		he *echo.HTTPError
	)
	switch {
	case errors.As(err, &ce):
		code = ce.Code()
	case errors.As(err, &he):
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}

	if code >= http.StatusInternalServerError {
		logger.Errorf(c.Request().Context(), "%s %s: %s", c.Request().Method, c.Path(), err.Error())
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
