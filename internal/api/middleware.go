package api

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/ihbirlik/geocoord-pro/internal/pkg/constants"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/logger"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/utils"
)

// LogContextMiddleware tags the request context with the request id and the
// well id, if any, so service logs can be traced back to the request.
func (svc *APIService) LogContextMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		fields := []interface{}{constants.CtxKeyRequestID, ctx.Response().Header().Get(echo.HeaderXRequestID)}
		if wellID := ctx.Param("id"); wellID != "" {
			fields = append(fields, "well_id", wellID)
		}

		req := ctx.Request()
		ctx.SetRequest(req.WithContext(logger.WithFields(req.Context(), fields...)))
		return next(ctx)
	}
}

func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		raw := bearerToken(ctx)
		if raw == "" {
			cookie, err := ctx.Cookie(constants.CookieKeySecretToken)
			if err != nil {
				return constants.ErrUnauthorized
			}
			raw = cookie.Value
		}

		token, err := utils.ParseAuthToken(raw)
		if err != nil {
			return err
		}

		secret := viper.GetString(constants.ViperSecretKey)
		if secret == "" || token.Secret != secret {
			return constants.ErrUnauthorized
		}

		return next(ctx)
	}
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
