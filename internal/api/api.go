package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"

	"github.com/ihbirlik/geocoord-pro/internal/api/controller"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/constants"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/logger"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/store"
	"github.com/ihbirlik/geocoord-pro/internal/service/well"
)

type APIService struct {
	router      *echo.Echo
	wellService *well.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Handler exposes the router, mostly for tests.
func (svc *APIService) Handler() http.Handler {
	return svc.router
}

func NewAPIService(wellStore store.Store, opts ...well.Option) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(echoLogLevel(viper.GetString(constants.ViperLogLevelKey)))
	svc.router.JSONSerializer = NewJSONSerializer()
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.RequestID())
	svc.router.Use(svc.LogContextMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperServerAllowOriginsKey),
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	svc.wellService = well.NewWellService(wellStore, opts...)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.wellService)

	api.GET("/healthz", cntrl.Healthz)

	wells := api.Group("/wells")
	wells.POST("", cntrl.CreateWell)
	wells.GET("", cntrl.ListWells)
	wells.GET("/:id", cntrl.GetWell)
	wells.DELETE("/:id", cntrl.DeleteWell)
	wells.PUT("/:id/geometry", cntrl.UpdateGeometry)

	stages := wells.Group("/:id/stages")
	stages.POST("", cntrl.AddStage)
	stages.PUT("/:stage_id/config", cntrl.UpdateStageConfig)
	stages.PUT("/:stage_id/depths", cntrl.UpdateStageDepths)
	stages.PUT("/:stage_id/flow-type", cntrl.SetStageFlowType)
	stages.DELETE("/:stage_id", cntrl.DeleteStage)
	stages.PUT("/:stage_id/measurements/:measurement_id", cntrl.UpdateMeasurement)

	lithology := wells.Group("/:id/lithology")
	lithology.PUT("", cntrl.ReplaceLithology)
	lithology.POST("/import", cntrl.ImportLithology)
	lithology.POST("/sync", cntrl.SyncLithology)
	lithology.PUT("/:segment_id/lugeon", cntrl.UpdateSegmentLugeon)

	tools := api.Group("/bst")
	tools.POST("/pressure-steps", cntrl.PressureSteps)
	tools.POST("/lugeon", cntrl.Lugeon)
	tools.GET("/permeability", cntrl.Permeability)

	admin := api.Group("/admin", svc.AdminMiddleware)
	admin.POST("/wells/recompute", cntrl.RecomputeWells)

	return svc, nil
}

func echoLogLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error", "fatal", "panic":
		return log.ERROR
	default:
		return log.INFO
	}
}
