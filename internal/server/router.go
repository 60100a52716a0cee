package server

import (
	"context"
	"log/slog"

	"investment-dashboard/internal/config"
	"investment-dashboard/internal/handlers"
	"investment-dashboard/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// NewRouter builds the echo instance serving the report API. ctx bounds
// background work started by middleware such as the rate limiter cleanup.
func NewRouter(ctx context.Context, cfg *config.Config, comps *Components, reg prometheus.Registerer, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(reg).Handle

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(requestLogger())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(middleware.RateLimiterWithConfig(ctx, middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.Server.RateLimitPerSecond,
		Burst:             cfg.Server.RateLimitPerSecond * 2,
		Skip:              middleware.SkipOperationalPaths,
	}))

	var db *gorm.DB
	if comps.DB != nil {
		db = comps.DB.DB
	}
	health := handlers.NewHealthCheckHandler(db, comps.Datasets)
	reports := handlers.NewReportHandler(comps.Reports)
	charts := handlers.NewChartHandler(comps.Charts)

	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1")

	api.GET("/reports", reports.GetReport)
	api.GET("/reports/monthly", reports.GetMonthlySummary)
	api.GET("/reports/products", reports.GetProductSummary)
	api.GET("/reports/clients", reports.GetClientSummary)
	api.GET("/investments", reports.ListInvestments)

	api.GET("/charts", charts.ListCharts)
	api.GET("/charts/:kind", charts.GetChart)

	api.GET("/sources/status", reports.GetSourceStatus)
	api.POST("/sources/refresh", reports.RefreshSources)

	return e
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,

		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= 500 {
				level = slog.LevelError
			} else if v.Status >= 400 {
				level = slog.LevelWarn
			}
			slog.LogAttrs(c.Request().Context(), level, "request",
				slog.String("trace_id", middleware.GetTraceID(c)),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	})
}
