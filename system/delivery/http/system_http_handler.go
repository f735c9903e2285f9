package http

import (
	"net/http"
	"net/http/pprof"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/osmosis-labs/psq/domain"
	"github.com/osmosis-labs/psq/log"
)

type SystemHandler struct {
	logger log.Logger
	config domain.Config
}

const (
	versionPlaceholder    = "version="
	whiteSpacePlaceholder = " "
)

// NewSystemHandler will initialize the system resources endpoint
func NewSystemHandler(e *echo.Echo, config domain.Config, logger log.Logger) {
	handler := &SystemHandler{
		logger: logger,
		config: config,
	}

	// if debug mode, enable additional profiles that are too intensive
	// for production.
	if !config.LoggerIsProduction {
		runtime.SetMutexProfileFraction(2)
		runtime.SetBlockProfileRate(2)
	}

	e.GET("/debug/pprof/*", echo.WrapHandler(http.DefaultServeMux))
	e.GET("/debug/pprof/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	e.GET("/debug/pprof/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	e.GET("/debug/pprof/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	e.GET("/debug/pprof/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))

	e.GET("/healthcheck", handler.GetHealthStatus)
	e.GET("/config", handler.GetConfig)
	e.GET("/version", handler.GetVersion)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// GetConfig returns the config for the service
func (h *SystemHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, h.config)
}

// GetVersion returns the version embedded in the build info
func (h *SystemHandler) GetVersion(c echo.Context) error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read build info")
	}

	for _, setting := range buildInfo.Settings {
		if strings.Contains(setting.Value, versionPlaceholder) {
			version := strings.Split(setting.Value, versionPlaceholder)[1]
			return c.JSON(http.StatusOK, strings.Split(version, whiteSpacePlaceholder)[0])
		}
	}

	return c.JSON(http.StatusOK, buildInfo.Main.Version)
}

// GetHealthStatus handles health check requests
func (h *SystemHandler) GetHealthStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":   "running",
		"chain_id": h.config.ChainID,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
