package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/markusressel/lednice/internal/protocol"
	"github.com/markusressel/lednice/internal/statistics"
	"github.com/prometheus/client_golang/prometheus"
)

// restService answers HTTP requests by issuing vendor control requests to the handler
type restService struct {
	handler  protocol.Handler
	history  *statistics.History
	ledCount int
}

// CreateRestService creates the REST api. HTTP metrics are registered with registerer, if it is not nil.
func CreateRestService(
	handler protocol.Handler,
	history *statistics.History,
	ledCount int,
	registerer prometheus.Registerer,
) *echo.Echo {
	echoRest := echo.New()
	echoRest.HideBanner = true
	echoRest.HidePort = true

	// Root level middleware
	echoRest.Pre(middleware.AddTrailingSlash())

	echoRest.Use(middleware.Secure())
	echoRest.Use(middleware.Recover())

	if registerer != nil {
		echoRest.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  "lednice",
			Subsystem:  "api",
			Registerer: registerer,
		}))
	}

	service := &restService{
		handler:  handler,
		history:  history,
		ledCount: ledCount,
	}

	echoRest.GET("/alive/", isAlive)

	registerDeviceEndpoints(echoRest, service)
	registerLedEndpoints(echoRest, service)

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
