package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"foodorder/internal/generated/servers"

	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RouterConfig carries the transport settings of the API.
type RouterConfig struct {
	// AdminToken protects staff operations; empty leaves them open.
	AdminToken string
	Logger     *slog.Logger
}

var registerDocsOnce sync.Once

// NewRouter builds the echo instance serving the API, the health check and the
// API document under /swagger/.
func NewRouter(server servers.ServerInterface, config RouterConfig) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	// match on paths only, whatever host the service runs behind
	swagger.Servers = nil

	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	doc, err := swagger.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}
	registerDocsOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(doc),
			LeftDelim:        "{%",
			RightDelim:       "%}",
		})
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.ERROR)
	e.HTTPErrorHandler = ErrorHandler(config.Logger)

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(config.Logger))
	e.Use(middleware.Recover())
	e.Use(StaffAuth(router, config.AdminToken))
	e.Use(RequestValidator(router))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)
	return e, nil
}
