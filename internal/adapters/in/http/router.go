package http

import (
	"errors"
	"log/slog"
	"net/http"

	"hmpaquetes/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const swaggerInstance = "hmpaquetes"

// RegisterAPIDoc publishes the embedded OpenAPI document to swag under the
// instance the /swagger/* route reads. Registering again is a no-op.
func RegisterAPIDoc() {
	if _, err := swag.ReadDoc(swaggerInstance); err == nil {
		return
	}
	swag.Register(swaggerInstance, openAPIDoc{})
}

// NewRouter builds the echo instance serving every API route plus the swagger UI
// under /swagger/*. The UI needs RegisterAPIDoc to have been called.
func NewRouter(server *Server, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.LogAttrs(c.Request().Context(), slog.LevelError, "request failed",
					slog.Group("request", attrs...), slog.String("error", v.Error.Error()))
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	servers.RegisterHandlers(e, server)

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(swaggerInstance)))

	return e
}

// NewHTTPErrorHandler answers 405 with the JSON body the quotation form expects
// and leaves every other framework error to echo.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusMethodNotAllowed {
			if writeErr := c.JSON(http.StatusMethodNotAllowed, servers.Error{Error: "Método no permitido"}); writeErr != nil {
				logger.ErrorContext(c.Request().Context(), "write error response", "error", writeErr)
			}
			return
		}

		c.Echo().DefaultHTTPErrorHandler(err, c)
	}
}

// openAPIDoc exposes the embedded OpenAPI document to swag as JSON.
type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string {
	doc, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(raw)
}
