package http

import (
	"log/slog"
	"net/http"

	"harvesthub/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterOptions tunes NewRouter.
type RouterOptions struct {
	// ValidateRequests enables OpenAPI request validation.
	ValidateRequests bool
	// HealthCheck reports readiness of the backing store; nil means always healthy.
	HealthCheck func() error
}

// NewRouter builds the echo instance: middleware, health, swagger UI and the
// generated API routes bound to server.
func NewRouter(server *Server, logger *slog.Logger, opts RouterOptions) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(swagger); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(ActorMiddleware())

	if opts.ValidateRequests {
		validator, validatorErr := RequestValidator(swagger)
		if validatorErr != nil {
			return nil, validatorErr
		}
		e.Use(validator)
	}

	e.GET("/health", func(c echo.Context) error {
		if opts.HealthCheck != nil {
			if checkErr := opts.HealthCheck(); checkErr != nil {
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	log := logger.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				log.ErrorContext(c.Request().Context(), "request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			log.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}
