package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// RequestValidator checks requests under /api/ against the OpenAPI document
// before they reach the handlers. Paths the document does not describe are left
// to the echo router.
func RequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: authenticateActor,
		MultiError:         false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, "/api/") {
				return next(c)
			}

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			ctx := context.WithValue(req.Context(), echoContextKey{}, c)
			if err = openapi3filter.ValidateRequest(ctx, input); err != nil {
				var secErr *openapi3filter.SecurityRequirementsError
				if errors.As(err, &secErr) {
					return echo.NewHTTPError(http.StatusUnauthorized, msgNoActor)
				}
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
			}

			return next(c)
		}
	}, nil
}

type echoContextKey struct{}

// authenticateActor accepts the actorHeader scheme when ActorMiddleware has
// already resolved an actor for the request.
func authenticateActor(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
	c, ok := ctx.Value(echoContextKey{}).(echo.Context)
	if !ok {
		return errors.New("no request context")
	}
	if _, ok = actorFrom(c); !ok {
		return fmt.Errorf("%s is missing", input.SecuritySchemeName)
	}
	return nil
}

// validationMessage keeps the first line of a kin-openapi error, which names the
// offending field without dumping the schema.
func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		msg := reqErr.Error()
		if i := strings.IndexByte(msg, '\n'); i >= 0 {
			msg = msg[:i]
		}
		return msg
	}
	return err.Error()
}
