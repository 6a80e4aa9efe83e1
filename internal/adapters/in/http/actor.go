package http

import (
	"net/http"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const (
	ActorIDHeader   = "X-Actor-ID"
	ActorRoleHeader = "X-Actor-Role"

	actorContextKey = "harvesthub.actor"
)

// ActorMiddleware reads the acting identity that the gateway forwards in the
// X-Actor-ID and X-Actor-Role headers. Requests without the headers pass through
// anonymously; malformed headers are rejected with 401.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawID := c.Request().Header.Get(ActorIDHeader)
			rawRole := c.Request().Header.Get(ActorRoleHeader)
			if rawID == "" && rawRole == "" {
				return next(c)
			}

			actor, err := parseActor(rawID, rawRole)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: msgBadActor,
				})
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func parseActor(rawID, rawRole string) (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.Actor{}, err
	}
	role, err := kernel.ParseRole(rawRole)
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(id, role)
}

// actorFrom returns the actor stored by ActorMiddleware.
func actorFrom(c echo.Context) (kernel.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	return actor, ok
}

// requireActor returns the actor when it holds one of roles. Otherwise it writes
// 401 or 403 and returns ok=false; the caller returns the write error.
func requireActor(c echo.Context, roles ...kernel.Role) (kernel.Actor, bool, error) {
	actor, ok := actorFrom(c)
	if !ok {
		return kernel.Actor{}, false, c.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: msgNoActor,
		})
	}

	for _, role := range roles {
		if actor.Is(role) {
			return actor, true, nil
		}
	}

	return kernel.Actor{}, false, c.JSON(http.StatusForbidden, servers.Error{
		Code:    http.StatusForbidden,
		Message: msgForbidden,
	})
}
