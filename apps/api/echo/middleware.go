package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/educonnect/core/session"
)

// routeMiddleware gates API calls with the allow-list of the route with routeID.
// It answers 401 when no session exists and 403 when the role is not allowed.
func routeMiddleware(routeID string) echo.MiddlewareFunc {
	route, ok := session.RouteByID(routeID)
	if !ok {
		panic("unknown route: " + routeID)
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			p, err := contextProvider(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context provider")
			}
			switch session.DecideRoute(p, route).Outcome {
			case session.OutcomeRender:
				return next(ctx)
			case session.OutcomeForbidden:
				return errHttpForbidden
			case session.OutcomeLoading:
				return errSessionNotReady
			default:
				return errUnauthorized
			}
		}
	}
}

// rolesMiddleware restricts a handler to users having one of roles.
func rolesMiddleware(roles ...session.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			usr, err := contextUser(ctx)
			if err != nil {
				return err
			}
			for _, role := range roles {
				if usr.Role == role {
					return next(ctx)
				}
			}
			return errHttpForbidden
		}
	}
}
