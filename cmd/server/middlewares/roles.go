package middlewares

import (
	"fmt"
	"strings"

	"volta-cms/cmd/server/handlers/httperr"
	"volta-cms/internal/services/users"

	"github.com/gofiber/fiber/v2"
)

// actionForMethod names the action a verb implies, for the 403 message.
func actionForMethod(method string) string {
	switch method {
	case fiber.MethodGet:
		return "view"
	case fiber.MethodPost:
		return "create"
	case fiber.MethodPatch, fiber.MethodPut:
		return "update"
	case fiber.MethodDelete:
		return "delete"
	default:
		return "access"
	}
}

// RequireRoles returns the role guard. The list is an allow-list with OR
// semantics; an empty list admits any authenticated user. Must be registered
// after Auth on the same route so an unauthenticated request gets a 401
// before role checks run.
func RequireRoles(roles ...users.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return httperr.Fail(httperr.E{
				Status:  fiber.StatusUnauthorized,
				Message: "User not authenticated",
			})
		}

		if len(roles) == 0 {
			return c.Next()
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		names := make([]string, len(roles))
		for i, role := range roles {
			names[i] = string(role)
		}

		return httperr.Fail(httperr.E{
			Status: fiber.StatusForbidden,
			Message: fmt.Sprintf(
				"You do not have permission to %s this resource. Required role(s): %s. Your role: %s",
				actionForMethod(c.Method()), strings.Join(names, ", "), user.Role,
			),
		})
	}
}
