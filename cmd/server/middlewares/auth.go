package middlewares

import (
	"context"
	"errors"

	"volta-cms/cmd/server/handlers/httperr"
	"volta-cms/internal/config"
	"volta-cms/internal/logger"
	"volta-cms/internal/services/users"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CurrentUserKey is the Locals key the auth guard stores the resolved user under.
const CurrentUserKey = "currentUser"

// CookieName is the session cookie the login handler sets and the guard reads.
const CookieName = "Authentication"

// UserLoader is the slice of the users service the auth guard needs.
type UserLoader interface {
	Get(ctx context.Context, id bson.ObjectID) (*users.User, error)
}

var (
	errNoToken      = httperr.E{Status: fiber.StatusUnauthorized, Message: "No authentication token provided"}
	errInvalidToken = httperr.E{Status: fiber.StatusUnauthorized, Message: "Invalid token"}
)

// Auth returns the authentication guard. The token is taken from the
// Authorization header first and the session cookie second, in that order.
// On success the full user record is resolved and stored in
// c.Locals(CurrentUserKey) so downstream handlers and the role guard can
// trust it.
func Auth(cfg config.Config, loader UserLoader) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		TokenLookup: "header:Authorization,cookie:" + CookieName,
		AuthScheme:  "Bearer",
		SuccessHandler: func(c *fiber.Ctx) error {
			// Signature and expiry already verified at this point.
			token := c.Locals("user").(*jwt.Token)
			claims, _ := token.Claims.(jwt.MapClaims)

			userIDHex, ok := claims["user_id"].(string)
			if !ok || userIDHex == "" {
				return httperr.Fail(errInvalidToken)
			}

			userID, err := bson.ObjectIDFromHex(userIDHex)
			if err != nil {
				return httperr.Fail(errInvalidToken)
			}

			user, err := loader.Get(c.Context(), userID)
			if err != nil {
				// A token for a deleted account is as good as no token.
				if !errors.Is(err, users.ErrUserNotFound) {
					logger.L().Error("failed to resolve token user", "userID", userIDHex, "error", err)
				}
				return httperr.Fail(errInvalidToken)
			}

			c.Locals(CurrentUserKey, user)
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				return httperr.Fail(errNoToken)
			}
			return httperr.Fail(errInvalidToken)
		},
	})
}

// CurrentUser returns the user the auth guard attached to the request.
func CurrentUser(c *fiber.Ctx) (*users.User, bool) {
	user, ok := c.Locals(CurrentUserKey).(*users.User)
	return user, ok && user != nil
}
