package handlers

import (
	"volta-cms/cmd/server/handlers/httperr"
	"volta-cms/cmd/server/middlewares"

	"github.com/gofiber/fiber/v2"
)

// Me returns the account the request was authenticated as.
// @Summary Get current user
// @Description Get current user information
// @Tags auth
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} httperr.Response{data=users.User}
// @Failure 401 {object} httperr.Response
// @Router /me [get]
func Me(c *fiber.Ctx) error {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return httperr.Fail(httperr.ErrUnauthorized)
	}
	return httperr.OK(c, "Current user", user)
}
