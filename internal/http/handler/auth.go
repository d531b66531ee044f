package handler

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"

	"filesmanager/internal/service"
)

// TokenHeader carries the session token on authenticated requests.
const TokenHeader = "X-Token"

type tokenResponse struct {
	Token string `json:"token"`
}

// basicCredentials decodes "Basic base64(email:password)". ok is false for
// any other shape; the password may itself contain ':'.
func basicCredentials(header string) (email, password string, ok bool) {
	encoded, found := strings.CutPrefix(header, "Basic ")
	if !found {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", "", false
	}
	return strings.Cut(string(raw), ":")
}

// Connect godoc
// @Summary      Open a session
// @Tags         auth
// @Produce      json
// @Param        Authorization  header  string  true  "Basic base64(email:password)"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  errorPayload
// @Router       /connect [get]
func Connect(mgr service.FilesManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, password, ok := basicCredentials(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, msgUnauthorized)
		}
		sess, err := mgr.Connect(c.UserContext(), email, password)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(tokenResponse{Token: sess.Token})
	}
}

// Disconnect godoc
// @Summary      Close the current session
// @Tags         auth
// @Param        X-Token  header  string  true  "session token"
// @Success      204
// @Failure      401  {object}  errorPayload
// @Router       /disconnect [get]
func Disconnect(mgr service.FilesManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := mgr.Disconnect(c.UserContext(), c.Get(TokenHeader)); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// Me godoc
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Param        X-Token  header  string  true  "session token"
// @Success      200  {object}  model.User
// @Failure      401  {object}  errorPayload
// @Router       /users/me [get]
func Me(mgr service.FilesManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := mgr.Me(c.UserContext(), c.Get(TokenHeader))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(user)
	}
}
