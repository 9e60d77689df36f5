// Package middleware provides fiber middleware shared across routes.
package middleware

import (
	"github.com/dfcarvalho/grana/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JwtProtected guards a route with HS256 bearer-token auth. The parsed
// token lands in c.Locals("user").
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			c.Set(fiber.HeaderContentType, "application/problem+json")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"type":   "about:blank",
				"title":  "Unauthorized",
				"status": fiber.StatusUnauthorized,
				"detail": "missing or invalid token",
			})
		},
	})
}
