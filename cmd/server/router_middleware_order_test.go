package main

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestGuardOrder(t *testing.T) {
	type stack []string

	mw := func(s *stack, id string) fiber.Handler {
		return func(c *fiber.Ctx) error {
			*s = append(*s, id)
			return c.Next() // just record & pass through
		}
	}
	final := func(s *stack, id string) fiber.Handler {
		return func(c *fiber.Ctx) error {
			*s = append(*s, id)
			return c.SendStatus(200) // terminate the chain with 200
		}
	}

	tests := []struct {
		name   string
		method string
		path   string
		expect []string
	}{
		{"login goes through the limiter only", fiber.MethodPost, "/api/v1/auth/login", []string{"limiter", "handler"}},
		{"logout runs the auth guard after the limiter", fiber.MethodPost, "/api/v1/auth/logout", []string{"limiter", "auth", "handler"}},
		{"admin list runs auth before roles", fiber.MethodGet, "/api/v1/users", []string{"auth", "roles", "handler"}},
		{"admin mutation runs auth before roles", fiber.MethodDelete, "/api/v1/site-sections/abc", []string{"auth", "roles", "handler"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var trace stack
			app := fiber.New()

			limiterSpy := mw(&trace, "limiter")
			authSpy := mw(&trace, "auth")
			rolesSpy := mw(&trace, "roles")
			handlerSpy := final(&trace, "handler")

			switch tc.path {
			case "/api/v1/auth/login":
				app.Post(tc.path, limiterSpy, handlerSpy)
			case "/api/v1/auth/logout":
				app.Post(tc.path, limiterSpy, authSpy, handlerSpy)
			case "/api/v1/users":
				app.Get(tc.path, authSpy, rolesSpy, handlerSpy)
			default:
				app.Delete("/api/v1/site-sections/:id", authSpy, rolesSpy, handlerSpy)
			}

			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)

			assert.Equal(t, tc.expect, []string(trace),
				"middleware execution order drifted")
		})
	}
}
