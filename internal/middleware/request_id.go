package middleware

import (
	"context"

	"brewCompass/business/recommender"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns every request a trace id, reusing the caller's
// X-Request-ID when present. The id travels in the request context so
// engine debug logs can be correlated with access logs.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), recommender.TraceIDKey, id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(requestIDHeader, id)

			return next(c)
		}
	}
}
