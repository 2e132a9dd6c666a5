package middleware

import (
	"net/http"

	"brewCompass/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the central echo error handler for errors that
// escape the handlers (bad routes, panics surfaced by Recover, echo
// binding failures).
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("request failed", "path", c.Path(), "error", err.Error())
	}

	_ = c.JSON(code, map[string]interface{}{"message": message})
}
