package middleware

import (
	"net/http"

	"dmars/pkg/logger"
	jsonres "dmars/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo-level fallback for errors no handler converted
// into a response itself.
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

	logger.Error("request failed",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", code,
		"error", err,
	)

	if jsonErr := c.JSON(code, jsonres.Error(http.StatusText(code), message, nil)); jsonErr != nil {
		logger.Error("failed to write error response", "error", jsonErr)
	}
}
