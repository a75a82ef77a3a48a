package middleware

import (
	"net/http"

	"fsmpAdvisor/pkg/logger"

	jsonres "fsmpAdvisor/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo fallback for errors that escape the handlers.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("unhandled request error", err, "path", c.Path())
	}

	_ = c.JSON(code, jsonres.Error(http.StatusText(code), message, nil))
}
