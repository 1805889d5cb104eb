package middleware

import (
	"log"
	"net/http"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every unhandled error as {"message": ...}, matching
// the payload shape the HTTP actor on the client side decodes. Internal
// errors are logged in full but reported generically.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	if code >= http.StatusInternalServerError {
		log.Printf("[HTTP] %s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
		msg = "internal server error"
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
