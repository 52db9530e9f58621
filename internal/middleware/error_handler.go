package middleware

import (
	"net/http"

	"github.com/DiogoFabricioAG/connect2/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as the API's JSON error envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
