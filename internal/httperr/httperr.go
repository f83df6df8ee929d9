package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agendalivre/agenda-crm/internal/apperr"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Handle traduz o Kind do erro para o status HTTP. Erros fora da taxonomia
// caem em 500 com a mensagem original (API interna; ver DESIGN.md).
func Handle(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		Internal(c, "internal_error", err.Error())
		return
	}

	switch ae.Kind {
	case apperr.KindAuthorization:
		Forbidden(c, ae.Code, ae.Message)
	case apperr.KindNotFound:
		NotFound(c, ae.Code, ae.Message)
	case apperr.KindValidation:
		BadRequest(c, ae.Code, ae.Message)
	default:
		Internal(c, ae.Code, ae.Message)
	}
}
