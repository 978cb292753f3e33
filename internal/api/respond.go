package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindError turns a binding failure into a field-aware message suitable for
// inline display.
func BindError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return validationMessage(verrs[0])
	}
	return "Invalid request body"
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "len":
		return fe.Field() + " must be exactly " + fe.Param() + " characters"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// RespondBackendError relays a backend-reported status and message when the
// error carries them, and answers 502 for transport-level failures.
func RespondBackendError(c *gin.Context, err error, fallback string) {
	var apiErr interface {
		HTTPStatus() int
		ServerMessage() string
	}
	if errors.As(err, &apiErr) {
		msg := apiErr.ServerMessage()
		if msg == "" {
			msg = fallback
		}
		c.JSON(apiErr.HTTPStatus(), ErrorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusBadGateway, ErrorResponse{Error: fallback})
}
