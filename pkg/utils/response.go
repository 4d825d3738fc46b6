package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "agrorent-api/pkg/errors"
)

// ErrorBody is the uniform error payload: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorResponse is the single boundary that maps the error taxonomy to an
// HTTP status and message. Handlers never build error payloads themselves.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return c.JSON(httpErr.Code, ErrorBody{Error: httpErr.Message})
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		msgs := make([]string, 0, len(valErrs))
		for _, fe := range valErrs {
			msgs = append(msgs, fieldErrorMessage(fe))
		}
		return c.JSON(http.StatusBadRequest, ErrorBody{Error: strings.Join(msgs, "; ")})
	}

	if code := statusOfChain(err); code != 0 {
		return c.JSON(code, ErrorBody{Error: err.Error()})
	}

	if logger != nil {
		logger.Error("erro não tratado", zap.Error(err))
	}
	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal Server Error"})
}

// statusOfChain walks the wrap chain looking for a registered sentinel.
func statusOfChain(err error) int {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if code := apperrors.StatusOf(e); code != 0 {
			return code
		}
	}
	return 0
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: campo obrigatório", field)
	case "email":
		return fmt.Sprintf("%s: e-mail inválido", field)
	case "min":
		return fmt.Sprintf("%s: mínimo de %s caracteres", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s: máximo de %s caracteres", field, fe.Param())
	case "cpf":
		return fmt.Sprintf("%s: CPF inválido", field)
	case "oneof":
		return fmt.Sprintf("%s: valor fora da lista permitida", field)
	case "br_state":
		return fmt.Sprintf("%s: UF inválida", field)
	case "year_range":
		return fmt.Sprintf("%s: ano fora do intervalo permitido", field)
	default:
		return fmt.Sprintf("%s: valor inválido (%s)", field, fe.Tag())
	}
}
