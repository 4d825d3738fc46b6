package errors

import (
	"fmt"
	"net/http"
)

// Sentinel errors shared across services and repositories. User facing
// messages are in Portuguese, matching the rest of the API surface.
var (
	// Tokens and authentication.
	ErrInvalidSigningMethod = fmt.Errorf("método de assinatura do token inválido")
	ErrInvalidToken         = fmt.Errorf("token inválido")
	ErrTokenExpired         = fmt.Errorf("token expirado")
	ErrEmptyAuthHeader      = fmt.Errorf("cabeçalho de autorização ausente")
	ErrInvalidAuthHeader    = fmt.Errorf("cabeçalho de autorização malformado")
	ErrInvalidCredentials   = fmt.Errorf("credenciais inválidas")
	ErrUnauthorized         = fmt.Errorf("não autorizado")

	// Domain.
	ErrNotFound = fmt.Errorf("não encontrado")
	// ErrNotFoundOrForbidden deliberately keeps one message for both the
	// missing-row and wrong-owner cases so callers cannot probe for existence.
	ErrNotFoundOrForbidden = fmt.Errorf("não encontrado / sem permissão")
	ErrInvalidCPF          = fmt.Errorf("CPF inválido")
	ErrEmailTaken          = fmt.Errorf("e-mail já cadastrado")
	ErrCPFTaken            = fmt.Errorf("CPF já cadastrado")
	ErrDuplicateRecord     = fmt.Errorf("registro duplicado")
	ErrPhotoRequired       = fmt.Errorf("envie ao menos 1 foto (photos[])")
	ErrTooManyPhotos       = fmt.Errorf("máximo de 5 fotos por envio")

	ErrBadRequest = fmt.Errorf("requisição inválida")
)

// statusByError maps sentinel errors to HTTP status codes at the single
// response boundary (utils.ErrorResponse).
var statusByError = map[error]int{
	ErrInvalidSigningMethod: http.StatusUnauthorized,
	ErrInvalidToken:         http.StatusUnauthorized,
	ErrTokenExpired:         http.StatusUnauthorized,
	ErrEmptyAuthHeader:      http.StatusUnauthorized,
	ErrInvalidAuthHeader:    http.StatusUnauthorized,
	ErrInvalidCredentials:   http.StatusUnauthorized,
	ErrUnauthorized:         http.StatusUnauthorized,

	ErrNotFound:            http.StatusNotFound,
	ErrNotFoundOrForbidden: http.StatusNotFound,
	ErrInvalidCPF:          http.StatusBadRequest,
	ErrEmailTaken:          http.StatusConflict,
	ErrCPFTaken:            http.StatusConflict,
	ErrDuplicateRecord:     http.StatusConflict,
	ErrPhotoRequired:       http.StatusBadRequest,
	ErrTooManyPhotos:       http.StatusBadRequest,

	ErrBadRequest: http.StatusBadRequest,
}

// StatusOf returns the HTTP status registered for a sentinel error, or 0
// when the error is not one of ours.
func StatusOf(err error) int {
	return statusByError[err]
}

// HttpError carries an HTTP status alongside a user facing message and the
// underlying cause. It is the tagged error variant every handler funnels
// into the response boundary.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string { return e.Message }

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *HttpError {
	return &HttpError{Code: http.StatusUnauthorized, Message: message}
}

func NewConflictError(message string) *HttpError {
	return &HttpError{Code: http.StatusConflict, Message: message}
}

func NewTooManyRequestsError(message string) *HttpError {
	return &HttpError{Code: http.StatusTooManyRequests, Message: message}
}
