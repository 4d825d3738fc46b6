package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "agrorent-api/pkg/errors"
)

func doErrorResponse(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorBody) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ErrorResponse(c, err, nil))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestErrorResponseSentinels(t *testing.T) {
	testCases := []struct {
		err        error
		wantStatus int
	}{
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperrors.ErrNotFound, http.StatusNotFound},
		{apperrors.ErrNotFoundOrForbidden, http.StatusNotFound},
		{apperrors.ErrEmailTaken, http.StatusConflict},
		{apperrors.ErrCPFTaken, http.StatusConflict},
		{apperrors.ErrInvalidCPF, http.StatusBadRequest},
		{apperrors.ErrPhotoRequired, http.StatusBadRequest},
		{apperrors.ErrTooManyPhotos, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec, body := doErrorResponse(t, tc.err)
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.err.Error(), body.Error)
		})
	}
}

func TestErrorResponseWrappedSentinel(t *testing.T) {
	rec, body := doErrorResponse(t, fmt.Errorf("buscando equipamento: %w", apperrors.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, body.Error, "não encontrado")
}

func TestErrorResponseHttpError(t *testing.T) {
	rec, body := doErrorResponse(t, apperrors.NewTooManyRequestsError("muitas tentativas de login"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "muitas tentativas de login", body.Error)
}

func TestErrorResponseUnknownErrorIs500(t *testing.T) {
	rec, body := doErrorResponse(t, fmt.Errorf("falha interna qualquer"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", body.Error)
}
