package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("enroll: %w", NotFound("O curso informado não existe."))

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(wrapped, KindValidation))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.False(t, IsKind(nil, KindUnknown))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(KindCorruptCache, "cache", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "cache: disk full", err.Error())
}

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", Validation("Dados inválidos"), http.StatusBadRequest, "Dados inválidos"},
		{"authentication", Authentication("E-mail ou senha inválidos!"), http.StatusBadRequest, "E-mail ou senha inválidos!"},
		{"not found", NotFound("O curso informado não existe."), http.StatusBadRequest, "O curso informado não existe."},
		{"invalid state", InvalidState("user without id"), http.StatusInternalServerError, "Erro interno do servidor"},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError, "Erro interno do servidor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)

			resp := httpErr.ToErrorResponse()
			assert.True(t, resp.Error)
			assert.Equal(t, tt.wantMsg, resp.Msg)
		})
	}
}
