package dto

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/socialdev/pkg/util"
)

func messagesOf(t *testing.T, err error) []string {
	t.Helper()
	de := apperrors.ToDomainError(err)
	require.NotNil(t, de)
	require.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	return de.Messages
}

func TestDecodeLogin(t *testing.T) {
	var ok LoginRequest
	require.NoError(t, Decode([]byte(`{"email":"a@x.com","password":"secret1"}`), &ok))
	assert.Equal(t, "a@x.com", ok.Email)

	cases := []struct {
		name string
		body string
		want []string
	}{
		{"bad email", `{"email":"nope","password":"secret1"}`, []string{"El email debe ser válido"}},
		{"short password", `{"email":"a@x.com","password":"12345"}`, []string{"La contraseña debe tener al menos 6 caracteres"}},
		{"empty body", ``, []string{"El email es requerido", "La contraseña es requerida"}},
		{"numeric password", `{"email":"a@x.com","password":123456}`, []string{"La contraseña debe ser un texto"}},
		{"unknown field", `{"email":"a@x.com","password":"secret1","role":"admin"}`, []string{"property role should not exist"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req LoginRequest
			assert.Equal(t, tc.want, messagesOf(t, Decode([]byte(tc.body), &req)))
		})
	}
}

func TestDecodePostContent(t *testing.T) {
	var req PostContentRequest
	require.NoError(t, Decode([]byte(`{"content":"`+strings.Repeat("ñ", 500)+`"}`), &req))
	assert.Len(t, []rune(req.Content), 500)

	req = PostContentRequest{}
	assert.Equal(t, []string{"El contenido no puede exceder 500 caracteres"},
		messagesOf(t, Decode([]byte(`{"content":"`+strings.Repeat("a", 501)+`"}`), &req)))

	req = PostContentRequest{}
	assert.Equal(t, []string{"El contenido es requerido"},
		messagesOf(t, Decode([]byte(`{"content":""}`), &req)))

	req = PostContentRequest{}
	assert.Equal(t, []string{"property userId should not exist"},
		messagesOf(t, Decode([]byte(`{"content":"x","userId":"someone"}`), &req)))
}

func TestDecodeMalformed(t *testing.T) {
	var req PostContentRequest
	err := Decode([]byte(`{"content":`), &req)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	assert.Equal(t, "Invalid JSON payload", de.Message)

	err = Decode([]byte(`{"content":"a"} {"content":"b"}`), &req)
	assert.True(t, apperrors.IsStatus(err, http.StatusBadRequest))
}

func TestDecodePostContentRejectsNul(t *testing.T) {
	var req PostContentRequest
	assert.Equal(t, []string{"El contenido no puede contener caracteres nulos"},
		messagesOf(t, Decode([]byte(`{"content":"a\u0000b"}`), &req)))
}
