package auth

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{
			name:   "success",
			body:   `{"email":"alice@example.com","password":"pw","first_name":"Alice","last_name":"Liddell"}`,
			status: http.StatusOK,
			want:   `"Register endpoint"`,
		},
		{
			name:   "empty strings",
			body:   `{"email":"alice@example.com","password":"","first_name":"","last_name":""}`,
			status: http.StatusOK,
			want:   `"Register endpoint"`,
		},
		{
			name:   "null last name",
			body:   `{"email":"alice@example.com","password":"pw","first_name":"Alice","last_name":null}`,
			status: http.StatusBadRequest,
			want:   `"field":"last_name"`,
		},
		{
			name:   "invalid email",
			body:   `{"email":"alice","password":"pw","first_name":"Alice","last_name":"Liddell"}`,
			status: http.StatusBadRequest,
			want:   `"rule":"email"`,
		},
		{
			name:   "missing names",
			body:   `{"email":"alice@example.com","password":"pw"}`,
			status: http.StatusBadRequest,
			want:   `"field":"first_name"`,
		},
		{
			name:   "empty body",
			body:   `{}`,
			status: http.StatusBadRequest,
			want:   "validation failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newJSONCtx(newEcho(), tt.body)
			require.NoError(t, RegisterHandler()(ctx))
			require.Equal(t, tt.status, rec.Code)
			require.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestRegisterHandlerWithoutValidator(t *testing.T) {
	ctx, rec := newJSONCtx(echo.New(), `{"email":"alice@example.com"}`)
	require.NoError(t, RegisterHandler()(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
