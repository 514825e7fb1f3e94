package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/showroom-hq/showroom/pkg/services"
	"github.com/showroom-hq/showroom/pkg/session"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "validation error",
			err:  services.NewValidationError("content", "is required"),
			want: http.StatusBadRequest,
		},
		{
			name: "not found",
			err:  services.ErrNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "environment not found",
			err:  session.ErrEnvNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "already exists",
			err:  services.ErrAlreadyExists,
			want: http.StatusConflict,
		},
		{
			name: "unexpected error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.want, he.Code)
		})
	}
}
