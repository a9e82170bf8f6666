package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vncsmyrnk/cookgen/internal/core/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"revoked", domain.ErrTokenRevoked, http.StatusUnauthorized, "token has been revoked"},
		{"wrapped malformed", fmt.Errorf("%w: %w", domain.ErrInvalidCredentials, domain.ErrMalformedToken), http.StatusForbidden, "could not validate credentials"},
		{"store down", fmt.Errorf("%w: dial tcp: refused", domain.ErrDependencyUnavailable), http.StatusServiceUnavailable, "dependency unavailable"},
		{"not found hides wrap", fmt.Errorf("%w: recipe has no image", domain.ErrNotFound), http.StatusNotFound, "not found"},
		{"validation keeps fields", fmt.Errorf("%w: title: cannot be blank", domain.ErrValidation), http.StatusUnprocessableEntity, "validation failed: title: cannot be blank"},
		{"conflict", domain.ErrUserAlreadyExists, http.StatusConflict, "user already exists"},
		{"unknown", errors.New("pq: relation does not exist"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := statusFor(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.detail, detail)
		})
	}
}
