package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vietanh2810/youthopia-api/internal/domain"
)

func TestErrFromDomain(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{name: "duplicate", err: domain.ErrDuplicateContact, wantStatus: http.StatusConflict, wantReason: "duplicate_contact"},
		{name: "credentials", err: domain.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantReason: "invalid_credentials"},
		{name: "deactivated", err: domain.ErrAccountDeactivated, wantStatus: http.StatusUnauthorized, wantReason: "account_deactivated"},
		{name: "validation", err: &domain.ValidationError{Reason: "bad_code"}, wantStatus: http.StatusBadRequest, wantReason: "bad_code"},
		{name: "not found", err: fmt.Errorf("wrapped -> %w", domain.ErrUserNotFound), wantStatus: http.StatusNotFound, wantReason: "user_not_found"},
		{name: "unexpected", err: errors.New("disk full"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ErrFromDomain("test", tt.err)
			assert.Equal(t, tt.wantStatus, got.HTTPStatusCode)
			assert.Equal(t, tt.wantReason, got.Reason)
		})
	}

	internal := ErrFromDomain("test", errors.New("disk full"))
	assert.NotContains(t, internal.ErrorMsg, "disk full")
}
