package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{
			name:    "valid",
			req:     RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"},
			wantErr: false,
		},
		{
			name:    "missing username",
			req:     RegisterRequest{Email: "alice@example.com", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "invalid email",
			req:     RegisterRequest{Username: "alice", Email: "not-an-email", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "short password",
			req:     RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserRole(t *testing.T) {
	admin := &User{IsAdmin: true}
	user := &User{}

	assert.Equal(t, RoleAdmin, admin.Role())
	assert.Equal(t, RoleUser, user.Role())
}
