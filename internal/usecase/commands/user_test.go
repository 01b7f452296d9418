//go:build unit

package commands

import (
	"context"
	"testing"

	"tour-booking/internal/domain/access"
	"tour-booking/internal/domain/user"
	"tour-booking/internal/pkg/clock"
	"tour-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserCommands_UpdateRole(t *testing.T) {
	tests := []struct {
		name     string
		actor    access.Principal
		target   func(*memUoW) uuid.UUID
		role     string
		wantErr  error
		wantRole user.Role
	}{
		{
			name:     "promote",
			actor:    admin(),
			target:   func(m *memUoW) uuid.UUID { return m.addUser(user.RoleUser, "a@example.com", "") },
			role:     "admin",
			wantRole: user.RoleAdmin,
		},
		{
			name:     "user denied",
			actor:    member(),
			target:   func(m *memUoW) uuid.UUID { return m.addUser(user.RoleUser, "a@example.com", "") },
			role:     "admin",
			wantErr:  access.ErrAuthorizationDenied,
			wantRole: user.RoleUser,
		},
		{
			name:    "missing user",
			actor:   admin(),
			target:  func(*memUoW) uuid.UUID { return uuid.New() },
			role:    "admin",
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := newMemUoW()
			id := tt.target(uow)

			err := NewUserCommands(uow, clock.NewRealClock()).UpdateRole(context.Background(), tt.actor, id, tt.role)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantRole != "" {
				assert.Equal(t, tt.wantRole, uow.users[id].role)
			}
		})
	}

	t.Run("invalid role", func(t *testing.T) {
		uow := newMemUoW()
		id := uow.addUser(user.RoleUser, "a@example.com", "")

		err := NewUserCommands(uow, clock.NewRealClock()).UpdateRole(context.Background(), admin(), id, "owner")

		assert.True(t, errs.Is(err, ErrDomainValidationFailed))
	})
}
