//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"tour-booking/internal/domain/user"
	"tour-booking/internal/infra"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	username, _ := user.NewUsername("hanako")
	email, _ := user.NewEmail("hanako@example.com")
	u := user.NewUser(username, email, nil, "hash", user.RoleUser, time.Now())

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "duplicate email", mockErr: &pgconn.PgError{Code: pgconv.CodeUniqueViolation}, wantKind: infra.KindDuplicateKey},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserQueries)
			q.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
				return p.Email == "hanako@example.com" && p.Role == "user" && !p.Phone.Valid
			})).Return(tt.mockErr)

			err := NewUserRepository(q).Create(context.Background(), nil, u)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestUserRepository_FindFirstAdmin(t *testing.T) {
	id := uuid.New()
	phone := "090-1111-2222"

	t.Run("found", func(t *testing.T) {
		q := new(MockUserQueries)
		q.On("GetFirstAdmin", mock.Anything, mock.Anything).Return(sqlc.User{
			ID:           pgconv.UUIDToPgtype(id),
			Username:     "admin",
			Email:        "admin@example.com",
			Phone:        pgconv.StringPtrToPgtype(&phone),
			PasswordHash: "hash",
			Role:         "admin",
		}, nil)

		u, err := NewUserRepository(q).FindFirstAdmin(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, id, u.ID())
		assert.True(t, u.IsAdmin())
		require.NotNil(t, u.Phone())
		assert.Equal(t, phone, *u.Phone())
	})

	t.Run("none", func(t *testing.T) {
		q := new(MockUserQueries)
		q.On("GetFirstAdmin", mock.Anything, mock.Anything).Return(sqlc.User{}, pgx.ErrNoRows)

		_, err := NewUserRepository(q).FindFirstAdmin(context.Background(), nil)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
