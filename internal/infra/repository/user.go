package repository

import (
	"context"

	"tour-booking/internal/domain/user"
	"tour-booking/internal/infra"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	GetUserByID(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (sqlc.User, error)
	GetFirstAdmin(ctx context.Context, db sqlc.DBTX) (sqlc.User, error)
	UpdateUserRole(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserRoleParams) (int64, error)
	UpdateUserCredentials(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserCredentialsParams) (int64, error)
}

type UserRepository struct {
	queries UserQueries
}

func NewUserRepository(queries UserQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	err := r.queries.CreateUser(ctx, tx, sqlc.CreateUserParams{
		ID:           pgconv.UUIDToPgtype(u.ID()),
		Username:     u.Username().Value(),
		Email:        u.Email().Value(),
		Phone:        pgconv.StringPtrToPgtype(u.Phone()),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, tx, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return toUserDomain(row)
}

func (r *UserRepository) FindFirstAdmin(ctx context.Context, tx sqlc.DBTX) (*user.User, error) {
	row, err := r.queries.GetFirstAdmin(ctx, tx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find admin", err)
	}
	return toUserDomain(row)
}

func (r *UserRepository) UpdateRole(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	n, err := r.queries.UpdateUserRole(ctx, tx, sqlc.UpdateUserRoleParams{
		ID:        pgconv.UUIDToPgtype(u.ID()),
		Role:      u.Role().String(),
		UpdatedAt: pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateCredentials(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	n, err := r.queries.UpdateUserCredentials(ctx, tx, sqlc.UpdateUserCredentialsParams{
		ID:           pgconv.UUIDToPgtype(u.ID()),
		Username:     u.Username().Value(),
		PasswordHash: u.PasswordHash(),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user credentials", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func toUserDomain(row sqlc.User) (*user.User, error) {
	username, err := user.NewUsername(row.Username)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid username in storage", err, infra.KindDBFailure)
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid email in storage", err, infra.KindDBFailure)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid role in storage", err, infra.KindDBFailure)
	}
	return user.ReconstructUser(
		pgconv.UUIDFromPgtype(row.ID),
		username,
		email,
		pgconv.StringPtrFromPgtype(row.Phone),
		row.PasswordHash,
		role,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
