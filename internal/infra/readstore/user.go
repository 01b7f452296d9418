package readstore

import (
	"context"

	"tour-booking/internal/infra"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/pkg/pgconv"
	"tour-booking/internal/usecase/queries"
	"tour-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (sqlc.User, error)
	GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.User, error)
	ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListUsersRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{queries: queries, db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &queries.UserView{
		ID:        pgconv.UUIDFromPgtype(row.ID),
		Username:  row.Username,
		Email:     row.Email,
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		Role:      row.Role,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.UserView{
			ID:        pgconv.UUIDFromPgtype(row.ID),
			Username:  row.Username,
			Email:     row.Email,
			Phone:     pgconv.StringPtrFromPgtype(row.Phone),
			Role:      row.Role,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

// SnapshotByEmail includes the password hash and is only used by login.
func (r *UserReadStore) SnapshotByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return toUserSnapshot(row), nil
}

func (r *UserReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserSnapshot(row), nil
}

func toUserSnapshot(row sqlc.User) *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           pgconv.UUIDFromPgtype(row.ID),
		Username:     row.Username,
		Email:        row.Email,
		Phone:        pgconv.StringPtrFromPgtype(row.Phone),
		PasswordHash: row.PasswordHash,
		Role:         row.Role,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
