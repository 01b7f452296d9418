package commands

import (
	"context"
	"fmt"
	"log/slog"

	"tour-booking/internal/domain/user"
	"tour-booking/internal/infra"
	"tour-booking/internal/pkg/clock"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/pkg/password"
	"tour-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResetAdminResult struct {
	UserID  uuid.UUID
	Email   string
	Created bool
}

// AdminCommands backs the operator CLI and bypasses the role gate.
type AdminCommands interface {
	ResetAdmin(ctx context.Context, username, plainPassword string) (*ResetAdminResult, error)
}

type adminCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAdminCommands(uow shared.UnitOfWork, clk clock.Clock) AdminCommands {
	return &adminCommandsImpl{uow: uow, clock: clk}
}

// ResetAdmin overwrites the oldest admin's username and password, or creates
// an admin with the address <username>@example.com when none exists.
func (c *adminCommandsImpl) ResetAdmin(ctx context.Context, username, plainPassword string) (*ResetAdminResult, error) {
	name, err := user.NewUsername(username)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	pw, err := user.NewPassword(plainPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	hash, err := password.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	var result ResetAdminResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		admin, err := tx.Users().FindFirstAdmin(ctx, tx.DB())
		switch {
		case err == nil:
			admin.ResetCredentials(name, hash, now)
			if err := tx.Users().UpdateCredentials(ctx, tx.DB(), admin); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			result = ResetAdminResult{UserID: admin.ID(), Email: admin.Email().Value()}
			return nil
		case infra.IsKind(err, infra.KindNotFound):
			email, err := user.NewEmail(fmt.Sprintf("%s@example.com", name.Value()))
			if err != nil {
				return errs.Mark(err, ErrDomainValidationFailed)
			}
			admin := user.NewUser(name, email, nil, hash, user.RoleAdmin, now)
			if err := tx.Users().Create(ctx, tx.DB(), admin); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return ErrEmailAlreadyExists
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			result = ResetAdminResult{UserID: admin.ID(), Email: email.Value(), Created: true}
			return nil
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	})
	if err != nil {
		return nil, err
	}

	slog.Info("admin credentials reset", slog.String("user_id", result.UserID.String()), slog.Bool("created", result.Created))
	return &result, nil
}
