package commands

import (
	"context"
	"log/slog"

	"tour-booking/internal/domain/access"
	"tour-booking/internal/domain/user"
	"tour-booking/internal/infra"
	"tour-booking/internal/pkg/clock"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserCommands interface {
	UpdateRole(ctx context.Context, actor access.Principal, userID uuid.UUID, role string) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (c *userCommandsImpl) UpdateRole(ctx context.Context, actor access.Principal, userID uuid.UUID, role string) error {
	if err := actor.Authorize(access.OpManageUserRoles); err != nil {
		return err
	}

	newRole, err := user.NewRole(role)
	if err != nil {
		return errs.Mark(err, ErrDomainValidationFailed)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, tx.DB(), userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := u.ChangeRole(newRole, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrDomainValidationFailed)
		}

		if err := tx.Users().UpdateRole(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("user role changed",
		slog.String("user_id", userID.String()),
		slog.String("role", newRole.String()),
		slog.String("actor_id", actor.UserID.String()))
	return nil
}
