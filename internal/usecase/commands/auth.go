package commands

import (
	"context"
	"log/slog"

	"tour-booking/internal/domain/user"
	"tour-booking/internal/infra"
	"tour-booking/internal/pkg/clock"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/pkg/jwt"
	"tour-booking/internal/pkg/password"
	"tour-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Phone    *string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID uuid.UUID
	Role   user.Role
	TokenPair
}

// TokenIssuer is the part of jwt.Service the auth commands depend on.
type TokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, role user.Role) (string, error)
	GenerateRefreshToken(userID uuid.UUID, role user.Role) (string, error)
	ValidateRefreshToken(tokenString string) (*jwt.Claims, error)
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*LoginResult, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{uow: uow, tokens: tokens, clock: clk}
}

// Register always creates a plain user; admins are promoted via role update
// or the resetadmin command.
func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*LoginResult, error) {
	username, err := user.NewUsername(in.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	hash, err := password.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(username, email, in.Phone, hash, user.RoleUser, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailAlreadyExists
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("user registered", slog.String("user_id", u.ID().String()))
	return a.issue(u.ID(), u.Role())
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	creds, err := user.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	u, err := a.uow.CommandReads().UserByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Verify(u.PasswordHash, creds.Password().Value()); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return a.issue(u.ID, role)
}

// RefreshToken re-reads the user so a role change since the last login is
// reflected in the new pair.
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := a.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	u, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTokenValidation
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return a.issue(u.ID, role)
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*LoginResult, error) {
	access, err := a.tokens.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refresh, err := a.tokens.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{
		UserID:    userID,
		Role:      role,
		TokenPair: TokenPair{AccessToken: access, RefreshToken: refresh},
	}, nil
}
