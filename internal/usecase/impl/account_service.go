// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "teamed/internal/delivery/context"
	"teamed/internal/domain/entity"
	domainerrors "teamed/internal/domain/errors"
	"teamed/internal/domain/repository"
	"teamed/internal/domain/service"
	"teamed/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface. It is stateless per
// call; all state lives in the user repository.
type accountService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all
// dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with a hashed credential. Uniqueness of the
// email is enforced by the store's unique index, not by a check-then-insert
// sequence, so concurrent registrations cannot both succeed.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.Any("userType", input.UserType))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		UserType:     input.UserType,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Registration rejected, email already taken", slog.String("email", input.Email))

			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}

		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", user.ID))

	return &usecase.RegisterOutput{User: user.Public()}, nil
}

// Login verifies the submitted credentials. An unknown email and a wrong
// password both return ErrInvalidCredentials so that callers cannot probe
// which accounts exist.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		srv.log(ctx).Error("Failed to look up user for login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	srv.log(ctx).Debug("Login successful", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{User: user.Public()}, nil
}

// GetByEmail returns the public shape of a stored user.
func (srv *accountService) GetByEmail(ctx context.Context, email string) (*entity.PublicUser, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no user with this email")
		}

		srv.log(ctx).Error("Failed to look up user by email", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up user by email")
	}

	public := user.Public()

	return &public, nil
}

// ListUsers returns the public shape of every stored user, in storage order.
func (srv *accountService) ListUsers(ctx context.Context) ([]entity.PublicUser, error) {
	users, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	public := make([]entity.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}

	return public, nil
}
