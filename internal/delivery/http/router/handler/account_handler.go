// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"teamed/internal/delivery/http/response"
	"teamed/internal/domain/entity"
	domainerrors "teamed/internal/domain/errors"
	"teamed/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"userType" validate:"required,oneof=freelancer client project_manager"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the public wire shape of a user. It never carries the
// password hash.
type userResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

func toUserResponse(u entity.PublicUser) userResponse {
	return userResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		UserType: string(u.UserType),
	}
}

// Register handles the user registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		UserType: entity.UserType(req.UserType),
	})
	if err != nil {
		// Duplicate email is a business outcome, rendered as a normal
		// response body for compatibility with existing clients.
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return response.Message(c, http.StatusOK, "User already exists")
		}

		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "User created successfully")
}

// Login handles the user login request. Unknown email and wrong password
// produce the same body; callers cannot tell which accounts exist.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return response.Message(c, http.StatusOK, "Invalid credentials")
		}

		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusOK, "Login successful", "user", toUserResponse(output.User))
}

// GetUser handles the lookup of a single user by email.
func (h *AccountHandler) GetUser(c echo.Context) error {
	email := c.Param("email")

	user, err := h.uc.GetByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return response.Message(c, http.StatusOK, "No user found")
		}

		return errors.WithStack(err)
	}

	return response.Payload(c, http.StatusOK, "user", toUserResponse(*user))
}

// ListUsers handles the listing of all users.
func (h *AccountHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return response.Payload(c, http.StatusOK, "users", out)
}
