package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"teamed/internal/delivery/http/validator"
	"teamed/internal/domain/entity"
	domainerrors "teamed/internal/domain/errors"
	"teamed/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountUsecase lets each test script the service outcome directly.
type stubAccountUsecase struct {
	registerFn func(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error)
	loginFn    func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
	getFn      func(ctx context.Context, email string) (*entity.PublicUser, error)
	listFn     func(ctx context.Context) ([]entity.PublicUser, error)
}

func (s *stubAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginFn(ctx, input)
}

func (s *stubAccountUsecase) GetByEmail(ctx context.Context, email string) (*entity.PublicUser, error) {
	return s.getFn(ctx, email)
}

func (s *stubAccountUsecase) ListUsers(ctx context.Context) ([]entity.PublicUser, error) {
	return s.listFn(ctx)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	return NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAccountHandler_Register_Success(t *testing.T) {
	uc := &stubAccountUsecase{
		registerFn: func(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			assert.Equal(t, "Ada", input.Name)
			assert.Equal(t, "ada@x.com", input.Email)
			assert.Equal(t, "secret123", input.Password)
			assert.Equal(t, entity.UserTypeFreelancer, input.UserType)

			return &usecase.RegisterOutput{
				User: entity.PublicUser{ID: 1, Name: input.Name, Email: input.Email, UserType: input.UserType},
			}, nil
		},
	}
	h := newAccountHandler(uc)

	c, rec := newTestContext(t, http.MethodPost, "/register",
		`{"name":"Ada","email":"ada@x.com","password":"secret123","userType":"freelancer"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User created successfully")
}

func TestAccountHandler_Register_DuplicateEmail(t *testing.T) {
	uc := &stubAccountUsecase{
		registerFn: func(context.Context, *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		},
	}
	h := newAccountHandler(uc)

	c, rec := newTestContext(t, http.MethodPost, "/register",
		`{"name":"Ada","email":"ada@x.com","password":"secret123","userType":"freelancer"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
}

func TestAccountHandler_Register_UnknownUserType(t *testing.T) {
	h := newAccountHandler(&stubAccountUsecase{})

	c, _ := newTestContext(t, http.MethodPost, "/register",
		`{"name":"Ada","email":"ada@x.com","password":"secret123","userType":"wizard"}`)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAccountHandler_Register_MissingFields(t *testing.T) {
	h := newAccountHandler(&stubAccountUsecase{})

	c, _ := newTestContext(t, http.MethodPost, "/register", `{"email":"ada@x.com"}`)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAccountHandler_Login_Success(t *testing.T) {
	uc := &stubAccountUsecase{
		loginFn: func(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return &usecase.LoginOutput{
				User: entity.PublicUser{ID: 1, Name: "Ada", Email: input.Email, UserType: entity.UserTypeFreelancer},
			}, nil
		},
	}
	h := newAccountHandler(uc)

	c, rec := newTestContext(t, http.MethodPost, "/login",
		`{"email":"ada@x.com","password":"secret123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string         `json:"message"`
		User    map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Login successful", body.Message)
	assert.Equal(t, float64(1), body.User["id"])
	assert.Equal(t, "Ada", body.User["name"])
	assert.Equal(t, "ada@x.com", body.User["email"])
	assert.Equal(t, "freelancer", body.User["userType"])

	// The credential digest must never appear in a login response.
	assert.NotContains(t, body.User, "password")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	uc := &stubAccountUsecase{
		loginFn: func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
		},
	}
	h := newAccountHandler(uc)

	c, rec := newTestContext(t, http.MethodPost, "/login",
		`{"email":"ada@x.com","password":"nottheone"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
	assert.NotContains(t, rec.Body.String(), "user")
}

func TestAccountHandler_GetUser_Found(t *testing.T) {
	uc := &stubAccountUsecase{
		getFn: func(_ context.Context, email string) (*entity.PublicUser, error) {
			assert.Equal(t, "ada@x.com", email)

			return &entity.PublicUser{ID: 1, Name: "Ada", Email: email, UserType: entity.UserTypeFreelancer}, nil
		},
	}
	h := newAccountHandler(uc)

	c, rec := newTestContext(t, http.MethodGet, "/users/ada@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("ada@x.com")

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		User map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Ada", body.User["name"])
	assert.NotContains(t, body.User, "password")
}

func TestAccountHandler_GetUser_NotFound(t *testing.T) {
	uc := &stubAccountUsecase{
		getFn: func(context.Context, string) (*entity.PublicUser, error) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no user with this email")
		},
	}
	h := newAccountHandler(uc)

	c, rec := newTestContext(t, http.MethodGet, "/users/ghost@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("ghost@x.com")

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No user found")
}

func TestAccountHandler_ListUsers(t *testing.T) {
	uc := &stubAccountUsecase{
		listFn: func(context.Context) ([]entity.PublicUser, error) {
			return []entity.PublicUser{
				{ID: 1, Name: "Ada", Email: "ada@x.com", UserType: entity.UserTypeFreelancer},
				{ID: 2, Name: "Bob", Email: "bob@x.com", UserType: entity.UserTypeClient},
			}, nil
		},
	}
	h := newAccountHandler(uc)

	c, rec := newTestContext(t, http.MethodGet, "/users", "")

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Users []map[string]any `json:"users"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Users, 2)
	assert.Equal(t, "ada@x.com", body.Users[0]["email"])
	assert.NotContains(t, body.Users[0], "password")
}
