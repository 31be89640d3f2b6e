package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/The-Batman-Code/laundry-service/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserService struct {
	registerFn func(ctx context.Context, user *domain.User) (domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	return s.registerFn(ctx, user)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) Logout(ctx context.Context, userID, token string) error { return nil }

func (s *stubUserService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubUserService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return domain.User{ID: id}, nil
}

func TestRegisterEndpoint(t *testing.T) {
	service := &stubUserService{
		registerFn: func(ctx context.Context, user *domain.User) (domain.User, error) {
			return domain.User{ID: "user-1", Email: user.Email, FullName: user.FullName}, nil
		},
	}
	handler := NewUserHandler(service)

	body := `{"email":"jane@example.com","full_name":"Jane Doe","phone_number":"555-0101","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "user-1", created.ID)
	assert.Equal(t, "jane@example.com", created.Email)
}

func TestRegisterEndpointValidation(t *testing.T) {
	handler := NewUserHandler(&stubUserService{})

	body := `{"email":"nope","full_name":"Jane","phone_number":"555","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTokenEndpointFormEncoded(t *testing.T) {
	service := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (string, domain.User, error) {
			if email == "jane@example.com" && password == "hunter22" {
				return "signed-token", domain.User{ID: "user-1"}, nil
			}
			return "", domain.User{}, errors.New("incorrect email or password")
		},
	}
	handler := NewUserHandler(service)

	form := url.Values{}
	form.Set("username", "jane@example.com")
	form.Set("password", "hunter22")
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.Token(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "signed-token", payload["access_token"])
	assert.Equal(t, "bearer", payload["token_type"])
}

func TestTokenEndpointBadCredentials(t *testing.T) {
	service := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (string, domain.User, error) {
			return "", domain.User{}, errors.New("incorrect email or password")
		},
	}
	handler := NewUserHandler(service)

	form := url.Values{}
	form.Set("username", "jane@example.com")
	form.Set("password", "wrong")
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.Token(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeWithoutAuthContext(t *testing.T) {
	handler := NewUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
