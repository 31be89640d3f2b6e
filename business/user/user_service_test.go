package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/The-Batman-Code/laundry-service/domain"
	redisRepo "github.com/The-Batman-Code/laundry-service/internal/repository/redis"
	"github.com/The-Batman-Code/laundry-service/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	utils.InitJWT("test-secret", 30*time.Minute)
	m.Run()
}

type fakeUserRepo struct {
	usersByID    map[string]domain.User
	usersByEmail map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]domain.User),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.usersByID[user.ID] = *user
	r.usersByEmail[user.Email] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (domain.User, error) {
	u, ok := r.usersByID[id]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, ok := r.usersByEmail[email]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return u, nil
}

type fakeSessionRepo struct {
	tokens map[string]string // token -> userID
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{tokens: make(map[string]string)}
}

func (r *fakeSessionRepo) StoreToken(ctx context.Context, data redisRepo.SessionData, ttl time.Duration) error {
	r.tokens[data.Token] = data.UserID
	return nil
}

func (r *fakeSessionRepo) ValidateToken(ctx context.Context, token string) (string, error) {
	userID, ok := r.tokens[token]
	if !ok {
		return "", errors.New("session not found")
	}
	return userID, nil
}

func (r *fakeSessionRepo) DeleteToken(ctx context.Context, userID, token string) error {
	delete(r.tokens, token)
	return nil
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, validator.New(), nil)

	created, err := service.Register(context.Background(), &domain.User{
		Email:       "jane@example.com",
		FullName:    "Jane Doe",
		PhoneNumber: "555-0101",
		Password:    "hunter22",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "jane@example.com", created.Email)
	assert.Empty(t, created.Password)

	stored, err := repo.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", stored.Password, "password must be stored hashed")
	assert.True(t, utils.CheckPassword("hunter22", stored.Password))
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	service := NewUserService(newFakeUserRepo(), validator.New(), nil)

	_, err := service.Register(context.Background(), &domain.User{
		Email:    "not-an-email",
		Password: "hunter22",
	})
	assert.EqualError(t, err, "invalid email format")

	_, err = service.Register(context.Background(), &domain.User{
		Email:    "jane@example.com",
		Password: "short",
	})
	assert.EqualError(t, err, "password must be at least 6 characters")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, validator.New(), nil)

	_, err := service.Register(context.Background(), &domain.User{
		Email:    "jane@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), &domain.User{
		Email:    "jane@example.com",
		Password: "another1",
	})
	assert.EqualError(t, err, "email already registered")
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	service := NewUserService(repo, validator.New(), sessions)

	created, err := service.Register(context.Background(), &domain.User{
		Email:    "jane@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	token, user, err := service.Login(context.Background(), "jane@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, created.ID, user.ID)
	assert.Empty(t, user.Password)

	claims, err := utils.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)

	userID, err := service.ValidateTokenFromRedis(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
}

func TestLoginWrongCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, validator.New(), nil)

	_, err := service.Register(context.Background(), &domain.User{
		Email:    "jane@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, _, err = service.Login(context.Background(), "jane@example.com", "wrong-pass")
	assert.EqualError(t, err, "incorrect email or password")

	// unknown email gets the same message
	_, _, err = service.Login(context.Background(), "nobody@example.com", "hunter22")
	assert.EqualError(t, err, "incorrect email or password")
}

func TestLogoutInvalidatesSession(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	service := NewUserService(repo, validator.New(), sessions)

	created, err := service.Register(context.Background(), &domain.User{
		Email:    "jane@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	token, _, err := service.Login(context.Background(), "jane@example.com", "hunter22")
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), created.ID, token))

	_, err = service.ValidateTokenFromRedis(context.Background(), token)
	assert.Error(t, err)
}

func TestGetUserByIDStripsPassword(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, validator.New(), nil)

	created, err := service.Register(context.Background(), &domain.User{
		Email:    "jane@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	user, err := service.GetUserByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Empty(t, user.Password)

	_, err = service.GetUserByID(context.Background(), "missing")
	assert.Error(t, err)
}
