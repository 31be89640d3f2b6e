package user

import (
	"context"
	"errors"
	"time"

	"github.com/The-Batman-Code/laundry-service/domain"
	redisRepo "github.com/The-Batman-Code/laundry-service/internal/repository/redis"
	"github.com/The-Batman-Code/laundry-service/pkg/logger"
	"github.com/The-Batman-Code/laundry-service/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// SessionRepository contract interface
type SessionRepository interface {
	StoreToken(ctx context.Context, data redisRepo.SessionData, ttl time.Duration) error
	ValidateToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, userID, token string) error
}

type userService struct {
	userRepo    UserRepository
	validate    *validator.Validate
	sessionRepo SessionRepository
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, sessionRepo SessionRepository) *userService {
	return &userService{
		userRepo:    userRepo,
		validate:    validate,
		sessionRepo: sessionRepo,
	}
}

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	// Check if email already exists
	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existingUser.ID != "" {
		logger.Error("Email already registered")
		return domain.User{}, errors.New("email already registered")
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		ID:          uuid.NewString(),
		Email:       user.Email,
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
		Password:    string(passwordHash),
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, err
	}

	newUser.Password = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Invalid user credentials", err)
		return "", domain.User{}, errors.New("incorrect email or password")
	}

	ok := utils.CheckPassword(password, user.Password)
	if !ok {
		logger.Error("User password incorrect")
		return "", domain.User{}, errors.New("incorrect email or password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	if s.sessionRepo != nil {
		ttl := utils.TokenTTL()
		now := time.Now()
		err = s.sessionRepo.StoreToken(ctx, redisRepo.SessionData{
			UserID:    user.ID,
			Email:     user.Email,
			Token:     token,
			IssuedAt:  now,
			ExpiresAt: now.Add(ttl),
		}, ttl)
		if err != nil {
			logger.Warn("Failed to store session token", err)
		}
	}

	user.Password = ""
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, userID, token string) error {
	if s.sessionRepo == nil {
		return nil
	}

	if err := s.sessionRepo.DeleteToken(ctx, userID, token); err != nil {
		logger.Error("Failed to delete session token", err)
		return err
	}

	return nil
}

// ValidateTokenFromRedis cross-checks a bearer token against the session
// store, returning the bound user id.
func (s *userService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	if s.sessionRepo == nil {
		return "", errors.New("session store not configured")
	}

	return s.sessionRepo.ValidateToken(ctx, token)
}

func (s *userService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get user by ID", err)
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}
