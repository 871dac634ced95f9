package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rizkyamd/todo-graph-api/internal/domain/entity"
	repo "github.com/rizkyamd/todo-graph-api/internal/domain/repository"
	"github.com/rizkyamd/todo-graph-api/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserInactive       = errors.New("user is inactive")
)

// UserService covers registration, authentication and the token lifecycle.
type UserService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Sync   *SyncCoordinator
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, sync *SyncCoordinator, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, JWT: jwt, Sync: sync, Logger: logger}
}

// Register creates a user after pre-checking username and email uniqueness.
// The User node is propagated into the graph mirror after the insert commits.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if u, err := s.Repo.GetByUsername(ctx, username); err == nil && u != nil {
		return nil, ErrUsernameTaken
	}
	if u, err := s.Repo.GetByEmail(ctx, email); err == nil && u != nil {
		return nil, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.Sync.UserCreated(ctx, u)
	return u, nil
}

// Authenticate validates username/password and returns the user without issuing a token.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login verifies credentials and issues a signed bearer token whose subject
// is the username.
func (s *UserService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	u, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", time.Time{}, err
	}
	token, exp, err := s.JWT.GenerateToken(u.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", u.Username).Error("generate token failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// GetByUsername resolves a token subject to the stored user. Inactive users
// are rejected so revoked accounts cannot keep using unexpired tokens.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	if !u.IsActive {
		return nil, ErrUserInactive
	}
	return u, nil
}
