package service

import (
	"context"
	"errors"
	"time"

	"github.com/planora/planora-go/internal/crypto"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrDuplicateIdentity  = errors.New("username or email already taken")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore is the persistence surface AuthService depends on.
// Implementations return repository.ErrUserNotFound and
// repository.ErrDuplicateUser for the corresponding conditions.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, id int64, req model.UpdateProfileRequest) (*model.User, error)
}

// AuthService handles registration, login, and profile business logic.
type AuthService struct {
	store     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		store:     store,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account. The password is hashed before
// it ever reaches the store; the plaintext is not retained.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return model.UserResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Name:         req.Name,
		Surname:      req.Surname,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return model.UserResponse{}, ErrDuplicateIdentity
		}
		return model.UserResponse{}, err
	}

	return model.PublicUser(user), nil
}

// Login authenticates by username or email and returns a session
// token valid for the configured expiry. Unknown identifiers and bad
// passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.store.GetByIdentifier(ctx, req.LoginIdentifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token: token,
		User:  model.PublicUser(user),
	}, nil
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}
	return model.PublicUser(user), nil
}

// UpdateProfile applies a partial self-service update. The password
// hash is not writable here; changing it requires a dedicated flow.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req model.UpdateProfileRequest) (model.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return model.UserResponse{}, err
	}

	user, err := s.store.UpdateProfile(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return model.UserResponse{}, ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicateUser):
			return model.UserResponse{}, ErrDuplicateIdentity
		}
		return model.UserResponse{}, err
	}
	return model.PublicUser(user), nil
}
