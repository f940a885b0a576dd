package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

const minPasswordLength = 8

// AuthService implements registration, login and account maintenance.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, *ports.TokenPair, error) {
	if in.Name == "" || in.Phone == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, nil, fmt.Errorf("%w: name, phone, email, password and role are required", domain.ErrInvalidInput)
	}
	if !domain.ValidRole(in.Role) {
		return nil, nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, in.Role)
	}
	if len(in.Password) < minPasswordLength {
		return nil, nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		ProfileImage: in.ProfileImage,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.tokens.IssuePair(ctx, created.ID)
	if err != nil {
		return nil, nil, err
	}
	return created, pair, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *ports.TokenPair, error) {
	if email == "" || password == "" {
		return nil, nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.tokens.Revoke(ctx, userID)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: both old and new passwords are required", domain.ErrInvalidInput)
	}
	if oldPassword == newPassword {
		return fmt.Errorf("%w: new password must differ from the old one", domain.ErrInvalidInput)
	}
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, userID, string(hash))
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, upd ports.ProfileUpdate) (*domain.User, error) {
	if upd.Name == "" && upd.Phone == "" && upd.Email == "" {
		return nil, fmt.Errorf("%w: at least one field is required", domain.ErrInvalidInput)
	}
	return s.repo.UpdateProfile(ctx, userID, upd)
}

func (s *AuthService) UpdateProfileImage(ctx context.Context, userID, imageURL string) (*domain.User, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("%w: image url is required", domain.ErrInvalidInput)
	}
	return s.repo.UpdateProfileImage(ctx, userID, imageURL)
}
