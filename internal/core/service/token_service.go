package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 10 * 24 * time.Hour
)

// TokenService issues and rotates HS256-signed token pairs. Access and
// refresh tokens are signed with separate secrets; the refresh token is
// additionally stored on the user record so that rotation or logout
// invalidates every outstanding copy immediately.
type TokenService struct {
	repo          ports.UserRepository
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(repo ports.UserRepository, accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenService{
		repo:          repo,
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *TokenService) IssuePair(ctx context.Context, userID string) (*ports.TokenPair, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pair, err := s.signPair(user)
	if err != nil {
		return nil, err
	}

	// Overwriting here invalidates any refresh token issued earlier:
	// single active session per account.
	if err := s.repo.UpdateRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *TokenService) VerifyAccess(token string) (*ports.AccessClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, s.keyFunc(s.accessSecret))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, domain.ErrInvalidToken
	}
	role, _ := claims["role"].(string)

	return &ports.AccessClaims{UserID: sub, Role: role}, nil
}

func (s *TokenService) Rotate(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(refreshToken, claims, s.keyFunc(s.refreshSecret))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, sub)
	if err != nil {
		return nil, err
	}

	// Exact-value comparison against the stored token. An empty stored
	// value means the user logged out; a different value means this token
	// was already rotated away. Both are the same failure to the caller.
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, domain.ErrTokenReused
	}

	pair, err := s.signPair(user)
	if err != nil {
		return nil, err
	}

	matched, err := s.repo.RotateRefreshToken(ctx, user.ID, refreshToken, pair.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !matched {
		// A concurrent rotation or logout landed first.
		return nil, domain.ErrTokenReused
	}
	return pair, nil
}

func (s *TokenService) Revoke(ctx context.Context, userID string) error {
	return s.repo.UpdateRefreshToken(ctx, userID, "")
}

func (s *TokenService) signPair(user *domain.User) (*ports.TokenPair, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
	})
	accessToken, err := access.SignedString(s.accessSecret)
	if err != nil {
		return nil, err
	}

	// The jti keeps consecutive refresh tokens distinct even when signed
	// within the same second, so rotation always changes the stored value.
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"jti": randomID(),
		"iat": now.Unix(),
		"exp": now.Add(s.refreshTTL).Unix(),
	})
	refreshToken, err := refresh.SignedString(s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &ports.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func randomID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func (s *TokenService) keyFunc(secret []byte) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	}
}
