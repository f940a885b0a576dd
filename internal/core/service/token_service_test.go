package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) UpdateRefreshToken(_ context.Context, userID, token string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.RefreshToken = token
	return nil
}

func (r *stubUserRepo) RotateRefreshToken(_ context.Context, userID, old, next string) (bool, error) {
	u, ok := r.users[userID]
	if !ok {
		return false, domain.ErrUserNotFound
	}
	if u.RefreshToken != old {
		return false, nil
	}
	u.RefreshToken = next
	return true, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, userID string, upd ports.ProfileUpdate) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Name != "" {
		u.Name = upd.Name
	}
	if upd.Phone != "" {
		u.Phone = upd.Phone
	}
	if upd.Email != "" {
		u.Email = upd.Email
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateProfileImage(_ context.Context, userID, imageURL string) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.ProfileImage = imageURL
	return cloneUser(u), nil
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	r.nextID++
	copy := cloneUser(u)
	copy.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[copy.ID] = copy
	return cloneUser(copy)
}

func newTokenServiceForTest(repo *stubUserRepo) *TokenService {
	return NewTokenService(repo, "access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func TestTokenService_IssuePair_StoresRefreshToken(t *testing.T) {
	repo := newStubUserRepo()
	user := repo.add(&domain.User{Email: "alice@x.com", Role: domain.RoleUser})
	svc := newTokenServiceForTest(repo)

	pair, err := svc.IssuePair(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("IssuePair returned error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected non-empty pair, got %+v", pair)
	}

	stored := repo.users[user.ID].RefreshToken
	if stored != pair.RefreshToken {
		t.Fatalf("stored refresh token does not match issued one")
	}

	claims, err := svc.VerifyAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("VerifyAccess failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user id %s, got %s", user.ID, claims.UserID)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("expected role %s, got %s", domain.RoleUser, claims.Role)
	}
}

func TestTokenService_IssuePair_UnknownUser(t *testing.T) {
	svc := newTokenServiceForTest(newStubUserRepo())

	if _, err := svc.IssuePair(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTokenService_IssuePair_InvalidatesPreviousRefreshToken(t *testing.T) {
	repo := newStubUserRepo()
	user := repo.add(&domain.User{Email: "alice@x.com", Role: domain.RoleUser})
	svc := newTokenServiceForTest(repo)

	first, err := svc.IssuePair(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("first IssuePair failed: %v", err)
	}
	if _, err := svc.IssuePair(context.Background(), user.ID); err != nil {
		t.Fatalf("second IssuePair failed: %v", err)
	}

	if _, err := svc.Rotate(context.Background(), first.RefreshToken); !errors.Is(err, domain.ErrTokenReused) {
		t.Fatalf("expected ErrTokenReused for superseded token, got %v", err)
	}
}

func TestTokenService_VerifyAccess_Expired(t *testing.T) {
	svc := newTokenServiceForTest(newStubUserRepo())

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user-1",
		"role": domain.RoleUser,
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	token, err := expired.SignedString([]byte("access-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.VerifyAccess(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_VerifyAccess_BadSignature(t *testing.T) {
	svc := newTokenServiceForTest(newStubUserRepo())

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := forged.SignedString([]byte("wrong-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.VerifyAccess(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := svc.VerifyAccess("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestTokenService_Rotate_SingleUse(t *testing.T) {
	repo := newStubUserRepo()
	user := repo.add(&domain.User{Email: "alice@x.com", Role: domain.RoleUser})
	svc := newTokenServiceForTest(repo)

	pair, err := svc.IssuePair(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}

	fresh, err := svc.Rotate(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("first Rotate failed: %v", err)
	}
	if fresh.RefreshToken == pair.RefreshToken {
		t.Fatalf("rotation did not change the refresh token")
	}
	if repo.users[user.ID].RefreshToken != fresh.RefreshToken {
		t.Fatalf("stored token not updated after rotation")
	}

	if _, err := svc.Rotate(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrTokenReused) {
		t.Fatalf("expected ErrTokenReused on replay, got %v", err)
	}
}

func TestTokenService_Rotate_AfterRevoke(t *testing.T) {
	repo := newStubUserRepo()
	user := repo.add(&domain.User{Email: "alice@x.com", Role: domain.RoleUser})
	svc := newTokenServiceForTest(repo)

	pair, err := svc.IssuePair(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}

	if err := svc.Revoke(context.Background(), user.ID); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}
	// Revoking again is a no-op.
	if err := svc.Revoke(context.Background(), user.ID); err != nil {
		t.Fatalf("second Revoke failed: %v", err)
	}

	if _, err := svc.Rotate(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrTokenReused) {
		t.Fatalf("expected ErrTokenReused after logout, got %v", err)
	}
}

func TestTokenService_Rotate_RejectsAccessToken(t *testing.T) {
	repo := newStubUserRepo()
	user := repo.add(&domain.User{Email: "alice@x.com", Role: domain.RoleUser})
	svc := newTokenServiceForTest(repo)

	pair, err := svc.IssuePair(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}

	// Access tokens are signed with a different secret and must not be
	// exchangeable for a new pair.
	if _, err := svc.Rotate(context.Background(), pair.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
