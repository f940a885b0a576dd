package ports

import "context"

// TokenPair is an access/refresh token couple issued together. It is
// ephemeral: only the refresh token is persisted, on the user record.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AccessClaims is the identity carried by a verified access token.
type AccessClaims struct {
	UserID string
	Role   string
}

// TokenService issues, verifies and rotates signed token pairs.
type TokenService interface {
	// IssuePair signs a new access/refresh pair for the user and persists
	// the refresh token, overwriting any previous value.
	IssuePair(ctx context.Context, userID string) (*TokenPair, error)

	// VerifyAccess validates an access token and returns its claims.
	// Fails with domain.ErrTokenExpired or domain.ErrInvalidToken.
	VerifyAccess(token string) (*AccessClaims, error)

	// Rotate exchanges a refresh token for a fresh pair. The presented
	// token must match the stored value exactly; a mismatch (including a
	// cleared or already-rotated value) fails with domain.ErrTokenReused.
	Rotate(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Revoke clears the stored refresh token. Idempotent.
	Revoke(ctx context.Context, userID string) error
}
