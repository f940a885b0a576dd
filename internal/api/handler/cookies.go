package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/estately/listings-api/internal/core/ports"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// CookieConfig controls how token cookies are written. Secure should be
// false only in local development over plain HTTP.
type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// setTokenCookies attaches both tokens as HTTP-only cookies. Browsers send
// them back automatically; non-browser clients can use the response body.
func (cfg CookieConfig) setTokenCookies(c echo.Context, pair *ports.TokenPair) {
	c.SetCookie(cfg.tokenCookie(accessTokenCookie, pair.AccessToken, cfg.AccessTTL))
	c.SetCookie(cfg.tokenCookie(refreshTokenCookie, pair.RefreshToken, cfg.RefreshTTL))
}

// clearTokenCookies expires both cookies. The attributes must match the ones
// used when setting them or browsers will keep the originals.
func (cfg CookieConfig) clearTokenCookies(c echo.Context) {
	c.SetCookie(cfg.tokenCookie(accessTokenCookie, "", -time.Hour))
	c.SetCookie(cfg.tokenCookie(refreshTokenCookie, "", -time.Hour))
}

func (cfg CookieConfig) tokenCookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}
