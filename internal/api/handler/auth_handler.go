package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estately/listings-api/internal/api/metrics"
	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

type AuthHandler struct {
	auth    ports.AuthService
	tokens  ports.TokenService
	cookies CookieConfig
}

func NewAuthHandler(auth ports.AuthService, tokens ports.TokenService, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens, cookies: cookies}
}

type registerRequest struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Role         string `json:"role" validate:"required,oneof=user owner"`
	ProfileImage string `json:"profile_image" validate:"omitempty,url"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,nefield=OldPassword"`
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,min=1"`
	Phone string `json:"phone" validate:"omitempty,min=1"`
	Email string `json:"email" validate:"omitempty,email"`
}

type updateProfileImageRequest struct {
	ProfileImage string `json:"profile_image" validate:"required,url"`
}

type authResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user,omitempty"`
	Tokens  *tokenBody   `json:"tokens,omitempty"`
}

type tokenBody struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type userResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Register creates a new account and signs the first token pair.
//
// @Summary      Register a new account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, pair, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return err
	}

	h.cookies.setTokenCookies(c, pair)
	return c.JSON(http.StatusCreated, authResponse{
		Success: true,
		User:    user,
		Tokens:  &tokenBody{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken},
	})
}

// Login verifies credentials and signs a fresh token pair, replacing any
// previously stored refresh token.
//
// @Summary      Log in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, pair, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			metrics.AuthFailuresTotal.WithLabelValues("bad_credentials").Inc()
		}
		return err
	}

	metrics.LoginsTotal.Inc()
	h.cookies.setTokenCookies(c, pair)
	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		User:    user,
		Tokens:  &tokenBody{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken},
	})
}

// Logout clears the stored refresh token and expires the token cookies.
//
// @Summary      Log out
// @Tags         users
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]any
// @Router       /users/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.auth.Logout(c.Request().Context(), user.ID); err != nil {
		return err
	}

	h.cookies.clearTokenCookies(c)
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "logged out"})
}

// Refresh rotates the refresh token. The token is read from the cookie
// first, then from the body for non-browser clients. Each refresh token is
// single-use: presenting one that is no longer stored fails with 401.
//
// @Summary      Rotate the refresh token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  false  "Refresh token (optional when the cookie is set)"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]any
// @Router       /users/refresh-token [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		token = cookie.Value
	} else {
		var req refreshRequest
		if err := c.Bind(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		metrics.TokenRotationsTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "missing refresh token")
	}

	pair, err := h.tokens.Rotate(c.Request().Context(), token)
	if err != nil {
		metrics.TokenRotationsTotal.WithLabelValues("rejected").Inc()
		if err == domain.ErrTokenReused {
			metrics.AuthFailuresTotal.WithLabelValues("token_reused").Inc()
		}
		return err
	}

	metrics.TokenRotationsTotal.WithLabelValues("ok").Inc()
	h.cookies.setTokenCookies(c, pair)
	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		Tokens:  &tokenBody{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken},
	})
}

// ChangePassword verifies the current password before setting the new one.
//
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Old and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /users/change-password [post]
// @Security     BearerAuth
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.auth.ChangePassword(c.Request().Context(), user.ID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "password updated"})
}

// Me returns the authenticated user's account.
//
// @Summary      Current account
// @Tags         users
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]any
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Success: true, User: user})
}

// UpdateProfile applies a partial update to the account fields.
//
// @Summary      Update profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]any
// @Router       /users/me [patch]
// @Security     BearerAuth
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.auth.UpdateProfile(c.Request().Context(), user.ID, ports.ProfileUpdate{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{Success: true, User: updated})
}

// UpdateProfileImage replaces the account's profile image URL.
//
// @Summary      Update profile image
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileImageRequest  true  "Image URL"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]any
// @Router       /users/me/profile-image [patch]
// @Security     BearerAuth
func (h *AuthHandler) UpdateProfileImage(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.auth.UpdateProfileImage(c.Request().Context(), user.ID, req.ProfileImage)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{Success: true, User: updated})
}
