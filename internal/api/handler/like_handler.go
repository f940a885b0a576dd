package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

type LikeHandler struct {
	likes ports.LikeService
}

func NewLikeHandler(likes ports.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

type likeListResponse struct {
	Success bool          `json:"success"`
	Likes   []domain.Like `json:"likes"`
}

// Toggle likes a listing, or removes the like when already present.
//
// @Summary      Toggle a like
// @Tags         likes
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /likes/property/{id} [post]
// @Security     BearerAuth
func (h *LikeHandler) Toggle(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	liked, err := h.likes.Toggle(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "liked": liked})
}

// Liked lists the properties the requester has liked.
//
// @Summary      Liked listings
// @Tags         likes
// @Produce      json
// @Success      200  {object}  likeListResponse
// @Router       /likes/mine [get]
// @Security     BearerAuth
func (h *LikeHandler) Liked(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	likes, err := h.likes.Liked(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likeListResponse{Success: true, Likes: likes})
}
