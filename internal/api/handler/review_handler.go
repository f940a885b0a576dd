package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type addReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,min=1"`
}

type reviewResponse struct {
	Success bool           `json:"success"`
	Review  *domain.Review `json:"review"`
}

type reviewListResponse struct {
	Success bool            `json:"success"`
	Reviews []domain.Review `json:"reviews"`
}

// Add posts a review on a listing. One review per user per property.
//
// @Summary      Review a listing
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Property id"
// @Param        body  body      addReviewRequest  true  "Rating and comment"
// @Success      201   {object}  reviewResponse
// @Failure      404   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /reviews/property/{id} [post]
// @Security     BearerAuth
func (h *ReviewHandler) Add(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.reviews.Add(c.Request().Context(), c.Param("id"), user.ID, req.Rating, req.Comment)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, reviewResponse{Success: true, Review: review})
}

// List returns all reviews on a listing.
//
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  reviewListResponse
// @Failure      404  {object}  map[string]any
// @Router       /reviews/property/{id} [get]
// @Security     BearerAuth
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviews.ListForProperty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviewListResponse{Success: true, Reviews: reviews})
}

// Delete removes the requester's own review.
//
// @Summary      Delete own review
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Review id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /reviews/mine/{id} [delete]
// @Security     BearerAuth
func (h *ReviewHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.reviews.DeleteOwn(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "review deleted"})
}

// Moderate lets the owner of the reviewed property remove any review on it.
//
// @Summary      Moderate a review
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Review id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /reviews/{id} [delete]
// @Security     BearerAuth
func (h *ReviewHandler) Moderate(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.reviews.Moderate(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "review removed"})
}
