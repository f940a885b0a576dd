package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estately/listings-api/internal/api/metrics"
	"github.com/estately/listings-api/internal/core/ports"
)

type PropertyHandler struct {
	properties ports.PropertyService
}

func NewPropertyHandler(properties ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

// Create lists a new property under the authenticated owner.
//
// @Summary      Create a listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        body  body      createPropertyRequest  true  "Listing details"
// @Success      201   {object}  propertyResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /properties [post]
// @Security     BearerAuth
func (h *PropertyHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	prop, err := h.properties.Create(c.Request().Context(), user.ID, req.toInput())
	if err != nil {
		return err
	}

	metrics.PropertiesCreatedTotal.WithLabelValues(string(prop.TransactionType)).Inc()
	return c.JSON(http.StatusCreated, propertyResponse{Success: true, Property: prop})
}

// Get returns one listing and counts the view for the authenticated viewer.
//
// @Summary      Get a listing
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  propertyResponse
// @Failure      404  {object}  map[string]any
// @Router       /properties/{id} [get]
// @Security     BearerAuth
func (h *PropertyHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	prop, err := h.properties.Get(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, propertyResponse{Success: true, Property: prop})
}

// List searches listings with optional filters and pagination.
//
// @Summary      Browse listings
// @Tags         properties
// @Produce      json
// @Param        city              query     string  false  "Filter by city"
// @Param        property_type     query     string  false  "Filter by property type"
// @Param        transaction_type  query     string  false  "sale or rent"
// @Param        furnished         query     string  false  "Furnishing level"
// @Param        min_amount        query     int     false  "Minimum amount"
// @Param        max_amount        query     int     false  "Maximum amount"
// @Param        rooms             query     int     false  "Minimum rooms"
// @Param        page              query     int     false  "Page (1-based)"
// @Param        limit             query     int     false  "Page size"
// @Success      200  {object}  propertyListResponse
// @Router       /properties [get]
// @Security     BearerAuth
func (h *PropertyHandler) List(c echo.Context) error {
	var q listPropertiesQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	page, err := h.properties.List(c.Request().Context(), q.toFilter())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, propertyListResponse{
		Success:    true,
		Properties: page.Items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
	})
}

// Mine returns the authenticated owner's listings.
//
// @Summary      My listings
// @Tags         properties
// @Produce      json
// @Success      200  {object}  propertyListResponse
// @Router       /properties/mine [get]
// @Security     BearerAuth
func (h *PropertyHandler) Mine(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	props, err := h.properties.Mine(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, propertyListResponse{
		Success:    true,
		Properties: props,
		Total:      int64(len(props)),
	})
}

// Update applies a partial update to a listing.
//
// @Summary      Update a listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Property id"
// @Param        body  body      updatePropertyRequest  true  "Fields to change"
// @Success      200   {object}  propertyResponse
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /properties/{id} [patch]
// @Security     BearerAuth
func (h *PropertyHandler) Update(c echo.Context) error {
	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	prop, err := h.properties.Update(c.Request().Context(), c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, propertyResponse{Success: true, Property: prop})
}

// Delete removes a listing.
//
// @Summary      Delete a listing
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /properties/{id} [delete]
// @Security     BearerAuth
func (h *PropertyHandler) Delete(c echo.Context) error {
	if err := h.properties.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "property deleted"})
}

// AddImages appends image URLs to a listing.
//
// @Summary      Add images
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Property id"
// @Param        body  body      mediaRequest  true  "Image URLs"
// @Success      200   {object}  propertyResponse
// @Router       /properties/{id}/images [patch]
// @Security     BearerAuth
func (h *PropertyHandler) AddImages(c echo.Context) error {
	return h.addMedia(c, ports.MediaImages)
}

// RemoveImages removes image URLs from a listing.
//
// @Summary      Remove images
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Property id"
// @Param        body  body      mediaRequest  true  "Image URLs"
// @Success      200   {object}  propertyResponse
// @Router       /properties/{id}/images [delete]
// @Security     BearerAuth
func (h *PropertyHandler) RemoveImages(c echo.Context) error {
	return h.removeMedia(c, ports.MediaImages)
}

// AddVideos appends video URLs to a listing.
//
// @Summary      Add videos
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Property id"
// @Param        body  body      mediaRequest  true  "Video URLs"
// @Success      200   {object}  propertyResponse
// @Router       /properties/{id}/videos [patch]
// @Security     BearerAuth
func (h *PropertyHandler) AddVideos(c echo.Context) error {
	return h.addMedia(c, ports.MediaVideos)
}

// RemoveVideos removes video URLs from a listing.
//
// @Summary      Remove videos
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Property id"
// @Param        body  body      mediaRequest  true  "Video URLs"
// @Success      200   {object}  propertyResponse
// @Router       /properties/{id}/videos [delete]
// @Security     BearerAuth
func (h *PropertyHandler) RemoveVideos(c echo.Context) error {
	return h.removeMedia(c, ports.MediaVideos)
}

func (h *PropertyHandler) addMedia(c echo.Context, field ports.MediaField) error {
	var req mediaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	prop, err := h.properties.AddMedia(c.Request().Context(), c.Param("id"), field, req.URLs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, propertyResponse{Success: true, Property: prop})
}

func (h *PropertyHandler) removeMedia(c echo.Context, field ports.MediaField) error {
	var req mediaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	prop, err := h.properties.RemoveMedia(c.Request().Context(), c.Param("id"), field, req.URLs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, propertyResponse{Success: true, Property: prop})
}

// Views returns the total view count for a listing.
//
// @Summary      View count
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /properties/{id}/views [get]
// @Security     BearerAuth
func (h *PropertyHandler) Views(c echo.Context) error {
	total, err := h.properties.TotalViews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "views": total})
}

// Visitors returns the distinct viewer ids for a listing.
//
// @Summary      Distinct visitors
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /properties/{id}/visitors [get]
// @Security     BearerAuth
func (h *PropertyHandler) Visitors(c echo.Context) error {
	visitors, err := h.properties.Visitors(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "visitors": visitors})
}
