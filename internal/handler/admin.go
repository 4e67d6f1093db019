package handler

import (
	"context"
	"net/http"

	"delivery-service/internal/models"

	"github.com/gin-gonic/gin"
)

// DefaultRadiusService manages the app-wide default delivery radius
type DefaultRadiusService interface {
	DefaultRadius(ctx context.Context) (models.RadiusVendorPair, bool, error)
	SetDefaultRadius(ctx context.Context, radius int) (models.RadiusVendorPair, error)
}

// GeocodingRegistry maintains the address to coordinate table
type GeocodingRegistry interface {
	SetLocationCoordinates(ctx context.Context, loc models.Location, coord *models.Coordinate) error
}

// AdminHandler serves the admin-only configuration routes
type AdminHandler struct {
	radii     DefaultRadiusService
	geocoding GeocodingRegistry
	auth      Authoriser
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(radii DefaultRadiusService, geocoding GeocodingRegistry, auth Authoriser) *AdminHandler {
	return &AdminHandler{radii: radii, geocoding: geocoding, auth: auth}
}

type geocodingRequest struct {
	Location   *models.Location   `json:"location" binding:"required"`
	Coordinate *models.Coordinate `json:"coordinate"`
}

// requireAdmin aborts unless the caller is a valid admin id
func (h *AdminHandler) requireAdmin(c *gin.Context) bool {
	userID, ok := callerID(c)
	if !ok {
		return false
	}
	if !h.auth.IsValid(userID) {
		abortWithError(c, http.StatusBadRequest, "invalid query parameter 'userId'")
		return false
	}
	if !h.auth.IsAdmin(c.Request.Context(), userID) {
		abortWithError(c, http.StatusForbidden, "only admins may access this resource")
		return false
	}
	return true
}

// GetDefaultRadius handles GET /admin/default-radius
//
//	@Summary	Get the default delivery radius
//	@Tags		admin
//	@Produce	json
//	@Param		userId	query		int	true	"admin id"
//	@Success	200		{object}	radiusResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	403		{object}	errorResponse
//	@Failure	404		{object}	errorResponse
//	@Router		/admin/default-radius [get]
func (h *AdminHandler) GetDefaultRadius(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	pair, found, err := h.radii.DefaultRadius(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		abortWithError(c, http.StatusNotFound, "default radius not configured")
		return
	}

	c.JSON(http.StatusOK, radiusResponse{Radius: pair.Radius})
}

// UpdateDefaultRadius handles PUT /admin/default-radius
//
//	@Summary	Set the default delivery radius
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		userId	query		int				true	"admin id"
//	@Param		body	body		radiusRequest	true	"radius in meters"
//	@Success	200		{object}	radiusResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	403		{object}	errorResponse
//	@Router		/admin/default-radius [put]
func (h *AdminHandler) UpdateDefaultRadius(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	var req radiusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "request body must contain a radius")
		return
	}

	saved, err := h.radii.SetDefaultRadius(c.Request.Context(), *req.Radius)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, radiusResponse{Radius: saved.Radius})
}

// UpdateGeocoding handles PUT /admin/geocoding
//
//	@Summary	Register or remove the coordinate of an address
//	@Tags		admin
//	@Accept		json
//	@Param		userId	query	int					true	"admin id"
//	@Param		body	body	geocodingRequest	true	"address and coordinate, omit the coordinate to remove"
//	@Success	204
//	@Failure	400	{object}	errorResponse
//	@Failure	403	{object}	errorResponse
//	@Router		/admin/geocoding [put]
func (h *AdminHandler) UpdateGeocoding(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	var req geocodingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "request body must contain a location")
		return
	}

	if err := h.geocoding.SetLocationCoordinates(c.Request.Context(), *req.Location, req.Coordinate); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
