package handler

import (
	"context"
	"net/http"

	"delivery-service/internal/models"

	"github.com/gin-gonic/gin"
)

// GeoCodeHandler handles geocoding requests
type GeoCodeHandler struct {
	service GeoCodeService
	auth    Authoriser
}

// Service interface for dependency injection
type GeoCodeService interface {
	Geocode(ctx context.Context, loc models.Location) (models.Coordinate, error)
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(svc GeoCodeService, auth Authoriser) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc, auth: auth}
}

type geocodeQuery struct {
	Country    string `form:"country" binding:"required"`
	City       string `form:"city" binding:"required"`
	PostalCode string `form:"postalCode" binding:"required"`
	Address    string `form:"address" binding:"required"`
}

// GeoCode handles GET /geocode requests
//
//	@Summary	Resolve an exact address to its registered coordinate
//	@Tags		geocoding
//	@Produce	json
//	@Param		userId		query		int		true	"caller id"
//	@Param		country		query		string	true	"country"
//	@Param		city		query		string	true	"city"
//	@Param		postalCode	query		string	true	"postal code"
//	@Param		address		query		string	true	"street and number"
//	@Success	200			{object}	models.Coordinate
//	@Failure	400			{object}	errorResponse
//	@Failure	403			{object}	errorResponse
//	@Failure	404			{object}	errorResponse
//	@Router		/geocode [get]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var q geocodeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "country, city, postalCode and address are required"})
		return
	}

	if !h.auth.IsUser(c.Request.Context(), userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "user is not allowed to geocode addresses"})
		return
	}

	coord, err := h.service.Geocode(c.Request.Context(), models.Location{
		Country:    q.Country,
		City:       q.City,
		PostalCode: q.PostalCode,
		Address:    q.Address,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, coord)
}
