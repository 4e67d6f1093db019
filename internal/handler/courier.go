package handler

import (
	"context"
	"net/http"

	"delivery-service/internal/models"

	"github.com/gin-gonic/gin"
)

// CourierLocationService reads courier positions
type CourierLocationService interface {
	GetLocationOfCourier(ctx context.Context, courierID int64) (models.Location, error)
}

// CourierHandler serves courier location lookups
type CourierHandler struct {
	couriers CourierLocationService
	auth     Authoriser
}

// NewCourierHandler creates a new courier handler
func NewCourierHandler(couriers CourierLocationService, auth Authoriser) *CourierHandler {
	return &CourierHandler{couriers: couriers, auth: auth}
}

// GetCourierLocation handles GET /courier/:courierId/location
//
//	@Summary	Get the last known address of a courier
//	@Tags		courier
//	@Produce	json
//	@Param		courierId	path		int	true	"courier id"
//	@Param		userId		query		int	true	"caller id"
//	@Success	200			{object}	models.Location
//	@Failure	400			{object}	errorResponse
//	@Failure	403			{object}	errorResponse
//	@Failure	404			{object}	errorResponse
//	@Router		/courier/{courierId}/location [get]
func (h *CourierHandler) GetCourierLocation(c *gin.Context) {
	courierID, ok := int64Param(c, "courierId")
	if !ok {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if !h.auth.IsValid(userID) || !h.auth.IsValid(courierID) || !h.auth.IsCourier(ctx, courierID) {
		abortWithError(c, http.StatusBadRequest, "courierId does not identify a courier")
		return
	}
	if !h.auth.IsUser(ctx, userID) {
		abortWithError(c, http.StatusForbidden, "user is not allowed to see courier locations")
		return
	}

	loc, err := h.couriers.GetLocationOfCourier(ctx, courierID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, loc)
}
