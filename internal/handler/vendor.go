package handler

import (
	"context"
	"net/http"

	"delivery-service/internal/models"

	"github.com/gin-gonic/gin"
)

// RadiusService is the part of the radius policy the vendor routes use
type RadiusService interface {
	GetRadiusVendorPair(ctx context.Context, vendorID int64) (models.RadiusVendorPair, bool, error)
	SaveRadiusVendorPair(ctx context.Context, pair models.RadiusVendorPair) (models.RadiusVendorPair, error)
	ListRadiusVendorPairs(ctx context.Context) ([]models.RadiusVendorPair, error)
	Evaluate(ctx context.Context, vendorID int64, customer, vendor models.Location) (models.RangeCheck, error)
}

// VendorDirectory looks up vendor records
type VendorDirectory interface {
	GetVendor(ctx context.Context, vendorID int64) (models.Vendor, error)
}

// RangeObserver receives the outcome of each range check
type RangeObserver interface {
	ObserveRangeCheck(check models.RangeCheck, err error)
}

// VendorHandler serves delivery radius and range check routes
type VendorHandler struct {
	radii    RadiusService
	auth     Authoriser
	vendors  VendorDirectory
	observer RangeObserver
}

// NewVendorHandler creates a new vendor handler. observer may be nil.
func NewVendorHandler(radii RadiusService, auth Authoriser, vendors VendorDirectory, observer RangeObserver) *VendorHandler {
	return &VendorHandler{radii: radii, auth: auth, vendors: vendors, observer: observer}
}

type rangeRequest struct {
	CustomerLocation *models.Location `json:"customerLocation" binding:"required"`
	VendorLocation   *models.Location `json:"vendorLocation"`
}

// ListDeliveryRadii handles GET /vendor/delivery-radii
//
//	@Summary	List every stored delivery radius, the default (vendorId -1) included
//	@Tags		vendor
//	@Produce	json
//	@Param		userId	query		int	true	"caller id"
//	@Success	200		{array}		models.RadiusVendorPair
//	@Failure	403		{object}	errorResponse
//	@Router		/vendor/delivery-radii [get]
func (h *VendorHandler) ListDeliveryRadii(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if !h.auth.IsUser(c.Request.Context(), userID) {
		abortWithError(c, http.StatusForbidden, "user is not allowed to list delivery radii")
		return
	}

	pairs, err := h.radii.ListRadiusVendorPairs(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, pairs)
}

// GetDeliveryRadius handles GET /vendor/:vendorId/delivery-radius
//
//	@Summary	Get the delivery radius of a vendor, falling back to the default
//	@Tags		vendor
//	@Produce	json
//	@Param		vendorId	path		int	true	"vendor id"
//	@Param		userId		query		int	true	"caller id"
//	@Success	200			{object}	radiusResponse
//	@Failure	403			{object}	errorResponse
//	@Failure	404			{object}	errorResponse
//	@Router		/vendor/{vendorId}/delivery-radius [get]
func (h *VendorHandler) GetDeliveryRadius(c *gin.Context) {
	vendorID, ok := int64Param(c, "vendorId")
	if !ok {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if !h.auth.IsUser(c.Request.Context(), userID) {
		abortWithError(c, http.StatusForbidden, "user is not allowed to read delivery radii")
		return
	}

	pair, found, err := h.radii.GetRadiusVendorPair(c.Request.Context(), vendorID)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		abortWithError(c, http.StatusNotFound, "no delivery radius configured")
		return
	}

	c.JSON(http.StatusOK, radiusResponse{Radius: pair.Radius})
}

// UpdateDeliveryRadius handles PUT /vendor/:vendorId/delivery-radius
//
//	@Summary	Set the delivery radius of the calling vendor
//	@Tags		vendor
//	@Accept		json
//	@Produce	json
//	@Param		vendorId	path		int				true	"vendor id"
//	@Param		userId		query		int				true	"caller id"
//	@Param		body		body		radiusRequest	true	"radius in meters"
//	@Success	200			{object}	radiusResponse
//	@Failure	400			{object}	errorResponse
//	@Failure	403			{object}	errorResponse
//	@Failure	404			{object}	errorResponse
//	@Router		/vendor/{vendorId}/delivery-radius [put]
func (h *VendorHandler) UpdateDeliveryRadius(c *gin.Context) {
	vendorID, ok := int64Param(c, "vendorId")
	if !ok {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req radiusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "request body must contain a radius")
		return
	}

	ctx := c.Request.Context()
	if !h.auth.IsVendor(ctx, vendorID) {
		abortWithError(c, http.StatusNotFound, "vendor not found")
		return
	}
	if userID != vendorID || !h.auth.IsVendor(ctx, userID) {
		abortWithError(c, http.StatusForbidden, "only the vendor itself may change its delivery radius")
		return
	}

	saved, err := h.radii.SaveRadiusVendorPair(ctx, models.RadiusVendorPair{VendorID: vendorID, Radius: *req.Radius})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, radiusResponse{Radius: saved.Radius})
}

// CheckRange handles POST /vendor/:vendorId/in-range
//
//	@Summary	Check whether a customer address is inside the vendor's delivery radius
//	@Tags		vendor
//	@Accept		json
//	@Produce	json
//	@Param		vendorId	path		int				true	"vendor id"
//	@Param		userId		query		int				true	"caller id"
//	@Param		body		body		rangeRequest	true	"customer and optional vendor address"
//	@Success	200			{object}	models.RangeCheck
//	@Failure	400			{object}	errorResponse
//	@Failure	403			{object}	errorResponse
//	@Failure	404			{object}	errorResponse
//	@Router		/vendor/{vendorId}/in-range [post]
func (h *VendorHandler) CheckRange(c *gin.Context) {
	vendorID, ok := int64Param(c, "vendorId")
	if !ok {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if !h.auth.IsUser(ctx, userID) {
		abortWithError(c, http.StatusForbidden, "user is not allowed to check delivery range")
		return
	}
	if !h.auth.IsVendor(ctx, vendorID) {
		abortWithError(c, http.StatusNotFound, "vendor not found")
		return
	}

	var req rangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "request body must contain a customerLocation")
		return
	}

	var vendorLocation models.Location
	if req.VendorLocation != nil {
		vendorLocation = *req.VendorLocation
	} else {
		vendor, err := h.vendors.GetVendor(ctx, vendorID)
		if err != nil {
			writeError(c, err)
			return
		}
		vendorLocation = vendor.Location
	}

	check, err := h.radii.Evaluate(ctx, vendorID, *req.CustomerLocation, vendorLocation)
	if h.observer != nil {
		h.observer.ObserveRangeCheck(check, err)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, check)
}
