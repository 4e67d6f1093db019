package handler

import (
	"net/http"

	_ "delivery-service/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Routes collects the handlers mounted by NewRouter
type Routes struct {
	Vendor  *VendorHandler
	Admin   *AdminHandler
	Courier *CourierHandler
	GeoCode *GeoCodeHandler

	// Metrics serves /metrics when set
	Metrics http.Handler
	// Observer receives per-request samples, may be nil
	Observer RequestObserver
}

// NewRouter builds the gin engine with middleware and every route
func NewRouter(routes Routes) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(routes.Observer))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	if routes.Metrics != nil {
		r.GET("/metrics", gin.WrapH(routes.Metrics))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	vendor := r.Group("/vendor")
	vendor.GET("/delivery-radii", routes.Vendor.ListDeliveryRadii)
	vendor.GET("/:vendorId/delivery-radius", routes.Vendor.GetDeliveryRadius)
	vendor.PUT("/:vendorId/delivery-radius", routes.Vendor.UpdateDeliveryRadius)
	vendor.POST("/:vendorId/in-range", routes.Vendor.CheckRange)

	admin := r.Group("/admin")
	admin.GET("/default-radius", routes.Admin.GetDefaultRadius)
	admin.PUT("/default-radius", routes.Admin.UpdateDefaultRadius)
	admin.PUT("/geocoding", routes.Admin.UpdateGeocoding)

	r.GET("/courier/:courierId/location", routes.Courier.GetCourierLocation)
	r.GET("/geocode", routes.GeoCode.GeoCode)

	return r
}
