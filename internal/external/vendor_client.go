package external

import (
	"context"
	"fmt"
	"time"

	"delivery-service/internal/models"
)

// VendorAPI lists the vendors the platform has verified
type VendorAPI interface {
	GetVerifiedVendors(ctx context.Context) ([]models.Vendor, error)
}

// VendorClient reads the vendor service over HTTP
type VendorClient struct {
	api *apiClient
}

// NewVendorClient creates a client for the vendor service at baseURL
func NewVendorClient(baseURL string, timeout time.Duration) *VendorClient {
	return &VendorClient{api: newAPIClient(baseURL, timeout)}
}

func (c *VendorClient) GetVerifiedVendors(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := c.api.getJSON(ctx, "/vendors/verified", &vendors); err != nil {
		return nil, fmt.Errorf("external: failed to list vendors: %w", err)
	}
	return vendors, nil
}

// VendorDirectory looks vendors up by id
type VendorDirectory struct {
	vendors VendorAPI
}

// NewVendorDirectory creates a directory on top of a vendor source
func NewVendorDirectory(vendors VendorAPI) *VendorDirectory {
	return &VendorDirectory{vendors: vendors}
}

// GetVendor returns the verified vendor with the given id
func (d *VendorDirectory) GetVendor(ctx context.Context, vendorID int64) (models.Vendor, error) {
	vendors, err := d.vendors.GetVerifiedVendors(ctx)
	if err != nil {
		return models.Vendor{}, err
	}

	for _, v := range vendors {
		if v.ID == vendorID {
			return v, nil
		}
	}
	return models.Vendor{}, &models.EntityNotFoundError{Entity: "Vendor", ID: vendorID}
}
