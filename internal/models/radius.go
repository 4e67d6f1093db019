package models

// DefaultRadiusVendorID is the reserved vendor id under which the app-wide
// default delivery radius is stored.
const DefaultRadiusVendorID int64 = -1

// FallbackRadiusMeters applies when neither the vendor nor the app-wide
// default radius is configured.
const FallbackRadiusMeters = 5000

// RadiusVendorPair is the maximum delivery distance in meters for a vendor.
// A radius of 0 means the vendor uses the default.
type RadiusVendorPair struct {
	VendorID int64 `json:"vendorId"`
	Radius   int   `json:"radius"`
}

// IsDefault reports whether p holds the app-wide default radius.
func (p RadiusVendorPair) IsDefault() bool {
	return p.VendorID == DefaultRadiusVendorID
}

// RangeCheck is the outcome of comparing a vendor/customer distance against
// the vendor's effective delivery radius.
type RangeCheck struct {
	InRange           bool `json:"isInRange"`
	DistanceMeters    int  `json:"distance"`
	RadiusMeters      int  `json:"radius"`
	TravelTimeMinutes int  `json:"travelTimeMinutes"`
}
