package models

// UserType is the role the user service reports for an identifier.
type UserType string

const (
	UserTypeCustomer UserType = "CUSTOMER"
	UserTypeVendor   UserType = "VENDOR"
	UserTypeCourier  UserType = "COURIER"
	UserTypeAdmin    UserType = "ADMIN"
)

// Vendor is a record from the vendor directory.
type Vendor struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Location Location `json:"location"`
}
