package external

import (
	"context"

	"delivery-service/internal/models"
)

// FakeUserAPI treats every caller as an admin
type FakeUserAPI struct{}

func (FakeUserAPI) GetUserType(_ context.Context, _ int64) (models.UserType, error) {
	return models.UserTypeAdmin, nil
}

// FakeVendorAPI serves a single verified vendor on the TU Delft campus
type FakeVendorAPI struct{}

func (FakeVendorAPI) GetVerifiedVendors(_ context.Context) ([]models.Vendor, error) {
	return []models.Vendor{
		{
			ID:   3,
			Name: "Campus Kitchen",
			Location: models.Location{
				Country:    "Netherlands",
				City:       "Delft",
				PostalCode: "2628 CD",
				Address:    "Mekelweg 3",
			},
		},
	}, nil
}

// GeocodedAddress pairs an address with its registered coordinate
type GeocodedAddress struct {
	Location   models.Location
	Coordinate models.Coordinate
}

// FakeAddresses is the geocoding table the dev profile starts with. Courier
// i+1 is placed at FakeAddresses[i].
var FakeAddresses = []GeocodedAddress{
	{Location: netherlands("Delft", "2628 CD", "Mekelweg 4"), Coordinate: models.Coordinate{Latitude: 51.99882, Longitude: 4.37354}},
	{Location: netherlands("Delft", "2628 XE", "Van Mourik Broekmanweg 5"), Coordinate: models.Coordinate{Latitude: 51.99956, Longitude: 4.37770}},
	{Location: netherlands("Delft", "2611 CP", "Brabantse Turfmarkt 78"), Coordinate: models.Coordinate{Latitude: 52.01045, Longitude: 4.36077}},
	{Location: netherlands("Delft", "2611 KP", "Trompetstraat 88"), Coordinate: models.Coordinate{Latitude: 52.01376, Longitude: 4.36364}},
	{Location: netherlands("Den Haag", "2512 XW", "Glasblazerslaan 83a"), Coordinate: models.Coordinate{Latitude: 52.07219, Longitude: 4.30700}},
	{Location: netherlands("Den Haag", "2562 TL", "Vinkensteynstraat 1"), Coordinate: models.Coordinate{Latitude: 52.07290, Longitude: 4.28217}},
}

func netherlands(city, postalCode, address string) models.Location {
	return models.Location{Country: "Netherlands", City: city, PostalCode: postalCode, Address: address}
}
