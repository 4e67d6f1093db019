package models

import "fmt"

// Location is a postal address as it travels over the wire. It is mutable and
// must not be used as a map key; use KeyOf to obtain a LocationKey instead.
type Location struct {
	Country    string `json:"country"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Address    string `json:"address"`
}

// String formats the location as "{address}, {postalCode} {city}, {country}".
func (l Location) String() string {
	return fmt.Sprintf("%s, %s %s, %s", l.Address, l.PostalCode, l.City, l.Country)
}

// LocationKey is the immutable projection of a Location used to key geocoding
// and courier tables. Two keys are equal iff all four fields are equal.
type LocationKey struct {
	country    string
	city       string
	postalCode string
	address    string
}

// NewLocationKey builds a key from the individual address fields.
func NewLocationKey(country, city, postalCode, address string) LocationKey {
	return LocationKey{
		country:    country,
		city:       city,
		postalCode: postalCode,
		address:    address,
	}
}

// KeyOf snapshots a Location. Later changes to loc do not affect the key.
func KeyOf(loc Location) LocationKey {
	return NewLocationKey(loc.Country, loc.City, loc.PostalCode, loc.Address)
}

func (k LocationKey) Country() string    { return k.country }
func (k LocationKey) City() string       { return k.city }
func (k LocationKey) PostalCode() string { return k.postalCode }
func (k LocationKey) Address() string    { return k.address }

// Location returns a fresh mutable copy of the key.
func (k LocationKey) Location() Location {
	return Location{
		Country:    k.country,
		City:       k.city,
		PostalCode: k.postalCode,
		Address:    k.address,
	}
}

func (k LocationKey) String() string {
	return k.Location().String()
}
