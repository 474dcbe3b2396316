package models

// DeviceAddress is the caller's postal address as reported by the voice
// platform's device-address service. Any field may be empty; the platform
// returns null for fields the user never filled in.
type DeviceAddress struct {
	AddressLine1  string `json:"addressLine1"`  // Street line, may be empty.
	StateOrRegion string `json:"stateOrRegion"` // State or region, may be empty.
	PostalCode    string `json:"postalCode"`    // Postal code, may be empty.
}

// IsEmpty reports whether the address carries neither a street line nor a
// state or region. Such an address cannot be geocoded.
func (a DeviceAddress) IsEmpty() bool {
	return a.AddressLine1 == "" && a.StateOrRegion == ""
}
