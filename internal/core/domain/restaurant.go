package domain

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Restaurant is a catalog entry. The ledger and ranking layers only ever hold
// the ID; catalog data itself is read-only for them.
type Restaurant struct {
	RestaurantID string      `json:"restaurantID"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Location     *Coordinate `json:"location,omitempty"` // nil when the owner never set one
	ImageURL     string      `json:"imageURL"`
	AuditFields
}
