package models

// Restaurant mirrors one row of the restaurants table.
// Latitude/Longitude are nullable; both set or both absent.
type Restaurant struct {
	RestaurantID string   `db:"restaurant_id"`
	Name         string   `db:"name"`
	Description  string   `db:"description"`
	Latitude     *float64 `db:"latitude"`
	Longitude    *float64 `db:"longitude"`
	ImageURL     string   `db:"image_url"`
	AuditFields
}
