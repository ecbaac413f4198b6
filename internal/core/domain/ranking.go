package domain

import "github.com/shopspring/decimal"

// RankCriterion selects the sort order for restaurant listings.
type RankCriterion string

const (
	RankAlphabetical RankCriterion = "ALPHABETICAL"
	RankDistance     RankCriterion = "DISTANCE"
	RankPoints       RankCriterion = "POINTS"
)

// RankedRestaurant is one row of a ranked listing: the catalog entry plus the
// caller's balance and, when a location was available, the distance in meters.
type RankedRestaurant struct {
	Restaurant Restaurant      `json:"restaurant"`
	Points     decimal.Decimal `json:"points"`
	DistanceM  *float64        `json:"distanceM,omitempty"`
}
