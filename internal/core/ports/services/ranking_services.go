package services

import (
	"context"

	"github.com/vmaryna/cashdine_backend/internal/core/domain"
)

// RankingSvcFacade produces ordered restaurant listings. Read-only.
type RankingSvcFacade interface {
	// Rank lists restaurants sorted by the criterion, annotated with the
	// caller's balance and, when a location is given, the distance to each
	// restaurant. DISTANCE without a location fails with ErrLocationUnavailable.
	Rank(ctx context.Context, userID string, criterion domain.RankCriterion, location *domain.Coordinate) ([]domain.RankedRestaurant, error)
}
