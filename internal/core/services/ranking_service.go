package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	portsrepo "github.com/vmaryna/cashdine_backend/internal/core/ports/repositories"
	portssvc "github.com/vmaryna/cashdine_backend/internal/core/ports/services"
	"github.com/vmaryna/cashdine_backend/internal/utils/geo"
)

type RankingService struct {
	BaseService
	restaurantRepo portsrepo.RestaurantReader
	balanceRepo    portsrepo.BalanceReader
}

// NewRankingService creates a new service producing ordered restaurant
// listings.
func NewRankingService(restaurantRepo portsrepo.RestaurantReader, balanceRepo portsrepo.BalanceReader) *RankingService {
	return &RankingService{restaurantRepo: restaurantRepo, balanceRepo: balanceRepo}
}

var _ portssvc.RankingSvcFacade = (*RankingService)(nil)

// Rank lists restaurants sorted by the criterion, each annotated with the
// caller's balance and, when a location is given, the distance in meters.
// Balances are read once at call time; the listing is a snapshot, not a view.
func (s *RankingService) Rank(ctx context.Context, userID string, criterion domain.RankCriterion, location *domain.Coordinate) ([]domain.RankedRestaurant, error) {
	if criterion == domain.RankDistance && location == nil {
		return nil, apperrors.ErrLocationUnavailable
	}

	restaurants, err := s.restaurantRepo.ListRestaurants(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list restaurants for ranking")
		return nil, err
	}

	restaurantIDs := make([]string, len(restaurants))
	for i, r := range restaurants {
		restaurantIDs[i] = r.RestaurantID
	}
	balances, err := s.balanceRepo.GetBalancesByRestaurantIDs(ctx, userID, restaurantIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch balances for ranking")
		return nil, err
	}

	ranked := make([]domain.RankedRestaurant, len(restaurants))
	for i, r := range restaurants {
		points, ok := balances[r.RestaurantID]
		if !ok {
			points = decimal.Zero
		}
		row := domain.RankedRestaurant{Restaurant: r, Points: points}
		if location != nil && r.Location != nil {
			d := geo.HaversineDistance(location.Latitude, location.Longitude, r.Location.Latitude, r.Location.Longitude)
			row.DistanceM = &d
		}
		ranked[i] = row
	}

	switch criterion {
	case domain.RankAlphabetical:
		sort.SliceStable(ranked, func(i, j int) bool {
			ni := strings.ToLower(ranked[i].Restaurant.Name)
			nj := strings.ToLower(ranked[j].Restaurant.Name)
			if ni != nj {
				return ni < nj
			}
			return ranked[i].Restaurant.RestaurantID < ranked[j].Restaurant.RestaurantID
		})
	case domain.RankDistance:
		// Restaurants without coordinates sort after every measurable one.
		sort.SliceStable(ranked, func(i, j int) bool {
			di, dj := ranked[i].DistanceM, ranked[j].DistanceM
			if di == nil && dj == nil {
				return ranked[i].Restaurant.RestaurantID < ranked[j].Restaurant.RestaurantID
			}
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			if *di != *dj {
				return *di < *dj
			}
			return ranked[i].Restaurant.RestaurantID < ranked[j].Restaurant.RestaurantID
		})
	case domain.RankPoints:
		sort.SliceStable(ranked, func(i, j int) bool {
			if !ranked[i].Points.Equal(ranked[j].Points) {
				return ranked[i].Points.GreaterThan(ranked[j].Points)
			}
			ni := strings.ToLower(ranked[i].Restaurant.Name)
			nj := strings.ToLower(ranked[j].Restaurant.Name)
			return ni < nj
		})
	default:
		return nil, fmt.Errorf("%w: unknown rank criterion %q", apperrors.ErrValidation, criterion)
	}

	return ranked, nil
}
