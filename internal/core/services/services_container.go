package services

import (
	portsrepo "github.com/vmaryna/cashdine_backend/internal/core/ports/repositories"
	portssvc "github.com/vmaryna/cashdine_backend/internal/core/ports/services"
	"github.com/vmaryna/cashdine_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Restaurant = NewRestaurantService(repos.RestaurantRepo)
	container.Balance = NewBalanceService(repos.BalanceRepo, repos.RestaurantRepo)
	container.Transfer = NewTransferService(repos.TransferRepo, repos.RestaurantRepo)
	container.Ranking = NewRankingService(repos.RestaurantRepo, repos.BalanceRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.RestaurantRepo, cfg.RewardRate)

	return container
}
