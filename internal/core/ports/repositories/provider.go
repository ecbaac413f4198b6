package repositories

// RepositoryProvider bundles all repository facades for injection into the
// service layer.
type RepositoryProvider struct {
	BalanceRepo    BalanceRepositoryFacade
	TransferRepo   TransferRepositoryFacade
	RestaurantRepo RestaurantRepositoryFacade
	PurchaseRepo   PurchaseRepositoryFacade
}
