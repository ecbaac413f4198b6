package services

// ServiceContainer bundles all service facades for injection into the HTTP
// layer.
type ServiceContainer struct {
	Balance    BalanceSvcFacade
	Transfer   TransferSvcFacade
	Restaurant RestaurantSvcFacade
	Ranking    RankingSvcFacade
	Purchase   PurchaseSvcFacade
}
