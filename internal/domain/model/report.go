package model

// StoreOrders is one row of the stores-by-order-count ranking.
type StoreOrders struct {
	StoreName string
	Orders    int64
}

// CityCustomers is one row of the customers-grouped-by-city aggregation.
type CityCustomers struct {
	City      string
	Customers int64
}

// DashboardSummary aggregates the dashboard counters and ranking.
type DashboardSummary struct {
	Customers int64
	Orders    int64
	Products  int64
	Stores    int64
	TopStores []StoreOrders
}
