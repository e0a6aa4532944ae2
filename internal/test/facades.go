package test

import (
	"context"

	"github.com/bikestores/bikestore/internal/domain/model"
	pkgAuth "github.com/bikestores/bikestore/internal/pkg/auth"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (*pkgAuth.Session, error)
}

// Authenticate returns a token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

// ParseSession returns a fixed identity unless overridden.
func (s AuthFacadeStub) ParseSession(token string) (*pkgAuth.Session, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &pkgAuth.Session{UserID: 1, Email: "admin@bikestores.local"}, nil
}

// CustomerFacadeStub simulates customer operations.
type CustomerFacadeStub struct {
	CustomersFn func(context.Context, string, int) ([]model.Customer, error)
	CustomerFn  func(context.Context, int64) (*model.Customer, error)
	CreateFn    func(context.Context, model.CustomerForm) (int64, error)
	UpdateFn    func(context.Context, int64, model.CustomerForm) error
	DeleteFn    func(context.Context, int64) error
}

// Customers returns configured listing results.
func (s CustomerFacadeStub) Customers(ctx context.Context, search string, page int) ([]model.Customer, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx, search, page)
	}
	return []model.Customer{{ID: 1, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", City: "Boston"}}, nil
}

// Customer returns configured single row results.
func (s CustomerFacadeStub) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	if s.CustomerFn != nil {
		return s.CustomerFn(ctx, id)
	}
	return &model.Customer{ID: id, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", City: "Boston"}, nil
}

// CreateCustomer delegates to the override or succeeds with id 1.
func (s CustomerFacadeStub) CreateCustomer(ctx context.Context, form model.CustomerForm) (int64, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, form)
	}
	return 1, nil
}

// UpdateCustomer delegates to the override or succeeds.
func (s CustomerFacadeStub) UpdateCustomer(ctx context.Context, id int64, form model.CustomerForm) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, form)
	}
	return nil
}

// DeleteCustomer delegates to the override or succeeds.
func (s CustomerFacadeStub) DeleteCustomer(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ReportFacadeStub simulates dashboard and analytics aggregations.
type ReportFacadeStub struct {
	SummaryFn         func(context.Context) (*model.DashboardSummary, error)
	CustomersByCityFn func(context.Context, int) ([]model.CityCustomers, error)
}

// Summary returns configured dashboard data.
func (s ReportFacadeStub) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx)
	}
	return &model.DashboardSummary{
		Customers: 10,
		Orders:    20,
		Products:  30,
		Stores:    3,
		TopStores: []model.StoreOrders{{StoreName: "Baldwin Bikes", Orders: 12}},
	}, nil
}

// CustomersByCity returns configured grouping data.
func (s ReportFacadeStub) CustomersByCity(ctx context.Context, limit int) ([]model.CityCustomers, error) {
	if s.CustomersByCityFn != nil {
		return s.CustomersByCityFn(ctx, limit)
	}
	return []model.CityCustomers{{City: "New York", Customers: 7}}, nil
}

// BikeStoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type BikeStoreFacadeStub struct {
	AuthFacadeStub
	CustomerFacadeStub
	ReportFacadeStub
}
