package app

import (
	"context"

	"github.com/bikestores/bikestore/internal/domain/model"
	pkgAuth "github.com/bikestores/bikestore/internal/pkg/auth"
	"github.com/bikestores/bikestore/internal/usecase"
)

// BikeStoreFacade aggregates the use cases the HTTP layer depends on.
type BikeStoreFacade struct {
	auth      *usecase.AuthUseCase
	customers *usecase.CustomerUseCase
	reports   *usecase.ReportUseCase
}

// NewBikeStoreFacade constructs the facade over the use cases.
func NewBikeStoreFacade(auth *usecase.AuthUseCase, customers *usecase.CustomerUseCase, reports *usecase.ReportUseCase) *BikeStoreFacade {
	return &BikeStoreFacade{auth: auth, customers: customers, reports: reports}
}

func (f *BikeStoreFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *BikeStoreFacade) ParseSession(token string) (*pkgAuth.Session, error) {
	return f.auth.ParseSession(token)
}

func (f *BikeStoreFacade) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	return f.reports.Summary(ctx)
}

func (f *BikeStoreFacade) CustomersByCity(ctx context.Context, limit int) ([]model.CityCustomers, error) {
	return f.reports.CustomersByCity(ctx, limit)
}

func (f *BikeStoreFacade) Customers(ctx context.Context, search string, page int) ([]model.Customer, error) {
	return f.customers.List(ctx, search, page)
}

func (f *BikeStoreFacade) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	return f.customers.Get(ctx, id)
}

func (f *BikeStoreFacade) CreateCustomer(ctx context.Context, form model.CustomerForm) (int64, error) {
	return f.customers.Create(ctx, form)
}

func (f *BikeStoreFacade) UpdateCustomer(ctx context.Context, id int64, form model.CustomerForm) error {
	return f.customers.Update(ctx, id, form)
}

func (f *BikeStoreFacade) DeleteCustomer(ctx context.Context, id int64) error {
	return f.customers.Delete(ctx, id)
}
