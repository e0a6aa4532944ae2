package handlers

import (
	"context"

	"github.com/bikestores/bikestore/internal/domain/model"
	pkgAuth "github.com/bikestores/bikestore/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseSession(token string) (*pkgAuth.Session, error)
}

// CustomerFacade encapsulates customer operations exposed via HTTP.
type CustomerFacade interface {
	Customers(ctx context.Context, search string, page int) ([]model.Customer, error)
	Customer(ctx context.Context, id int64) (*model.Customer, error)
	CreateCustomer(ctx context.Context, form model.CustomerForm) (int64, error)
	UpdateCustomer(ctx context.Context, id int64, form model.CustomerForm) error
	DeleteCustomer(ctx context.Context, id int64) error
}

// ReportFacade provides the dashboard and analytics aggregations.
type ReportFacade interface {
	Summary(ctx context.Context) (*model.DashboardSummary, error)
	CustomersByCity(ctx context.Context, limit int) ([]model.CityCustomers, error)
}

// BikeStoreFacade aggregates the full set of operations used across handlers.
type BikeStoreFacade interface {
	AuthFacade
	CustomerFacade
	ReportFacade
}
