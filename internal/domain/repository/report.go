package repository

import (
	"context"

	"github.com/bikestores/bikestore/internal/domain/model"
)

// ReportRepository describes the read-only aggregations used by the
// dashboard and analytics views.
type ReportRepository interface {
	CountCustomers(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountStores(ctx context.Context) (int64, error)
	TopStoresByOrders(ctx context.Context, limit int) ([]model.StoreOrders, error)
	GroupByCity(ctx context.Context, limit int) ([]model.CityCustomers, error)
}
