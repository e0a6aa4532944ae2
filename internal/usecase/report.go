package usecase

import (
	"context"

	"github.com/bikestores/bikestore/internal/domain/model"
	"github.com/bikestores/bikestore/internal/domain/repository"
)

// TopStoresLimit caps the dashboard stores-by-orders ranking.
const TopStoresLimit = 5

// ReportUseCase produces the dashboard and analytics aggregations.
type ReportUseCase struct {
	reports repository.ReportRepository
}

// NewReportUseCase constructs ReportUseCase.
func NewReportUseCase(reports repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports}
}

// Summary gathers the four table counts and the top stores ranking.
func (u *ReportUseCase) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	summary := &model.DashboardSummary{}

	var err error
	if summary.Customers, err = u.reports.CountCustomers(ctx); err != nil {
		return nil, err
	}
	if summary.Orders, err = u.reports.CountOrders(ctx); err != nil {
		return nil, err
	}
	if summary.Products, err = u.reports.CountProducts(ctx); err != nil {
		return nil, err
	}
	if summary.Stores, err = u.reports.CountStores(ctx); err != nil {
		return nil, err
	}
	if summary.TopStores, err = u.reports.TopStoresByOrders(ctx, TopStoresLimit); err != nil {
		return nil, err
	}

	return summary, nil
}

// CustomersByCity groups customers per city, most populous first.
// A zero limit returns every city; negative values are clamped to zero.
func (u *ReportUseCase) CustomersByCity(ctx context.Context, limit int) ([]model.CityCustomers, error) {
	if limit < 0 {
		limit = 0
	}
	return u.reports.GroupByCity(ctx, limit)
}
