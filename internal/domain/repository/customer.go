package repository

import (
	"context"

	"github.com/bikestores/bikestore/internal/domain/model"
)

// CustomerRepository describes persistence operations for customers.
type CustomerRepository interface {
	List(ctx context.Context, search string, limit, offset int) ([]model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	Insert(ctx context.Context, form model.CustomerForm) (int64, error)
	Update(ctx context.Context, id int64, form model.CustomerForm) error
	Delete(ctx context.Context, id int64) error
}
