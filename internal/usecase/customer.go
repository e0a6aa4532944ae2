package usecase

import (
	"context"

	"github.com/bikestores/bikestore/internal/domain/model"
	"github.com/bikestores/bikestore/internal/domain/repository"
)

// PageSize is the fixed number of customers per listing page.
const PageSize = 20

// CustomerUseCase implements customer browsing and CRUD.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// List returns one page of customers matching the search term, newest first.
// Pages start at 1; out-of-range values are clamped.
func (u *CustomerUseCase) List(ctx context.Context, search string, page int) ([]model.Customer, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize
	return u.customers.List(ctx, search, PageSize, offset)
}

// Get fetches a single customer by id.
func (u *CustomerUseCase) Get(ctx context.Context, id int64) (*model.Customer, error) {
	return u.customers.GetByID(ctx, id)
}

// Create validates the form and inserts a new customer.
func (u *CustomerUseCase) Create(ctx context.Context, form model.CustomerForm) (int64, error) {
	if vErr := ValidateCustomerForm(form); vErr != nil {
		return 0, vErr
	}
	return u.customers.Insert(ctx, form)
}

// Update validates the form and overwrites the customer row. Concurrent
// edits are last-writer-wins.
func (u *CustomerUseCase) Update(ctx context.Context, id int64, form model.CustomerForm) error {
	if vErr := ValidateCustomerForm(form); vErr != nil {
		return vErr
	}
	return u.customers.Update(ctx, id, form)
}

// Delete removes a customer; deleting an absent id is not an error.
func (u *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return u.customers.Delete(ctx, id)
}
