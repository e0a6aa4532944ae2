package test

import (
	"context"
	"sort"
	"strings"

	domainErrors "github.com/bikestores/bikestore/internal/domain/errors"
	"github.com/bikestores/bikestore/internal/domain/model"
)

// UserRepositoryStub stores login records in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Users: make(map[string]*model.User)}
}

// Add registers a user record under its email.
func (s *UserRepositoryStub) Add(user *model.User) {
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	s.Users[user.Email] = user
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListCall records the arguments of one CustomerRepositoryStub.List call.
type ListCall struct {
	Search string
	Limit  int
	Offset int
}

// CustomerRepositoryStub keeps customers in-memory and records list calls.
type CustomerRepositoryStub struct {
	Customers map[int64]*model.Customer
	Next      int64
	Err       error

	ListCalls []ListCall
}

// NewCustomerRepositoryStub constructs stub repository with initialized maps.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{Customers: make(map[int64]*model.Customer), Next: 1}
}

// List filters case-insensitively on first name, last name, or email and
// returns customers ordered by descending id with limit/offset applied.
func (s *CustomerRepositoryStub) List(ctx context.Context, search string, limit, offset int) ([]model.Customer, error) {
	s.ListCalls = append(s.ListCalls, ListCall{Search: search, Limit: limit, Offset: offset})
	if s.Err != nil {
		return nil, s.Err
	}

	needle := strings.ToLower(search)
	var matched []model.Customer
	for _, c := range s.Customers {
		if needle == "" ||
			strings.Contains(strings.ToLower(c.FirstName), needle) ||
			strings.Contains(strings.ToLower(c.LastName), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) {
			matched = append(matched, *c)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

// GetByID fetches customer by identifier or returns not found.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.Customers[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Insert stores a new customer and returns its generated id.
func (s *CustomerRepositoryStub) Insert(ctx context.Context, form model.CustomerForm) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	if s.Customers == nil {
		s.Customers = make(map[int64]*model.Customer)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	id := s.Next
	s.Next++
	s.Customers[id] = &model.Customer{
		ID:        id,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		City:      form.City,
	}
	return id, nil
}

// Update overwrites the stored customer when present.
func (s *CustomerRepositoryStub) Update(ctx context.Context, id int64, form model.CustomerForm) error {
	if s.Err != nil {
		return s.Err
	}
	if c, ok := s.Customers[id]; ok {
		c.FirstName = form.FirstName
		c.LastName = form.LastName
		c.Email = form.Email
		c.City = form.City
	}
	return nil
}

// Delete removes the customer; absent ids are ignored.
func (s *CustomerRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	delete(s.Customers, id)
	return nil
}

// ReportRepositoryStub returns canned aggregation results.
type ReportRepositoryStub struct {
	CustomerCount int64
	OrderCount    int64
	ProductCount  int64
	StoreCount    int64
	TopStores     []model.StoreOrders
	Cities        []model.CityCustomers
	Err           error

	TopStoresLimits []int
	CityLimits      []int
}

func (s *ReportRepositoryStub) CountCustomers(ctx context.Context) (int64, error) {
	return s.CustomerCount, s.Err
}

func (s *ReportRepositoryStub) CountOrders(ctx context.Context) (int64, error) {
	return s.OrderCount, s.Err
}

func (s *ReportRepositoryStub) CountProducts(ctx context.Context) (int64, error) {
	return s.ProductCount, s.Err
}

func (s *ReportRepositoryStub) CountStores(ctx context.Context) (int64, error) {
	return s.StoreCount, s.Err
}

func (s *ReportRepositoryStub) TopStoresByOrders(ctx context.Context, limit int) ([]model.StoreOrders, error) {
	s.TopStoresLimits = append(s.TopStoresLimits, limit)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.TopStores, nil
}

func (s *ReportRepositoryStub) GroupByCity(ctx context.Context, limit int) ([]model.CityCustomers, error) {
	s.CityLimits = append(s.CityLimits, limit)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Cities, nil
}
