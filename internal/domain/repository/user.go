package repository

import (
	"context"

	"github.com/bikestores/bikestore/internal/domain/model"
)

// UserRepository describes read access to login records.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
