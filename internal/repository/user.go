package repository

import (
	"context"

	"filesmanager/internal/model"
)

// UserRepository reads accounts created by the registration service.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}
