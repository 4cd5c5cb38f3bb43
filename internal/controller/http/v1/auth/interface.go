package auth

import (
	"context"

	"crm/backend/internal/entity"
	"crm/backend/internal/repository/postgres/user"
)

type User interface {
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	Register(ctx context.Context, request user.RegisterRequest) (user.AccountView, error)
}
