package auth

import (
	"context"

	"filesmanager/internal/domain"
)

type UserRepository interface {
	GetByCredentials(ctx context.Context, email, passwordHash string) (*domain.User, error)
}
