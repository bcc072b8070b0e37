package repositories

import (
	"context"

	"github.com/shwefx/money_changer_app/internal/core/domain"
)

// UserRepository defines persistence operations for staff accounts.
type UserRepository interface {
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
}
