package services

import (
	"context"

	"github.com/shwefx/money_changer_app/internal/core/domain"
)

// UserSvcFacade exposes staff account lookups for the auth boundary.
type UserSvcFacade interface {
	// Authenticate verifies credentials. Returns apperrors.ErrUnauthorized on
	// bad credentials and apperrors.ErrForbidden for inactive accounts.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
}
