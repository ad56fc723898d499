package contract

import (
	"context"

	"ai-docchat-be/internal/entity"

	"github.com/google/uuid"
)

// IUserRepository is the persisted-user lookup collaborator. Read-only from
// this service's perspective.
type IUserRepository interface {
	// GetById returns nil, nil when no such account exists.
	GetById(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
