package service

import (
	"context"
	"errors"
	"fmt"

	"ai-docchat-be/internal/entity"
	"ai-docchat-be/internal/repository/contract"
	"ai-docchat-be/internal/repository/memory"

	"github.com/google/uuid"
)

// ErrAccountNotFound distinguishes an unknown account from a lookup failure.
var ErrAccountNotFound = errors.New("account not found")

// IIdentityService resolves the authenticated user behind a request.
type IIdentityService interface {
	// Resolve returns the user or an error when the account is unknown.
	Resolve(ctx context.Context, userId uuid.UUID) (*entity.User, error)
}

type identityService struct {
	users contract.IUserRepository
	cache *memory.IdentityCache
}

func NewIdentityService(users contract.IUserRepository, cache *memory.IdentityCache) IIdentityService {
	return &identityService{
		users: users,
		cache: cache,
	}
}

func (s *identityService) Resolve(ctx context.Context, userId uuid.UUID) (*entity.User, error) {
	if user, found := s.cache.Get(userId.String()); found {
		return user, nil
	}

	user, err := s.users.GetById(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("user lookup: %w", err)
	}
	if user == nil {
		return nil, ErrAccountNotFound
	}

	s.cache.Save(user)
	return user, nil
}
