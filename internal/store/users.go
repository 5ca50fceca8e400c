package store

import (
	"context"
	"fmt"

	"community_portal/internal/models"
)

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	role, err := models.ParseRole(string(u.Role))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	u.Role = role
	if err := s.conn(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
