package store

import (
	"context"
	"fmt"

	"community_portal/internal/models"
)

// ActiveEmergencyContacts lists verified contacts first, then by category
// and name.
func (s *Store) ActiveEmergencyContacts(ctx context.Context) ([]models.EmergencyContact, error) {
	var out []models.EmergencyContact
	err := s.conn(ctx).
		Where("is_active = ?", true).
		Order("is_verified DESC").
		Order("category ASC").
		Order("name ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("emergency contacts: %w", err)
	}
	return out, nil
}
