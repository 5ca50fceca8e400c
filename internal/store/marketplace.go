package store

import (
	"context"
	"fmt"

	"community_portal/internal/models"
)

// MarketplaceListings returns available, approved items, newest first.
func (s *Store) MarketplaceListings(ctx context.Context) ([]models.MarketplaceItem, error) {
	var out []models.MarketplaceItem
	err := s.conn(ctx).
		Preload("Seller", authorColumns).
		Where("is_available = ? AND is_approved = ?", true, true).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("marketplace listings: %w", err)
	}
	return out, nil
}
