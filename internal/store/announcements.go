package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"community_portal/internal/models"
	"community_portal/internal/patch"
)

// AnnouncementFilter narrows ListAnnouncements. Empty strings are ignored;
// Published is always applied.
type AnnouncementFilter struct {
	Category  string
	Priority  models.Priority
	Search    string
	Published bool
}

// AnnouncementPatch is a partial update. Only ValidUntil may be cleared.
type AnnouncementPatch struct {
	Title       patch.Optional[string]
	Content     patch.Optional[string]
	Category    patch.Optional[string]
	Priority    patch.Optional[models.Priority]
	ValidUntil  patch.Optional[time.Time]
	IsPublished patch.Optional[bool]
}

// Validate rejects nulls and blanks on required columns and unknown priorities.
func (p AnnouncementPatch) Validate() error {
	for name, f := range map[string]patch.Optional[string]{
		"title": p.Title, "content": p.Content, "category": p.Category,
	} {
		if f.Set && (f.Null || f.Value == "") {
			return fmt.Errorf("%w: %s cannot be cleared", ErrValidation, name)
		}
	}
	if p.Priority.Set && (p.Priority.Null || !p.Priority.Value.Valid()) {
		return fmt.Errorf("%w: invalid priority", ErrValidation)
	}
	if p.IsPublished.Null {
		return fmt.Errorf("%w: isPublished cannot be null", ErrValidation)
	}
	return nil
}

func (p AnnouncementPatch) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Title.HasValue() {
		cols["title"] = p.Title.Value
	}
	if p.Content.HasValue() {
		cols["content"] = p.Content.Value
	}
	if p.Category.HasValue() {
		cols["category"] = p.Category.Value
	}
	if p.Priority.HasValue() {
		cols["priority"] = p.Priority.Value
	}
	if p.ValidUntil.Set {
		if p.ValidUntil.Null {
			cols["valid_until"] = nil
		} else {
			cols["valid_until"] = p.ValidUntil.Value
		}
	}
	if p.IsPublished.HasValue() {
		cols["is_published"] = p.IsPublished.Value
	}
	return cols
}

// ListAnnouncements orders by severity rank, newest first within a rank.
func (s *Store) ListAnnouncements(ctx context.Context, f AnnouncementFilter) ([]models.Announcement, error) {
	q := s.conn(ctx).
		Preload("Author", authorColumns).
		Where("is_published = ?", f.Published)

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	if f.Search != "" {
		pattern := containsPattern(f.Search)
		q = q.Where(`(title LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	var out []models.Announcement
	err := q.Order(models.PriorityRankSQL("priority") + " DESC").
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return out, nil
}

// PublishedAnnouncements is the fixed query behind the announcements page.
func (s *Store) PublishedAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	var out []models.Announcement
	err := s.conn(ctx).
		Preload("Author", authorColumns).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("published announcements: %w", err)
	}
	return out, nil
}

func (s *Store) GetAnnouncement(ctx context.Context, id string) (*models.Announcement, error) {
	var a models.Announcement
	err := s.conn(ctx).Preload("Author", authorColumns).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("announcement %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get announcement: %w", err)
	}
	return &a, nil
}

// CreateAnnouncement inserts a and reloads it with the author projection.
func (s *Store) CreateAnnouncement(ctx context.Context, a *models.Announcement) error {
	if a.Priority == "" {
		a.Priority = models.PriorityMedium
	}
	if !a.Priority.Valid() {
		return fmt.Errorf("%w: invalid priority", ErrValidation)
	}
	if err := s.conn(ctx).Omit("Author").Create(a).Error; err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}
	return s.conn(ctx).Preload("Author", authorColumns).First(a, "id = ?", a.ID).Error
}

func (s *Store) UpdateAnnouncement(ctx context.Context, id string, p AnnouncementPatch) (*models.Announcement, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var a models.Announcement
	if err := s.conn(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("announcement %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load announcement: %w", err)
	}

	if cols := p.columns(); len(cols) > 0 {
		if err := s.conn(ctx).Model(&a).Updates(cols).Error; err != nil {
			return nil, fmt.Errorf("update announcement: %w", err)
		}
	}
	return s.GetAnnouncement(ctx, id)
}

func (s *Store) DeleteAnnouncement(ctx context.Context, id string) error {
	res := s.conn(ctx).Where("id = ?", id).Delete(&models.Announcement{})
	if res.Error != nil {
		return fmt.Errorf("delete announcement: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("announcement %s: %w", id, ErrNotFound)
	}
	return nil
}
