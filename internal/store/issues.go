package store

import (
	"context"
	"fmt"

	"community_portal/internal/models"
)

type IssueFilter struct {
	Status   models.IssueStatus
	Category string
}

// ListIssues orders by lifecycle position, then severity, then newest first.
func (s *Store) ListIssues(ctx context.Context, f IssueFilter) ([]models.Issue, error) {
	q := s.conn(ctx).Preload("Reporter", authorColumns)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	var out []models.Issue
	err := q.Order(models.IssueStatusRankSQL("status") + " ASC").
		Order(models.PriorityRankSQL("priority") + " DESC").
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	return out, nil
}

// IssueBoard is the fixed query behind the issues page.
func (s *Store) IssueBoard(ctx context.Context) ([]models.Issue, error) {
	return s.ListIssues(ctx, IssueFilter{})
}

// CreateIssue files a new report. New issues always start as reported with
// no upvotes.
func (s *Store) CreateIssue(ctx context.Context, i *models.Issue) error {
	i.Status = models.IssueReported
	i.Upvotes = 0
	if i.Priority == "" {
		i.Priority = models.PriorityMedium
	}
	if !i.Priority.Valid() {
		return fmt.Errorf("%w: invalid priority", ErrValidation)
	}
	if err := s.conn(ctx).Omit("Reporter").Create(i).Error; err != nil {
		return fmt.Errorf("create issue: %w", err)
	}
	return s.conn(ctx).Preload("Reporter", authorColumns).First(i, "id = ?", i.ID).Error
}
