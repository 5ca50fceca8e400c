package store

import (
	"context"
	"fmt"

	"community_portal/internal/models"
)

const forumPostColumns = "forum_posts.*, (SELECT COUNT(*) FROM forum_comments WHERE forum_comments.post_id = forum_posts.id) AS comment_count"

// ForumThreads returns every post, pinned first, newest first, with the
// author and comment count.
func (s *Store) ForumThreads(ctx context.Context) ([]models.ForumPost, error) {
	var out []models.ForumPost
	err := s.conn(ctx).
		Model(&models.ForumPost{}).
		Select(forumPostColumns).
		Preload("Author", authorColumns).
		Order("forum_posts.is_pinned DESC").
		Order("forum_posts.created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("forum threads: %w", err)
	}
	return out, nil
}
