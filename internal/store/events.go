package store

import (
	"context"
	"fmt"

	"community_portal/internal/models"
)

const eventColumns = "events.*, (SELECT COUNT(*) FROM event_attendees WHERE event_attendees.event_id = events.id) AS attendee_count"

// EventFilter narrows ListEvents. Only published events are ever listed.
type EventFilter struct {
	Category     string
	Search       string
	UpcomingOnly bool
}

// ListEvents returns published events by ascending start date, with the
// organizer and attendee count filled in.
func (s *Store) ListEvents(ctx context.Context, f EventFilter) ([]models.Event, error) {
	q := s.conn(ctx).
		Model(&models.Event{}).
		Select(eventColumns).
		Preload("Organizer", authorColumns).
		Where("events.is_published = ?", true)

	if f.UpcomingOnly {
		q = q.Where("events.start_date >= ?", s.now())
	}
	if f.Category != "" {
		q = q.Where("events.category = ?", f.Category)
	}
	if f.Search != "" {
		pattern := containsPattern(f.Search)
		q = q.Where(`(events.title LIKE ? ESCAPE '\' OR events.description LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	var out []models.Event
	if err := q.Order("events.start_date ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

// UpcomingEvents is the fixed query behind the events page.
func (s *Store) UpcomingEvents(ctx context.Context) ([]models.Event, error) {
	return s.ListEvents(ctx, EventFilter{UpcomingOnly: true})
}

func (s *Store) CreateEvent(ctx context.Context, e *models.Event) error {
	if err := s.conn(ctx).Omit("Organizer", "Attendees").Create(e).Error; err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	err := s.conn(ctx).
		Model(&models.Event{}).
		Select(eventColumns).
		Preload("Organizer", authorColumns).
		First(e, "events.id = ?", e.ID).Error
	if err != nil {
		return fmt.Errorf("reload event: %w", err)
	}
	return nil
}

// AddAttendee records that a user attends an event.
func (s *Store) AddAttendee(ctx context.Context, eventID, userID string) error {
	event := models.Event{Base: models.Base{ID: eventID}}
	user := models.User{Base: models.Base{ID: userID}}
	if err := s.conn(ctx).Model(&event).Omit("Attendees.*").Association("Attendees").Append(&user); err != nil {
		return fmt.Errorf("add attendee: %w", err)
	}
	return nil
}
