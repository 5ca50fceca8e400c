package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"community_portal/internal/models"
	"community_portal/internal/store"
)

type EventStore interface {
	ListEvents(ctx context.Context, f store.EventFilter) ([]models.Event, error)
	CreateEvent(ctx context.Context, e *models.Event) error
}

type EventController struct {
	store EventStore
}

func NewEventController(s EventStore) *EventController {
	return &EventController{store: s}
}

type createEventInput struct {
	Title        string        `json:"title" binding:"required"`
	Description  string        `json:"description" binding:"required"`
	Location     string        `json:"location" binding:"required"`
	StartDate    *FlexibleTime `json:"startDate" binding:"required"`
	EndDate      *FlexibleTime `json:"endDate"`
	Category     string        `json:"category" binding:"required"`
	MaxAttendees *int          `json:"maxAttendees"`
	OrganizerID  string        `json:"organizerId" binding:"required"`
	ImageURL     string        `json:"imageUrl"`
	IsPublished  *bool         `json:"isPublished"`
}

// List handles GET /api/events. Past events are included only for the
// literal upcoming=false.
func (ec *EventController) List(c *gin.Context) {
	filter := store.EventFilter{
		Category:     c.Query("category"),
		Search:       c.Query("search"),
		UpcomingOnly: c.Query("upcoming") != "false",
	}

	events, err := ec.store.ListEvents(c.Request.Context(), filter)
	if err != nil {
		fail(c, "ListEvents", "Failed to fetch events", err)
		return
	}

	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /api/events.
func (ec *EventController) Create(c *gin.Context) {
	var input createEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFailure(c, "CreateEvent", err)
		return
	}
	if input.StartDate.IsZero() {
		badRequest(c, msgMissingFields)
		return
	}
	if end := input.EndDate.Ptr(); end != nil && end.Before(input.StartDate.Time) {
		badRequest(c, "endDate must not be before startDate")
		return
	}

	event := models.Event{
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		StartDate:    input.StartDate.Time,
		EndDate:      input.EndDate.Ptr(),
		Category:     input.Category,
		MaxAttendees: input.MaxAttendees,
		ImageURL:     input.ImageURL,
		OrganizerID:  input.OrganizerID,
		IsPublished:  input.IsPublished != nil && *input.IsPublished,
	}

	if err := ec.store.CreateEvent(c.Request.Context(), &event); err != nil {
		fail(c, "CreateEvent", "Failed to create event", err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"event_id":     event.ID,
		"organizer_id": event.OrganizerID,
	}).Info("event created")
	c.JSON(http.StatusCreated, toEventResponse(event))
}
