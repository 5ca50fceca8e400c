package controllers

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"community_portal/internal/models"
)

// AuthorSummary is the shallow user projection embedded in content responses.
type AuthorSummary struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role models.Role `json:"role"`
}

func toAuthorSummary(u *models.User) *AuthorSummary {
	if u == nil {
		return nil
	}
	return &AuthorSummary{ID: u.ID, Name: u.Name, Role: u.Role}
}

type AnnouncementResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	Category    string          `json:"category"`
	Priority    models.Priority `json:"priority"`
	IsPublished bool            `json:"isPublished"`
	ValidUntil  *time.Time      `json:"validUntil"`
	AuthorID    string          `json:"authorId"`
	Author      *AuthorSummary  `json:"author"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toAnnouncementResponse(a models.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Category:    a.Category,
		Priority:    a.Priority,
		IsPublished: a.IsPublished,
		ValidUntil:  a.ValidUntil,
		AuthorID:    a.AuthorID,
		Author:      toAuthorSummary(a.Author),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type EventResponse struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Location      string         `json:"location"`
	StartDate     time.Time      `json:"startDate"`
	EndDate       *time.Time     `json:"endDate"`
	Category      string         `json:"category"`
	MaxAttendees  *int           `json:"maxAttendees"`
	ImageURL      string         `json:"imageUrl"`
	IsPublished   bool           `json:"isPublished"`
	OrganizerID   string         `json:"organizerId"`
	Organizer     *AuthorSummary `json:"organizer"`
	AttendeeCount int64          `json:"attendeeCount"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func toEventResponse(e models.Event) EventResponse {
	return EventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Location:      e.Location,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		Category:      e.Category,
		MaxAttendees:  e.MaxAttendees,
		ImageURL:      e.ImageURL,
		IsPublished:   e.IsPublished,
		OrganizerID:   e.OrganizerID,
		Organizer:     toAuthorSummary(e.Organizer),
		AttendeeCount: e.AttendeeCount,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

type IssueResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Location    string             `json:"location"`
	Category    string             `json:"category"`
	Status      models.IssueStatus `json:"status"`
	Priority    models.Priority    `json:"priority"`
	Upvotes     int                `json:"upvotes"`
	Geometry    json.RawMessage    `json:"geometry"`
	ReporterID  string             `json:"reporterId"`
	Reporter    *AuthorSummary     `json:"reporter"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func toIssueResponse(i models.Issue) IssueResponse {
	geometry := json.RawMessage("null")
	if gj, err := convertWKBToGeoJSON(i.Geometry); err != nil {
		logrus.WithError(err).WithField("issue_id", i.ID).Warn("stored issue geometry is not valid WKB")
	} else if gj != "" {
		geometry = json.RawMessage(gj)
	}

	return IssueResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Location:    i.Location,
		Category:    i.Category,
		Status:      i.Status,
		Priority:    i.Priority,
		Upvotes:     i.Upvotes,
		Geometry:    geometry,
		ReporterID:  i.ReporterID,
		Reporter:    toAuthorSummary(i.Reporter),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
