package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"community_portal/internal/models"
	"community_portal/internal/patch"
	"community_portal/internal/store"
)

type AnnouncementStore interface {
	ListAnnouncements(ctx context.Context, f store.AnnouncementFilter) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, a *models.Announcement) error
	UpdateAnnouncement(ctx context.Context, id string, p store.AnnouncementPatch) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error
}

type AnnouncementController struct {
	store AnnouncementStore
}

func NewAnnouncementController(s AnnouncementStore) *AnnouncementController {
	return &AnnouncementController{store: s}
}

type createAnnouncementInput struct {
	Title       string        `json:"title" binding:"required"`
	Content     string        `json:"content" binding:"required"`
	Category    string        `json:"category" binding:"required"`
	Priority    string        `json:"priority"`
	AuthorID    string        `json:"authorId" binding:"required"`
	ValidUntil  *FlexibleTime `json:"validUntil"`
	IsPublished *bool         `json:"isPublished"`
}

type updateAnnouncementInput struct {
	ID          string                       `json:"id"`
	Title       patch.Optional[string]       `json:"title"`
	Content     patch.Optional[string]       `json:"content"`
	Category    patch.Optional[string]       `json:"category"`
	Priority    patch.Optional[string]       `json:"priority"`
	ValidUntil  patch.Optional[FlexibleTime] `json:"validUntil"`
	IsPublished patch.Optional[bool]         `json:"isPublished"`
}

// List handles GET /api/announcements. Only the literal published=false
// switches to unpublished records.
func (ac *AnnouncementController) List(c *gin.Context) {
	filter := store.AnnouncementFilter{
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		Published: c.Query("published") != "false",
	}
	if raw := c.Query("priority"); raw != "" {
		p, err := models.ParsePriority(raw)
		if err != nil {
			badRequest(c, "Invalid priority")
			return
		}
		filter.Priority = p
	}

	announcements, err := ac.store.ListAnnouncements(c.Request.Context(), filter)
	if err != nil {
		fail(c, "ListAnnouncements", "Failed to fetch announcements", err)
		return
	}

	out := make([]AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		out = append(out, toAnnouncementResponse(a))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /api/announcements.
func (ac *AnnouncementController) Create(c *gin.Context) {
	var input createAnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFailure(c, "CreateAnnouncement", err)
		return
	}

	priority := models.PriorityMedium
	if input.Priority != "" {
		p, err := models.ParsePriority(input.Priority)
		if err != nil {
			badRequest(c, "Invalid priority")
			return
		}
		priority = p
	}

	announcement := models.Announcement{
		Title:       input.Title,
		Content:     input.Content,
		Category:    input.Category,
		Priority:    priority,
		AuthorID:    input.AuthorID,
		ValidUntil:  input.ValidUntil.Ptr(),
		IsPublished: input.IsPublished != nil && *input.IsPublished,
	}

	if err := ac.store.CreateAnnouncement(c.Request.Context(), &announcement); err != nil {
		fail(c, "CreateAnnouncement", "Failed to create announcement", err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"announcement_id": announcement.ID,
		"author_id":       announcement.AuthorID,
	}).Info("announcement created")
	c.JSON(http.StatusCreated, toAnnouncementResponse(announcement))
}

// Update handles PUT /api/announcements. An unknown id is reported as a
// generic failure, like any other store error.
func (ac *AnnouncementController) Update(c *gin.Context) {
	var input updateAnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFailure(c, "UpdateAnnouncement", err)
		return
	}
	if input.ID == "" {
		badRequest(c, "Announcement ID is required")
		return
	}

	p := store.AnnouncementPatch{
		Title:       input.Title,
		Content:     input.Content,
		Category:    input.Category,
		IsPublished: input.IsPublished,
	}
	if input.Priority.Set {
		p.Priority = patch.Optional[models.Priority]{Set: true, Null: input.Priority.Null}
		if input.Priority.HasValue() {
			parsed, err := models.ParsePriority(input.Priority.Value)
			if err != nil {
				badRequest(c, "Invalid priority")
				return
			}
			p.Priority.Value = parsed
		}
	}
	switch {
	case input.ValidUntil.HasValue() && !input.ValidUntil.Value.IsZero():
		p.ValidUntil = patch.Value(input.ValidUntil.Value.Time)
	case input.ValidUntil.Set:
		// null and "" both clear the date
		p.ValidUntil = patch.Null[time.Time]()
	}

	announcement, err := ac.store.UpdateAnnouncement(c.Request.Context(), input.ID, p)
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			logrus.WithError(err).WithField("announcement_id", input.ID).Debug("rejected announcement patch")
			badRequest(c, "Invalid announcement fields")
			return
		}
		fail(c, "UpdateAnnouncement", "Failed to update announcement", err)
		return
	}
	c.JSON(http.StatusOK, toAnnouncementResponse(*announcement))
}

// Delete handles DELETE /api/announcements?id=.
func (ac *AnnouncementController) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		badRequest(c, "Announcement ID is required")
		return
	}

	if err := ac.store.DeleteAnnouncement(c.Request.Context(), id); err != nil {
		fail(c, "DeleteAnnouncement", "Failed to delete announcement", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted successfully"})
}
