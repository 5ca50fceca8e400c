package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community_portal/internal/models"
	"community_portal/internal/store"
)

type stubAnnouncementStore struct {
	listFilter store.AnnouncementFilter
	list       []models.Announcement
	listErr    error

	created   []*models.Announcement
	createErr error

	updatedID    string
	updatedPatch store.AnnouncementPatch
	updateResult *models.Announcement
	updateErr    error

	deleted   []string
	deleteErr error
}

func (s *stubAnnouncementStore) ListAnnouncements(ctx context.Context, f store.AnnouncementFilter) ([]models.Announcement, error) {
	s.listFilter = f
	return s.list, s.listErr
}

func (s *stubAnnouncementStore) CreateAnnouncement(ctx context.Context, a *models.Announcement) error {
	if s.createErr != nil {
		return s.createErr
	}
	a.ID = "a-1"
	a.Author = &models.User{Base: models.Base{ID: a.AuthorID}, Name: "Admin User", Role: models.RoleAdmin}
	s.created = append(s.created, a)
	return nil
}

func (s *stubAnnouncementStore) UpdateAnnouncement(ctx context.Context, id string, p store.AnnouncementPatch) (*models.Announcement, error) {
	s.updatedID = id
	s.updatedPatch = p
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.updateResult, nil
}

func (s *stubAnnouncementStore) DeleteAnnouncement(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return s.deleteErr
}

func announcementRouter(s AnnouncementStore) *gin.Engine {
	r := gin.New()
	ac := NewAnnouncementController(s)
	r.GET("/api/announcements", ac.List)
	r.POST("/api/announcements", ac.Create)
	r.PUT("/api/announcements", ac.Update)
	r.DELETE("/api/announcements", ac.Delete)
	return r
}

func TestCreateAnnouncementDefaults(t *testing.T) {
	s := &stubAnnouncementStore{}
	w := perform(t, announcementRouter(s), http.MethodPost, "/api/announcements", map[string]interface{}{
		"title":    "Water outage",
		"content":  "Supply suspended from 10 AM to 4 PM.",
		"category": "Utilities",
		"authorId": "user-1",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[AnnouncementResponse](t, w)
	assert.Equal(t, "a-1", resp.ID)
	assert.Equal(t, "Water outage", resp.Title)
	assert.Equal(t, "Supply suspended from 10 AM to 4 PM.", resp.Content)
	assert.Equal(t, "Utilities", resp.Category)
	assert.Equal(t, "user-1", resp.AuthorID)
	assert.Equal(t, models.PriorityMedium, resp.Priority)
	assert.False(t, resp.IsPublished)
	assert.Nil(t, resp.ValidUntil)
	require.NotNil(t, resp.Author)
	assert.Equal(t, AuthorSummary{ID: "user-1", Name: "Admin User", Role: models.RoleAdmin}, *resp.Author)
}

func TestCreateAnnouncementEchoesOptionalFields(t *testing.T) {
	s := &stubAnnouncementStore{}
	w := perform(t, announcementRouter(s), http.MethodPost, "/api/announcements", map[string]interface{}{
		"title":       "Road closure",
		"content":     "Main road closed.",
		"category":    "Traffic",
		"priority":    "URGENT",
		"authorId":    "user-1",
		"validUntil":  "2026-11-01",
		"isPublished": true,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[AnnouncementResponse](t, w)
	assert.Equal(t, models.PriorityUrgent, resp.Priority)
	assert.True(t, resp.IsPublished)
	require.NotNil(t, resp.ValidUntil)
	assert.True(t, resp.ValidUntil.Equal(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCreateAnnouncementBlankValidUntil(t *testing.T) {
	s := &stubAnnouncementStore{}
	w := perform(t, announcementRouter(s), http.MethodPost, "/api/announcements", map[string]interface{}{
		"title": "t", "content": "c", "category": "g", "authorId": "u", "validUntil": "",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Len(t, s.created, 1)
	assert.Nil(t, s.created[0].ValidUntil)
}

func TestUpdateAnnouncementBlankValidUntilClears(t *testing.T) {
	s := &stubAnnouncementStore{updateResult: &models.Announcement{Base: models.Base{ID: "a-1"}}}
	w := perform(t, announcementRouter(s), http.MethodPut, "/api/announcements", `{"id":"a-1","validUntil":""}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, s.updatedPatch.ValidUntil.Set)
	assert.True(t, s.updatedPatch.ValidUntil.Null)
}

func TestCreateAnnouncementMissingFields(t *testing.T) {
	full := map[string]interface{}{
		"title": "t", "content": "c", "category": "g", "authorId": "u",
	}
	for _, missing := range []string{"title", "content", "category", "authorId"} {
		t.Run(missing, func(t *testing.T) {
			body := map[string]interface{}{}
			for k, v := range full {
				if k != missing {
					body[k] = v
				}
			}
			s := &stubAnnouncementStore{}
			w := perform(t, announcementRouter(s), http.MethodPost, "/api/announcements", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, map[string]string{"error": "Missing required fields"}, decode[map[string]string](t, w))
			assert.Empty(t, s.created)
		})
	}
}

func TestCreateAnnouncementInvalidInput(t *testing.T) {
	s := &stubAnnouncementStore{}
	r := announcementRouter(s)

	w := perform(t, r, http.MethodPost, "/api/announcements", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(t, r, http.MethodPost, "/api/announcements", map[string]interface{}{
		"title": "t", "content": "c", "category": "g", "authorId": "u", "priority": "critical",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, s.created)
}

func TestCreateAnnouncementStoreFailure(t *testing.T) {
	s := &stubAnnouncementStore{createErr: errors.New("insert violates foreign key constraint")}
	w := perform(t, announcementRouter(s), http.MethodPost, "/api/announcements", map[string]interface{}{
		"title": "t", "content": "c", "category": "g", "authorId": "ghost",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]string{"error": "Failed to create announcement"}, decode[map[string]string](t, w))
}

func TestListAnnouncementsQueryParams(t *testing.T) {
	s := &stubAnnouncementStore{list: []models.Announcement{
		{Base: models.Base{ID: "a-1"}, Title: "Water", Priority: models.PriorityHigh, IsPublished: true, AuthorID: "u"},
	}}
	r := announcementRouter(s)

	w := perform(t, r, http.MethodGet, "/api/announcements?category=Utilities&priority=high&search=Water", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, store.AnnouncementFilter{
		Category: "Utilities", Priority: models.PriorityHigh, Search: "Water", Published: true,
	}, s.listFilter)
	list := decode[[]AnnouncementResponse](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "a-1", list[0].ID)

	perform(t, r, http.MethodGet, "/api/announcements?published=false", nil)
	assert.False(t, s.listFilter.Published)

	perform(t, r, http.MethodGet, "/api/announcements?published=no", nil)
	assert.True(t, s.listFilter.Published, "only the literal \"false\" disables the published filter")
}

func TestListAnnouncementsEmptyIsArray(t *testing.T) {
	w := perform(t, announcementRouter(&stubAnnouncementStore{}), http.MethodGet, "/api/announcements", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListAnnouncementsFailure(t *testing.T) {
	s := &stubAnnouncementStore{listErr: errors.New("connection refused")}
	w := perform(t, announcementRouter(s), http.MethodGet, "/api/announcements", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]string{"error": "Failed to fetch announcements"}, decode[map[string]string](t, w))
}

func TestUpdateAnnouncementBuildsPatch(t *testing.T) {
	s := &stubAnnouncementStore{updateResult: &models.Announcement{Base: models.Base{ID: "a-1"}, Title: "New title"}}
	w := perform(t, announcementRouter(s), http.MethodPut, "/api/announcements",
		`{"id":"a-1","title":"New title","priority":"high","validUntil":null}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "a-1", s.updatedID)

	p := s.updatedPatch
	assert.True(t, p.Title.HasValue())
	assert.Equal(t, "New title", p.Title.Value)
	assert.True(t, p.Priority.HasValue())
	assert.Equal(t, models.PriorityHigh, p.Priority.Value)
	assert.True(t, p.ValidUntil.Set)
	assert.True(t, p.ValidUntil.Null)
	assert.False(t, p.Content.Set)
	assert.False(t, p.Category.Set)
	assert.False(t, p.IsPublished.Set)
}

func TestUpdateAnnouncementRequiresID(t *testing.T) {
	s := &stubAnnouncementStore{}
	w := perform(t, announcementRouter(s), http.MethodPut, "/api/announcements", `{"title":"x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]string{"error": "Announcement ID is required"}, decode[map[string]string](t, w))
	assert.Empty(t, s.updatedID)
}

func TestUpdateAnnouncementMissingRecordIsGenericFailure(t *testing.T) {
	s := &stubAnnouncementStore{updateErr: fmt.Errorf("announcement nope: %w", store.ErrNotFound)}
	w := perform(t, announcementRouter(s), http.MethodPut, "/api/announcements", `{"id":"nope"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]string{"error": "Failed to update announcement"}, decode[map[string]string](t, w))
}

func TestUpdateAnnouncementValidationFailure(t *testing.T) {
	s := &stubAnnouncementStore{updateErr: fmt.Errorf("%w: title cannot be cleared", store.ErrValidation)}
	w := perform(t, announcementRouter(s), http.MethodPut, "/api/announcements", `{"id":"a-1","title":null}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAnnouncement(t *testing.T) {
	s := &stubAnnouncementStore{}
	r := announcementRouter(s)

	w := perform(t, r, http.MethodDelete, "/api/announcements?id=a-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"message": "Announcement deleted successfully"}, decode[map[string]string](t, w))
	assert.Equal(t, []string{"a-1"}, s.deleted)

	w = perform(t, r, http.MethodDelete, "/api/announcements", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.deleteErr = store.ErrNotFound
	w = perform(t, r, http.MethodDelete, "/api/announcements?id=gone", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]string{"error": "Failed to delete announcement"}, decode[map[string]string](t, w))
}
