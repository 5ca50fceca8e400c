package views

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community_portal/internal/models"
)

type stubPageStore struct {
	announcements []models.Announcement
	events        []models.Event
	issues        []models.Issue
	items         []models.MarketplaceItem
	contacts      []models.EmergencyContact
	posts         []models.ForumPost
	err           error
}

func (s *stubPageStore) PublishedAnnouncements(context.Context) ([]models.Announcement, error) {
	return s.announcements, s.err
}

func (s *stubPageStore) UpcomingEvents(context.Context) ([]models.Event, error) {
	return s.events, s.err
}

func (s *stubPageStore) IssueBoard(context.Context) ([]models.Issue, error) {
	return s.issues, s.err
}

func (s *stubPageStore) MarketplaceListings(context.Context) ([]models.MarketplaceItem, error) {
	return s.items, s.err
}

func (s *stubPageStore) ActiveEmergencyContacts(context.Context) ([]models.EmergencyContact, error) {
	return s.contacts, s.err
}

func (s *stubPageStore) ForumThreads(context.Context) ([]models.ForumPost, error) {
	return s.posts, s.err
}

func pageRouter(t *testing.T, s PageStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	p := NewPages(s)
	r.GET("/", p.Home)
	r.GET("/dashboard/announcements", p.Announcements)
	r.GET("/dashboard/events", p.Events)
	r.GET("/dashboard/issues", p.Issues)
	r.GET("/dashboard/marketplace", p.Marketplace)
	r.GET("/dashboard/emergency", p.Emergency)
	r.GET("/dashboard/forum", p.Forum)
	return r
}

func get(t *testing.T, r http.Handler, path string) (int, string) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w.Code, w.Body.String()
}

var admin = &models.User{Base: models.Base{ID: "u-1"}, Name: "Admin User", Role: models.RoleAdmin}

func TestHomePage(t *testing.T) {
	code, body := get(t, pageRouter(t, &stubPageStore{}), "/")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 6, strings.Count(body, `class="feature-card`))
	assert.Contains(t, body, `href="/" class="flex items-center px-4 py-2 rounded-xl text-sm font-medium bg-green-600 text-white" aria-current="page"`)
}

func TestAnnouncementsPage(t *testing.T) {
	until := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	s := &stubPageStore{announcements: []models.Announcement{
		{Title: "Water Supply Interruption", Content: "Maintenance work.", Category: "Utilities", Priority: models.PriorityUrgent, Author: admin, ValidUntil: &until},
		{Title: "Library Hours", Content: "Extended hours.", Category: "Education", Priority: models.PriorityLow, Author: admin},
	}}

	code, body := get(t, pageRouter(t, s), "/dashboard/announcements")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "2 active announcements")
	assert.Contains(t, body, "Water Supply Interruption")
	assert.Contains(t, body, "URGENT")
	assert.Contains(t, body, "bg-red-100 text-red-800 border-red-200")
	assert.Contains(t, body, "Valid until Dec 31, 2026")
	assert.Contains(t, body, "by Admin User")
	assert.Contains(t, body, `aria-current="page"`)
}

func TestEventsPage(t *testing.T) {
	maxAttendees := 200
	s := &stubPageStore{events: []models.Event{{
		Base:          models.Base{ID: "e-0"},
		Title:         "Cultural Festival",
		StartDate:     time.Date(2026, 7, 4, 16, 30, 0, 0, time.UTC),
		Category:      "Cultural",
		MaxAttendees:  &maxAttendees,
		Organizer:     &models.User{Name: "Cultural Society"},
		AttendeeCount: 1,
	}}}

	code, body := get(t, pageRouter(t, s), "/dashboard/events")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "1 upcoming events")
	assert.Contains(t, body, ">CS<")
	assert.Contains(t, body, "Jul 4, 2026")
	assert.Contains(t, body, "4:30 PM")
	assert.Contains(t, body, "1 attendee of 200")
	assert.Contains(t, body, defaultEventImages['0'%len(defaultEventImages)])
}

func TestIssuesPageCounters(t *testing.T) {
	s := &stubPageStore{issues: []models.Issue{
		{Title: "Pothole", Status: models.IssueReported, Priority: models.PriorityHigh, Category: "road_damage", Reporter: admin},
		{Title: "Streetlight", Status: models.IssueReported, Priority: models.PriorityLow, Reporter: admin},
		{Title: "Garbage", Status: models.IssueInProgress, Priority: models.PriorityMedium, Reporter: admin},
		{Title: "Drain", Status: models.IssueClosed, Priority: models.PriorityMedium, Reporter: admin},
	}}

	code, body := get(t, pageRouter(t, s), "/dashboard/issues")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `data-count="total">4<`)
	assert.Contains(t, body, `data-count="reported">2<`)
	assert.Contains(t, body, `data-count="in_progress">1<`)
	assert.Contains(t, body, `data-count="resolved">0<`)
	assert.Contains(t, body, "IN PROGRESS")
	assert.Contains(t, body, "road damage")
}

func TestMarketplacePage(t *testing.T) {
	price := 15000.0
	cond := models.ConditionGood
	s := &stubPageStore{items: []models.MarketplaceItem{
		{Title: "Bicycle", Price: &price, Condition: &cond, Category: "vehicles", ContactInfo: "98765", Seller: admin},
		{Title: "Free books", Category: "books", ContactInfo: "12345", Seller: admin},
	}}

	code, body := get(t, pageRouter(t, s), "/dashboard/marketplace")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Showing 2 items")
	assert.Contains(t, body, "15,000")
	assert.Equal(t, 1, strings.Count(body, `class="price`))
	assert.Equal(t, 1, strings.Count(body, `class="condition`))
	assert.Contains(t, body, "GOOD")
}

func TestEmergencyPage(t *testing.T) {
	s := &stubPageStore{contacts: []models.EmergencyContact{
		{Name: "City Police", Service: "Police", PhoneNumber: "100", Category: models.EmergencyPolice, IsVerified: true},
		{Name: "Power Office", Service: "Electricity", PhoneNumber: "1912", Category: models.EmergencyUtility},
	}}

	code, body := get(t, pageRouter(t, s), "/dashboard/emergency")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 4, strings.Count(body, `class="quick-number`))
	assert.Contains(t, body, "icon-shield text-blue-600")
	assert.Contains(t, body, "Unverified")
	assert.Contains(t, body, "Police")
	assert.Contains(t, body, `href="tel:1912"`)
}

func TestForumPageSplitsPinned(t *testing.T) {
	s := &stubPageStore{posts: []models.ForumPost{
		{Title: "Welcome", IsPinned: true, Upvotes: 10, Downvotes: 1, CommentCount: 1, Author: admin},
		{Title: "Parking", Upvotes: 1, Downvotes: 4, CommentCount: 3, Author: admin},
	}}

	code, body := get(t, pageRouter(t, s), "/dashboard/forum")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Pinned Posts")
	assert.Contains(t, body, "Recent Discussions")
	// html/template escapes "+" in text nodes
	assert.Contains(t, body, "&#43;9 net votes")
	assert.Contains(t, body, "-3 net votes")
	assert.Contains(t, body, "1 comment<")
	assert.Contains(t, body, "3 comments")
	assert.Less(t, strings.Index(body, "Welcome"), strings.Index(body, "Parking"))
}

func TestPagesDegradeToEmptyOnQueryFailure(t *testing.T) {
	r := pageRouter(t, &stubPageStore{err: errors.New("database unavailable")})

	empties := map[string]string{
		"/dashboard/announcements": "No announcements yet",
		"/dashboard/events":        "No upcoming events",
		"/dashboard/issues":        "No issues reported",
		"/dashboard/marketplace":   "No items listed",
		"/dashboard/emergency":     "No emergency contacts available",
		"/dashboard/forum":         "No discussions yet",
	}
	for path, msg := range empties {
		code, body := get(t, r, path)
		assert.Equal(t, http.StatusOK, code, path)
		assert.Contains(t, body, msg, path)
	}
}
