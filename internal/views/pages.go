package views

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"community_portal/internal/models"
)

// PageStore is the read side the dashboard pages need. Each method is one
// fixed query.
type PageStore interface {
	PublishedAnnouncements(ctx context.Context) ([]models.Announcement, error)
	UpcomingEvents(ctx context.Context) ([]models.Event, error)
	IssueBoard(ctx context.Context) ([]models.Issue, error)
	MarketplaceListings(ctx context.Context) ([]models.MarketplaceItem, error)
	ActiveEmergencyContacts(ctx context.Context) ([]models.EmergencyContact, error)
	ForumThreads(ctx context.Context) ([]models.ForumPost, error)
}

type Pages struct {
	store PageStore
}

func NewPages(s PageStore) *Pages {
	return &Pages{store: s}
}

// Layout is the data every template receives for the shell.
type Layout struct {
	Title string
	Nav   []NavItem
}

func layout(c *gin.Context, title string) Layout {
	return Layout{Title: title, Nav: Navigation(c.Request.URL.Path)}
}

// queryFailed logs a failed page query. The page still renders, with an
// empty list.
func queryFailed(c *gin.Context, page string, err error) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"page": page,
		"path": c.Request.URL.Path,
	}).Error("page query failed")
}

func authorName(u *models.User) string {
	if u == nil {
		return "Unknown"
	}
	return u.Name
}

type Feature struct {
	Title       string
	Description string
	Icon        string
	Href        string
}

var features = [...]Feature{
	{"Community Announcements", "Stay updated with official notices, community updates, and important announcements from local authorities.", "megaphone", "/dashboard/announcements"},
	{"Local Events", "Discover and join cultural events, festivals, workshops, and community gatherings in Saharanpur.", "calendar", "/dashboard/events"},
	{"Report Issues", "Report infrastructure problems, safety concerns, and community issues for prompt resolution.", "alert-circle", "/dashboard/issues"},
	{"Local Marketplace", "Buy and sell goods, find local services, and connect with vendors in your neighborhood.", "shopping-cart", "/dashboard/marketplace"},
	{"Emergency Contacts", "Quick access to verified emergency services, hospitals, police stations, and utility services.", "phone", "/dashboard/emergency"},
	{"Community Forum", "Engage in discussions, share ideas, and connect with fellow residents in your area.", "message-square", "/dashboard/forum"},
}

type HomePage struct {
	Layout
	Features []Feature
}

// Home renders the static landing page.
func (p *Pages) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", HomePage{
		Layout:   layout(c, "Community Portal"),
		Features: features[:],
	})
}

type AnnouncementCard struct {
	models.Announcement
	AuthorName string
	Icon       Icon
	Badge      Style
}

type AnnouncementsPage struct {
	Layout
	Cards []AnnouncementCard
}

func (p *Pages) Announcements(c *gin.Context) {
	rows, err := p.store.PublishedAnnouncements(c.Request.Context())
	if err != nil {
		queryFailed(c, "announcements", err)
		rows = nil
	}

	data := AnnouncementsPage{Layout: layout(c, "Announcements")}
	for _, a := range rows {
		data.Cards = append(data.Cards, AnnouncementCard{
			Announcement: a,
			AuthorName:   authorName(a.Author),
			Icon:         PriorityIcon(a.Priority),
			Badge:        PriorityBadge(a.Priority),
		})
	}
	c.HTML(http.StatusOK, "announcements.html", data)
}

type EventCard struct {
	models.Event
	OrganizerName string
	Initials      string
	AvatarColor   string
	Image         string
}

type EventsPage struct {
	Layout
	Cards []EventCard
}

func (p *Pages) Events(c *gin.Context) {
	rows, err := p.store.UpcomingEvents(c.Request.Context())
	if err != nil {
		queryFailed(c, "events", err)
		rows = nil
	}

	data := EventsPage{Layout: layout(c, "Events")}
	for _, e := range rows {
		name := authorName(e.Organizer)
		data.Cards = append(data.Cards, EventCard{
			Event:         e,
			OrganizerName: name,
			Initials:      Initials(name),
			AvatarColor:   AvatarColor(name),
			Image:         EventImage(e),
		})
	}
	c.HTML(http.StatusOK, "events.html", data)
}

type IssueCard struct {
	models.Issue
	ReporterName string
	Icon         Icon
	StatusBadge  Style
	PriorityTag  Style
}

// IssueCounts backs the summary tiles above the issue grid.
type IssueCounts struct {
	Total      int
	Reported   int
	InProgress int
	Resolved   int
}

type IssuesPage struct {
	Layout
	Counts IssueCounts
	Cards  []IssueCard
}

func (p *Pages) Issues(c *gin.Context) {
	rows, err := p.store.IssueBoard(c.Request.Context())
	if err != nil {
		queryFailed(c, "issues", err)
		rows = nil
	}

	data := IssuesPage{Layout: layout(c, "Issues")}
	data.Counts.Total = len(rows)
	for _, i := range rows {
		switch i.Status {
		case models.IssueReported:
			data.Counts.Reported++
		case models.IssueInProgress:
			data.Counts.InProgress++
		case models.IssueResolved:
			data.Counts.Resolved++
		}
		data.Cards = append(data.Cards, IssueCard{
			Issue:        i,
			ReporterName: authorName(i.Reporter),
			Icon:         StatusIcon(i.Status),
			StatusBadge:  StatusBadge(i.Status),
			PriorityTag:  PriorityBadge(i.Priority),
		})
	}
	c.HTML(http.StatusOK, "issues.html", data)
}

type MarketplaceCard struct {
	models.MarketplaceItem
	SellerName   string
	Price        string
	Condition    Style
	HasCondition bool
}

type MarketplacePage struct {
	Layout
	Cards []MarketplaceCard
}

func (p *Pages) Marketplace(c *gin.Context) {
	rows, err := p.store.MarketplaceListings(c.Request.Context())
	if err != nil {
		queryFailed(c, "marketplace", err)
		rows = nil
	}

	data := MarketplacePage{Layout: layout(c, "Marketplace")}
	for _, item := range rows {
		card := MarketplaceCard{
			MarketplaceItem: item,
			SellerName:      authorName(item.Seller),
		}
		if item.Price != nil && *item.Price != 0 {
			card.Price = FormatRupees(*item.Price)
		}
		card.Condition, card.HasCondition = ConditionBadge(item.Condition)
		data.Cards = append(data.Cards, card)
	}
	c.HTML(http.StatusOK, "marketplace.html", data)
}

type EmergencyCard struct {
	models.EmergencyContact
	Icon  Icon
	Color string
}

// QuickNumber is a fixed national helpline shown above the directory.
type QuickNumber struct {
	Name   string
	Number string
	Color  string
}

var quickNumbers = [...]QuickNumber{
	{"Police Emergency", "100", "bg-blue-600"},
	{"Fire Brigade", "101", "bg-red-600"},
	{"Ambulance", "108", "bg-pink-600"},
	{"Women Helpline", "1091", "bg-purple-600"},
}

type EmergencyPage struct {
	Layout
	QuickNumbers []QuickNumber
	Cards        []EmergencyCard
}

func (p *Pages) Emergency(c *gin.Context) {
	rows, err := p.store.ActiveEmergencyContacts(c.Request.Context())
	if err != nil {
		queryFailed(c, "emergency", err)
		rows = nil
	}

	data := EmergencyPage{Layout: layout(c, "Emergency Contacts"), QuickNumbers: quickNumbers[:]}
	for _, ec := range rows {
		data.Cards = append(data.Cards, EmergencyCard{
			EmergencyContact: ec,
			Icon:             EmergencyIcon(ec.Category),
			Color:            EmergencyColor(ec.Category),
		})
	}
	c.HTML(http.StatusOK, "emergency.html", data)
}

type ForumCard struct {
	models.ForumPost
	AuthorName string
	Net        int
	NetLabel   string
	Tone       string
}

var forumCategories = [...]string{
	"General Discussion", "Local News", "Events", "Infrastructure", "Safety",
	"Environment", "Business", "Culture", "Sports", "Education",
}

type ForumPage struct {
	Layout
	Categories []string
	Pinned     []ForumCard
	Regular    []ForumCard
}

func (p *Pages) Forum(c *gin.Context) {
	rows, err := p.store.ForumThreads(c.Request.Context())
	if err != nil {
		queryFailed(c, "forum", err)
		rows = nil
	}

	data := ForumPage{Layout: layout(c, "Community Forum"), Categories: forumCategories[:]}
	for _, post := range rows {
		net := post.NetVotes()
		card := ForumCard{
			ForumPost:  post,
			AuthorName: authorName(post.Author),
			Net:        net,
			NetLabel:   NetVotesLabel(net),
			Tone:       VoteTone(net),
		}
		if post.IsPinned {
			data.Pinned = append(data.Pinned, card)
		} else {
			data.Regular = append(data.Regular, card)
		}
	}
	c.HTML(http.StatusOK, "forum.html", data)
}
