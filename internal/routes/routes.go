package routes

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"community_portal/internal/controllers"
	"community_portal/internal/middleware"
	"community_portal/internal/views"
)

// Store is everything the HTTP surface reads and writes. *store.Store
// satisfies it.
type Store interface {
	controllers.AnnouncementStore
	controllers.EventStore
	controllers.IssueStore
	views.PageStore
}

type Options struct {
	Store          Store
	AccessLog      io.Writer
	AllowedOrigins []string
}

// SetupRouter wires middleware, the JSON API and the dashboard pages.
func SetupRouter(opts Options) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	if opts.AccessLog != nil {
		r.Use(middleware.AccessLog(opts.AccessLog, "/favicon.ico"))
	}
	r.Use(middleware.CORS(opts.AllowedOrigins))

	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	api := r.Group("/api")
	AnnouncementRoutes(api, opts.Store)
	EventRoutes(api, opts.Store)
	IssueRoutes(api, opts.Store)
	PageRoutes(r, opts.Store)

	return r, nil
}
