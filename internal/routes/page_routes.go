package routes

import (
	"github.com/gin-gonic/gin"

	"community_portal/internal/views"
)

func PageRoutes(r *gin.Engine, s views.PageStore) {
	p := views.NewPages(s)
	r.GET("/", p.Home)

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/announcements", p.Announcements)
		dashboard.GET("/events", p.Events)
		dashboard.GET("/issues", p.Issues)
		dashboard.GET("/marketplace", p.Marketplace)
		dashboard.GET("/emergency", p.Emergency)
		dashboard.GET("/forum", p.Forum)
	}
}
