package routes

import (
	"github.com/gin-gonic/gin"

	"community_portal/internal/controllers"
)

func AnnouncementRoutes(api *gin.RouterGroup, s controllers.AnnouncementStore) {
	ac := controllers.NewAnnouncementController(s)
	announcements := api.Group("/announcements")
	{
		announcements.GET("", ac.List)
		announcements.POST("", ac.Create)
		announcements.PUT("", ac.Update)
		announcements.DELETE("", ac.Delete)
	}
}
