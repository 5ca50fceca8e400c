package routes

import (
	"github.com/gin-gonic/gin"

	"community_portal/internal/controllers"
)

func EventRoutes(api *gin.RouterGroup, s controllers.EventStore) {
	ec := controllers.NewEventController(s)
	events := api.Group("/events")
	{
		events.GET("", ec.List)
		events.POST("", ec.Create)
	}
}
