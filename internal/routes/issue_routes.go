package routes

import (
	"github.com/gin-gonic/gin"

	"community_portal/internal/controllers"
)

func IssueRoutes(api *gin.RouterGroup, s controllers.IssueStore) {
	ic := controllers.NewIssueController(s)
	issues := api.Group("/issues")
	{
		issues.GET("", ic.List)
		issues.POST("", ic.Create)
	}
}
