package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/controllers"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/middleware"
)

func RegisterProfileRoutes(router *gin.Engine, profileController *controllers.ProfileController) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware())
	{
		profileRoutes.GET("", profileController.GetProfile)
		profileRoutes.PUT("", profileController.UpdateProfile)
		profileRoutes.GET("/dashboard", profileController.Dashboard)
	}
}
