package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/controllers"
)

func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController) {
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/login", authController.Login)
	}
}
