package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/controllers"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/middleware"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
)

func RegisterAdminRoutes(router *gin.Engine, adminController *controllers.AdminController) {
	// Category listing is readable without a token so the login page can
	// show the taxonomy.
	router.GET("/admin/categories", adminController.ListCategories)

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
	{
		adminRoutes.POST("/categories", adminController.CreateCategory)
		adminRoutes.PUT("/categories/:id", adminController.UpdateCategory)
		adminRoutes.DELETE("/categories/:id", adminController.DeleteCategory)

		adminRoutes.GET("/search", adminController.Search)
		adminRoutes.GET("/dashboard", adminController.Dashboard)
		adminRoutes.DELETE("/articles/:id", adminController.DeleteArticle)

		adminRoutes.GET("/users", adminController.ListUsers)
		adminRoutes.GET("/users/:id", adminController.GetUser)
		adminRoutes.POST("/users", adminController.CreateUser)
		adminRoutes.PUT("/users/:id", adminController.UpdateUser)
		adminRoutes.DELETE("/users/:id", adminController.DeleteUser)
	}
}
