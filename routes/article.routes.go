package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/controllers"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/middleware"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
)

func RegisterArticleRoutes(router *gin.Engine, articleController *controllers.ArticleController) {
	articleRoutes := router.Group("/articles")
	articleRoutes.Use(middleware.AuthMiddleware())
	{
		articleRoutes.GET("", articleController.BrowseArticles)
		articleRoutes.GET("/mine", middleware.RequireRoles(models.RoleContributor), articleController.MyArticles)
		articleRoutes.GET("/pending", middleware.RequireRoles(models.RoleAdmin), articleController.PendingArticles)
		articleRoutes.GET("/:id", articleController.GetArticleByID)
		articleRoutes.POST("", middleware.RequireRoles(models.RoleContributor), articleController.CreateArticle)
		articleRoutes.PUT("/:id", middleware.RequireRoles(models.RoleContributor), articleController.UpdateArticle)
		articleRoutes.DELETE("/:id", middleware.RequireRoles(models.RoleContributor), articleController.DeleteArticle)
		articleRoutes.POST("/:id/view", articleController.RecordView)
		articleRoutes.POST("/:id/approve", middleware.RequireRoles(models.RoleAdmin), articleController.ApproveArticle)
		articleRoutes.POST("/:id/reject", middleware.RequireRoles(models.RoleAdmin), articleController.RejectArticle)
	}
}
