package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/controllers"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/middleware"
)

func RegisterCommentRoutes(router *gin.Engine, commentController *controllers.CommentController) {
	commentRoutes := router.Group("/comments")
	commentRoutes.Use(middleware.AuthMiddleware())
	{
		commentRoutes.POST("", commentController.CreateComment)
		commentRoutes.GET("/article/:articleId", commentController.CommentsForArticle)
	}
}
