package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/repository"
)

type CommentController struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
}

func NewCommentController(commentRepo repository.CommentRepository, articleRepo repository.ArticleRepository) *CommentController {
	return &CommentController{commentRepo: commentRepo, articleRepo: articleRepo}
}

type CreateCommentRequest struct {
	ArticleID uint   `json:"article_id" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// CreateComment godoc
// @Summary Comment on an approved article
// @Description Comments are only accepted while the article is approved; existing comments survive later status changes
// @Tags comment
// @Accept json
// @Produce json
// @Param comment body CreateCommentRequest true "Comment data"
// @Success 201 {object} map[string]interface{} "Comment created"
// @Failure 400 {object} map[string]interface{} "Cannot comment on a non-approved article"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /comments [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	userID, _ := callerIdentity(c)

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	article, err := cc.articleRepo.FindByID(req.ArticleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			articleNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create comment",
			"error":   err.Error(),
		})
		return
	}

	if article.Status != models.StatusApproved {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Cannot comment on a non-approved article",
			"error":   "The article is not published",
		})
		return
	}

	comment := models.Comment{
		ArticleID: req.ArticleID,
		UserID:    userID,
		Text:      req.Text,
	}

	if err := cc.commentRepo.Create(&comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create comment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Comment created successfully",
		"data":    comment,
	})
}

// CommentsForArticle godoc
// @Summary List comments on an article
// @Tags comment
// @Produce json
// @Param articleId path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Comments retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /comments/article/{articleId} [get]
func (cc *CommentController) CommentsForArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("articleId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid article ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := cc.articleRepo.FindByID(uint(articleID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			articleNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve comments",
			"error":   err.Error(),
		})
		return
	}

	comments, err := cc.commentRepo.FindByArticleID(uint(articleID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve comments",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comments retrieved successfully",
		"data":    comments,
	})
}
