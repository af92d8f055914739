package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/auth"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/lifecycle"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/repository"
)

type ArticleController struct {
	articleRepo  repository.ArticleRepository
	categoryRepo repository.CategoryRepository
}

func NewArticleController(articleRepo repository.ArticleRepository, categoryRepo repository.CategoryRepository) *ArticleController {
	return &ArticleController{articleRepo: articleRepo, categoryRepo: categoryRepo}
}

func callerIdentity(c *gin.Context) (uint, models.Role) {
	userID := c.GetUint("user_id")
	role, _ := c.Get("role")
	r, _ := role.(models.Role)
	return userID, r
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid article ID",
			"error":   "ID must be a valid positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func parseQueryID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

// articleNotFound answers both a truly missing id and an article hidden from
// the caller, with an identical body, so drafts never leak their existence.
func articleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"status":  "error",
		"message": "Article not found",
		"error":   "No article exists with the provided ID",
	})
}

func userNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"status":  "error",
		"message": "User not found",
		"error":   "No user exists with the provided ID",
	})
}

type CreateArticleRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Content     string `json:"content"`
	DriveLink   string `json:"drive_link"`
	CategoryID  uint   `json:"category_id" binding:"required"`
}

type UpdateArticleRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	DriveLink   *string `json:"drive_link"`
	CategoryID  *uint   `json:"category_id"`
}

type RejectArticleRequest struct {
	Reason string `json:"reason"`
}

// CreateArticle godoc
// @Summary Submit a new article
// @Description Create an article in pending status, awaiting moderation
// @Tags article
// @Accept json
// @Produce json
// @Param article body CreateArticleRequest true "Article data"
// @Success 201 {object} map[string]interface{} "Article submitted for review"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create article"
// @Router /articles [post]
func (ac *ArticleController) CreateArticle(c *gin.Context) {
	userID, role := callerIdentity(c)
	if !auth.Allow(role, auth.OpCreateArticle, false, "") {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Insufficient permissions",
			"error":   "Only contributors can submit articles",
		})
		return
	}

	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	exists, err := ac.categoryRepo.Exists(req.CategoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create article",
			"error":   err.Error(),
		})
		return
	}
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid category",
			"error":   "No category exists with the provided ID",
		})
		return
	}

	article := models.Article{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		DriveLink:   req.DriveLink,
		CategoryID:  req.CategoryID,
		AuthorID:    userID,
		Status:      models.StatusPending,
	}

	if err := ac.articleRepo.Create(&article); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Article submitted for review",
		"data":    article,
	})
}

// UpdateArticle godoc
// @Summary Update an own article
// @Description Update an article; editing an approved article resubmits it for review
// @Tags article
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param article body UpdateArticleRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Article updated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id} [put]
func (ac *ArticleController) UpdateArticle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, role := callerIdentity(c)

	article, err := ac.articleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			articleNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update article",
			"error":   err.Error(),
		})
		return
	}

	if !auth.Allow(role, auth.OpEditArticle, article.AuthorID == userID, article.Status) {
		// Admins can see the article but still may not edit it; callers who
		// cannot see it get the opaque not-found.
		if auth.CanReadArticle(role, article.AuthorID == userID, article.Status) {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Insufficient permissions",
				"error":   "Only the author can edit this article",
			})
			return
		}
		articleNotFound(c)
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.CategoryID != nil {
		exists, err := ac.categoryRepo.Exists(*req.CategoryID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update article",
				"error":   err.Error(),
			})
			return
		}
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid category",
				"error":   "No category exists with the provided ID",
			})
			return
		}
		article.CategoryID = *req.CategoryID
	}
	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Description != nil {
		article.Description = *req.Description
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.DriveLink != nil {
		article.DriveLink = *req.DriveLink
	}

	// Any edit puts the article back in the review queue.
	lifecycle.Resubmit(article, time.Now().UTC())

	if err := ac.articleRepo.Update(article); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article updated successfully",
		"data":    article,
	})
}

// DeleteArticle godoc
// @Summary Delete an own article
// @Tags article
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article deleted"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id} [delete]
func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, role := callerIdentity(c)

	article, err := ac.articleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			articleNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete article",
			"error":   err.Error(),
		})
		return
	}

	if !auth.Allow(role, auth.OpDeleteArticle, article.AuthorID == userID, article.Status) {
		if auth.CanReadArticle(role, article.AuthorID == userID, article.Status) {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Insufficient permissions",
				"error":   "Only the author can delete this article",
			})
			return
		}
		articleNotFound(c)
		return
	}

	if err := ac.articleRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article deleted successfully",
		"data":    nil,
	})
}

// MyArticles godoc
// @Summary List own articles
// @Description All articles authored by the caller regardless of status
// @Tags article
// @Produce json
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve articles"
// @Router /articles/mine [get]
func (ac *ArticleController) MyArticles(c *gin.Context) {
	userID, _ := callerIdentity(c)

	articles, err := ac.articleRepo.FindByAuthor(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data":    articles,
	})
}

// BrowseArticles godoc
// @Summary Browse or search approved articles
// @Description Approved articles filtered by text and category, sorted by recency or views
// @Tags article
// @Produce json
// @Param q query string false "Text filter over title and description"
// @Param category_id query int false "Category filter"
// @Param sort query string false "Sort order: recent or views" default(recent)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid pagination parameters"
// @Router /articles [get]
func (ac *ArticleController) BrowseArticles(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid pagination parameters",
			"error":   "page must be a positive integer",
		})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid pagination parameters",
			"error":   "page_size must be a positive integer",
		})
		return
	}

	var categoryID uint
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid category ID",
				"error":   "category_id must be a valid positive integer",
			})
			return
		}
		categoryID = uint(parsed)
	}

	articles, err := ac.articleRepo.Browse(repository.BrowseOptions{
		Query:      c.Query("q"),
		CategoryID: categoryID,
		Sort:       c.DefaultQuery("sort", "recent"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data":    articles,
	})
}

// GetArticleByID godoc
// @Summary Get an article by ID
// @Description Approved articles are visible to everyone; drafts only to their author or an admin
// @Tags article
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid article ID"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id} [get]
func (ac *ArticleController) GetArticleByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, role := callerIdentity(c)

	article, err := ac.articleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			articleNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve article",
			"error":   err.Error(),
		})
		return
	}

	if !auth.Allow(role, auth.OpReadArticle, article.AuthorID == userID, article.Status) {
		articleNotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article retrieved successfully",
		"data":    article,
	})
}

// RecordView godoc
// @Summary Record a view of an article
// @Description Appends a view event and increments the article view counter
// @Tags article
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "View recorded"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id}/view [post]
func (ac *ArticleController) RecordView(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, role := callerIdentity(c)

	article, err := ac.articleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			articleNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to record view",
			"error":   err.Error(),
		})
		return
	}

	if !auth.Allow(role, auth.OpRecordView, article.AuthorID == userID, article.Status) {
		articleNotFound(c)
		return
	}

	actorID := &userID
	if userID == 0 {
		actorID = nil // virtual admin has no user row
	}

	if err := ac.articleRepo.RecordView(id, actorID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to record view",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "View recorded",
		"data":    nil,
	})
}

// ApproveArticle godoc
// @Summary Approve an article
// @Description Moves an article to approved and stamps the approval time
// @Tags moderation
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article approved"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id}/approve [post]
func (ac *ArticleController) ApproveArticle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	_, role := callerIdentity(c)
	if !auth.Allow(role, auth.OpApproveArticle, false, "") {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Insufficient permissions",
			"error":   "Only admins can approve articles",
		})
		return
	}

	article, err := ac.articleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			articleNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to approve article",
			"error":   err.Error(),
		})
		return
	}

	lifecycle.Approve(article, time.Now().UTC())

	if err := ac.articleRepo.Update(article); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to approve article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article approved",
		"data":    article,
	})
}

// RejectArticle godoc
// @Summary Reject an article with a reason
// @Tags moderation
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param rejection body RejectArticleRequest true "Rejection reason"
// @Success 200 {object} map[string]interface{} "Article rejected"
// @Failure 400 {object} map[string]interface{} "Rejection reason is required"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id}/reject [post]
func (ac *ArticleController) RejectArticle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	_, role := callerIdentity(c)
	if !auth.Allow(role, auth.OpRejectArticle, false, "") {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Insufficient permissions",
			"error":   "Only admins can reject articles",
		})
		return
	}

	var req RejectArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	article, err := ac.articleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			articleNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reject article",
			"error":   err.Error(),
		})
		return
	}

	if err := lifecycle.Reject(article, req.Reason, time.Now().UTC()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Rejection reason is required",
			"error":   err.Error(),
		})
		return
	}

	if err := ac.articleRepo.Update(article); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reject article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article rejected",
		"data":    article,
	})
}

// PendingArticles godoc
// @Summary List articles awaiting moderation
// @Tags moderation
// @Produce json
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve articles"
// @Router /articles/pending [get]
func (ac *ArticleController) PendingArticles(c *gin.Context) {
	articles, err := ac.articleRepo.FindPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data":    articles,
	})
}
