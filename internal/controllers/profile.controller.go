package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/auth"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/repository"
)

type ProfileController struct {
	userRepo    repository.UserRepository
	articleRepo repository.ArticleRepository
}

func NewProfileController(userRepo repository.UserRepository, articleRepo repository.ArticleRepository) *ProfileController {
	return &ProfileController{userRepo: userRepo, articleRepo: articleRepo}
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID, _ := callerIdentity(c)

	// The virtual admin has no row to show.
	user, err := pc.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Profile not found",
				"error":   "No user exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    user,
	})
}

// UpdateProfile godoc
// @Summary Update the caller's name or password
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [put]
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	userID, _ := callerIdentity(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := pc.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Profile not found",
				"error":   "No user exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   err.Error(),
		})
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update profile",
				"error":   err.Error(),
			})
			return
		}
		user.PasswordHash = hash
	}
	now := time.Now().UTC()
	user.UpdatedAt = &now

	if err := pc.userRepo.UpdateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    user,
	})
}

// Dashboard godoc
// @Summary Role-scoped dashboard
// @Description Contributors see totals over their own articles; readers see recent and most viewed published content
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{} "Dashboard retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to build dashboard"
// @Router /profile/dashboard [get]
func (pc *ProfileController) Dashboard(c *gin.Context) {
	userID, role := callerIdentity(c)

	if role == models.RoleContributor {
		total, counts, err := pc.articleRepo.CountByAuthorAndStatus(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to build dashboard",
				"error":   err.Error(),
			})
			return
		}
		topMine, err := pc.articleRepo.TopViewed(5, false, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to build dashboard",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Dashboard retrieved successfully",
			"data": gin.H{
				"total_articles":  total,
				"pending":         counts.Pending,
				"approved":        counts.Approved,
				"rejected":        counts.Rejected,
				"top_viewed_mine": topMine,
			},
		})
		return
	}

	recent, err := pc.articleRepo.RecentApproved(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build dashboard",
			"error":   err.Error(),
		})
		return
	}
	top, err := pc.articleRepo.TopViewed(10, true, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build dashboard",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dashboard retrieved successfully",
		"data": gin.H{
			"recent_approved": recent,
			"most_viewed":     top,
		},
	})
}
