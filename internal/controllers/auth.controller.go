package controllers

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/auth"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/repository"
)

type AuthController struct {
	userRepo repository.UserRepository
}

func NewAuthController(userRepo repository.UserRepository) *AuthController {
	return &AuthController{userRepo: userRepo}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in and receive a JWT
// @Description The admin account is provisioned from the environment, not the users table
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Email and password"
// @Success 200 {object} map[string]interface{} "User logged in successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// The admin is virtual: credentials come from the environment and there
	// is no user row. Its user_id claim is 0.
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" && strings.EqualFold(req.Email, adminEmail) && req.Password == adminPassword {
		token, err := auth.CreateToken(0, adminEmail, models.RoleAdmin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Could not generate token",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "User logged in successfully",
			"data": gin.H{
				"token": token,
				"role":  models.RoleAdmin,
				"name":  "Administrator",
				"email": adminEmail,
			},
		})
		return
	}

	user, err := ac.userRepo.GetUserByEmail(req.Email)
	if err != nil || !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid email or password",
			"error":   "Authentication failed",
		})
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid email or password",
			"error":   "Authentication failed",
		})
		return
	}

	token, err := auth.CreateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User logged in successfully",
		"data": gin.H{
			"token":   token,
			"role":    user.Role,
			"user_id": user.ID,
			"name":    user.Name,
			"email":   user.Email,
		},
	})
}
