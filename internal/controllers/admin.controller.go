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

type AdminController struct {
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	articleRepo  repository.ArticleRepository
}

func NewAdminController(userRepo repository.UserRepository, categoryRepo repository.CategoryRepository, articleRepo repository.ArticleRepository) *AdminController {
	return &AdminController{userRepo: userRepo, categoryRepo: categoryRepo, articleRepo: articleRepo}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}

type CreateUserRequest struct {
	EmployeeID string      `json:"employee_id"`
	Name       string      `json:"name" binding:"required"`
	Email      string      `json:"email" binding:"required,email"`
	Password   string      `json:"password" binding:"required"`
	Role       models.Role `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	EmployeeID string      `json:"employee_id"`
	Name       string      `json:"name" binding:"required"`
	Email      string      `json:"email" binding:"required,email"`
	Role       models.Role `json:"role" binding:"required"`
	IsActive   bool        `json:"is_active"`
	Password   string      `json:"password"`
}

// CreateCategory godoc
// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category data"
// @Success 201 {object} map[string]interface{} "Category created"
// @Failure 409 {object} map[string]interface{} "Slug already exists"
// @Router /admin/categories [post]
func (ac *AdminController) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	taken, err := ac.categoryRepo.SlugExists(req.Slug, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create category",
			"error":   err.Error(),
		})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Slug already exists",
			"error":   "A category with this slug already exists",
		})
		return
	}

	category := models.Category{Name: req.Name, Slug: req.Slug, Description: req.Description}
	if err := ac.categoryRepo.Create(&category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create category",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Category created successfully",
		"data":    category,
	})
}

// ListCategories godoc
// @Summary List categories
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Categories retrieved successfully"
// @Router /admin/categories [get]
func (ac *AdminController) ListCategories(c *gin.Context) {
	categories, err := ac.categoryRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve categories",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body CategoryRequest true "Category data"
// @Success 200 {object} map[string]interface{} "Category updated"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 409 {object} map[string]interface{} "Slug already exists"
// @Router /admin/categories/{id} [put]
func (ac *AdminController) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	category, err := ac.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Category not found",
				"error":   "No category exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update category",
			"error":   err.Error(),
		})
		return
	}

	taken, err := ac.categoryRepo.SlugExists(req.Slug, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update category",
			"error":   err.Error(),
		})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Slug already exists",
			"error":   "A category with this slug already exists",
		})
		return
	}

	category.Name = req.Name
	category.Slug = req.Slug
	category.Description = req.Description
	if err := ac.categoryRepo.Update(category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update category",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Category updated successfully",
		"data":    category,
	})
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags admin
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{} "Category deleted"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /admin/categories/{id} [delete]
func (ac *AdminController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := ac.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Category not found",
				"error":   "No category exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete category",
			"error":   err.Error(),
		})
		return
	}

	if err := ac.categoryRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete category",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Category deleted successfully",
		"data":    nil,
	})
}

// Search godoc
// @Summary Search published articles (admin view)
// @Tags admin
// @Produce json
// @Param q query string false "Text filter over title and description"
// @Param category_id query int false "Category filter"
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Router /admin/search [get]
func (ac *AdminController) Search(c *gin.Context) {
	var categoryID uint
	if raw := c.Query("category_id"); raw != "" {
		id, err := parseQueryID(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid category ID",
				"error":   "category_id must be a valid positive integer",
			})
			return
		}
		categoryID = id
	}

	articles, err := ac.articleRepo.SearchAllApproved(c.Query("q"), categoryID)
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

// Dashboard godoc
// @Summary Portal-wide dashboard
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Dashboard retrieved successfully"
// @Router /admin/dashboard [get]
func (ac *AdminController) Dashboard(c *gin.Context) {
	totalUsers, err := ac.userRepo.CountUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build dashboard",
			"error":   err.Error(),
		})
		return
	}
	contributors, err := ac.userRepo.CountUsersByRole(models.RoleContributor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build dashboard",
			"error":   err.Error(),
		})
		return
	}
	counts, err := ac.articleRepo.CountByStatus()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build dashboard",
			"error":   err.Error(),
		})
		return
	}
	topViewed, err := ac.articleRepo.TopViewed(10, true, 0)
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
			"total_users":        totalUsers,
			"contributors":       contributors,
			"pending_approvals":  counts.Pending,
			"approved_documents": counts.Approved,
			"top_viewed":         topViewed,
		},
	})
}

// DeleteArticle godoc
// @Summary Delete any article (admin path)
// @Tags admin
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article deleted"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /admin/articles/{id} [delete]
func (ac *AdminController) DeleteArticle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := ac.articleRepo.FindByID(id); err != nil {
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

// ListUsers godoc
// @Summary List accounts
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Users retrieved successfully"
// @Router /admin/users [get]
func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.userRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve users",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Users retrieved successfully",
		"data":    users,
	})
}

// GetUser godoc
// @Summary Get an account
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /admin/users/{id} [get]
func (ac *AdminController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := ac.userRepo.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			userNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data":    user,
	})
}

// CreateUser godoc
// @Summary Create an account
// @Description The admin role cannot be assigned through the API
// @Tags admin
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User data"
// @Success 201 {object} map[string]interface{} "User created"
// @Failure 400 {object} map[string]interface{} "Cannot create admin via API"
// @Failure 409 {object} map[string]interface{} "Email already exists"
// @Router /admin/users [post]
func (ac *AdminController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// The one admin is provisioned out-of-band; the API never mints another.
	if req.Role == models.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Cannot create admin via API",
			"error":   "The admin role cannot be assigned through account management",
		})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid role",
			"error":   "Role must be contributor or user",
		})
		return
	}

	taken, err := ac.userRepo.EmailExists(req.Email, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Email already exists",
			"error":   "A user with this email already exists",
		})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	user := models.User{
		EmployeeID:   req.EmployeeID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
	}

	if err := ac.userRepo.CreateUser(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User created successfully",
		"data":    user,
	})
}

// UpdateUser godoc
// @Summary Update an account
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body UpdateUserRequest true "User data"
// @Success 200 {object} map[string]interface{} "User updated"
// @Failure 400 {object} map[string]interface{} "Cannot assign admin role via API"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 409 {object} map[string]interface{} "Email already exists"
// @Router /admin/users/{id} [put]
func (ac *AdminController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Role == models.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Cannot assign admin role via API",
			"error":   "The admin role cannot be assigned through account management",
		})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid role",
			"error":   "Role must be contributor or user",
		})
		return
	}

	user, err := ac.userRepo.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			userNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update user",
			"error":   err.Error(),
		})
		return
	}

	taken, err := ac.userRepo.EmailExists(req.Email, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update user",
			"error":   err.Error(),
		})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Email already exists",
			"error":   "A user with this email already exists",
		})
		return
	}

	user.EmployeeID = req.EmployeeID
	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role
	user.IsActive = req.IsActive
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update user",
				"error":   err.Error(),
			})
			return
		}
		user.PasswordHash = hash
	}
	now := time.Now().UTC()
	user.UpdatedAt = &now

	if err := ac.userRepo.UpdateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User updated successfully",
		"data":    user,
	})
}

// DeleteUser godoc
// @Summary Delete an account
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "User deleted"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /admin/users/{id} [delete]
func (ac *AdminController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := ac.userRepo.GetUserByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			userNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete user",
			"error":   err.Error(),
		})
		return
	}

	if err := ac.userRepo.DeleteUser(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted successfully",
		"data":    nil,
	})
}
