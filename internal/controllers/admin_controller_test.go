package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/repository"
)

func setupAdminController() (*AdminController, *MockUserRepository, *MockCategoryRepository, *MockArticleRepository) {
	userRepo := new(MockUserRepository)
	categoryRepo := new(MockCategoryRepository)
	articleRepo := new(MockArticleRepository)
	controller := NewAdminController(userRepo, categoryRepo, articleRepo)
	return controller, userRepo, categoryRepo, articleRepo
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*MockUserRepository)
		expectedStatus int
	}{
		{
			name: "creates contributor",
			requestBody: map[string]interface{}{
				"name":     "Jane Doe",
				"email":    "jane@example.com",
				"password": "password123",
				"role":     "contributor",
			},
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("EmailExists", "jane@example.com", uint(0)).Return(false, nil)
				userRepo.On("CreateUser", mock.MatchedBy(func(u *models.User) bool {
					return u.Role == models.RoleContributor && u.IsActive && u.PasswordHash != "password123"
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "admin role is refused",
			requestBody: map[string]interface{}{
				"name":     "Eve",
				"email":    "eve@example.com",
				"password": "password123",
				"role":     "admin",
			},
			setupMocks:     func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown role is refused",
			requestBody: map[string]interface{}{
				"name":     "Eve",
				"email":    "eve@example.com",
				"password": "password123",
				"role":     "superuser",
			},
			setupMocks:     func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email conflicts",
			requestBody: map[string]interface{}{
				"name":     "Jane Doe",
				"email":    "jane@example.com",
				"password": "password123",
				"role":     "user",
			},
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("EmailExists", "jane@example.com", uint(0)).Return(true, nil)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, userRepo, _, _ := setupAdminController()
			tt.setupMocks(userRepo)

			router := setupTestRouter()
			router.POST("/admin/users", asCaller(0, models.RoleAdmin), controller.CreateUser)

			req := httptest.NewRequest(http.MethodPost, "/admin/users", jsonBody(t, tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			userRepo.AssertExpectations(t)
			if tt.expectedStatus != http.StatusCreated {
				userRepo.AssertNotCalled(t, "CreateUser", mock.Anything)
			}
		})
	}
}

func TestUpdateUserCannotElevateToAdmin(t *testing.T) {
	controller, userRepo, _, _ := setupAdminController()

	router := setupTestRouter()
	router.PUT("/admin/users/:id", asCaller(0, models.RoleAdmin), controller.UpdateUser)

	req := httptest.NewRequest(http.MethodPut, "/admin/users/7", jsonBody(t, map[string]interface{}{
		"name":      "Jane Doe",
		"email":     "jane@example.com",
		"role":      "admin",
		"is_active": true,
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	userRepo.AssertNotCalled(t, "UpdateUser", mock.Anything)
}

func TestGetUserErrorMapping(t *testing.T) {
	t.Run("missing user is 404", func(t *testing.T) {
		controller, userRepo, _, _ := setupAdminController()
		userRepo.On("GetUserByID", uint(42)).Return(nil, gorm.ErrRecordNotFound)

		router := setupTestRouter()
		router.GET("/admin/users/:id", asCaller(0, models.RoleAdmin), controller.GetUser)

		req := httptest.NewRequest(http.MethodGet, "/admin/users/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "User not found")
	})

	t.Run("storage failure is not reported as missing", func(t *testing.T) {
		controller, userRepo, _, _ := setupAdminController()
		userRepo.On("GetUserByID", uint(42)).Return(nil, errors.New("connection refused"))

		router := setupTestRouter()
		router.GET("/admin/users/:id", asCaller(0, models.RoleAdmin), controller.GetUser)

		req := httptest.NewRequest(http.MethodGet, "/admin/users/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "User not found")
	})
}

func TestCreateCategory(t *testing.T) {
	t.Run("creates category", func(t *testing.T) {
		controller, _, categoryRepo, _ := setupAdminController()
		categoryRepo.On("SlugExists", "hr", uint(0)).Return(false, nil)
		categoryRepo.On("Create", mock.MatchedBy(func(c *models.Category) bool {
			return c.Slug == "hr"
		})).Return(nil)

		router := setupTestRouter()
		router.POST("/admin/categories", asCaller(0, models.RoleAdmin), controller.CreateCategory)

		req := httptest.NewRequest(http.MethodPost, "/admin/categories", jsonBody(t, map[string]interface{}{
			"name": "HR",
			"slug": "hr",
		}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		controller, _, categoryRepo, _ := setupAdminController()
		categoryRepo.On("SlugExists", "hr", uint(0)).Return(true, nil)

		router := setupTestRouter()
		router.POST("/admin/categories", asCaller(0, models.RoleAdmin), controller.CreateCategory)

		req := httptest.NewRequest(http.MethodPost, "/admin/categories", jsonBody(t, map[string]interface{}{
			"name": "HR",
			"slug": "hr",
		}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		categoryRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestAdminDashboard(t *testing.T) {
	controller, userRepo, _, articleRepo := setupAdminController()
	userRepo.On("CountUsers").Return(int64(42), nil)
	userRepo.On("CountUsersByRole", models.RoleContributor).Return(int64(12), nil)
	articleRepo.On("CountByStatus").Return(repository.StatusCounts{
		Pending: 3, Approved: 20, Rejected: 2,
	}, nil)
	articleRepo.On("TopViewed", 10, true, uint(0)).Return([]models.Article{
		{ID: 1, ViewCount: 99, Status: models.StatusApproved},
	}, nil)

	router := setupTestRouter()
	router.GET("/admin/dashboard", asCaller(0, models.RoleAdmin), controller.Dashboard)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "42", string(resp.Data["total_users"]))
	assert.Equal(t, "3", string(resp.Data["pending_approvals"]))
	assert.Equal(t, "20", string(resp.Data["approved_documents"]))
	userRepo.AssertExpectations(t)
	articleRepo.AssertExpectations(t)
}

func TestAdminDeleteArticle(t *testing.T) {
	controller, _, _, articleRepo := setupAdminController()
	articleRepo.On("FindByID", uint(3)).Return(&models.Article{
		ID: 3, AuthorID: 7, Status: models.StatusApproved,
	}, nil)
	articleRepo.On("Delete", uint(3)).Return(nil)

	router := setupTestRouter()
	router.DELETE("/admin/articles/:id", asCaller(0, models.RoleAdmin), controller.DeleteArticle)

	req := httptest.NewRequest(http.MethodDelete, "/admin/articles/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	articleRepo.AssertExpectations(t)
}
