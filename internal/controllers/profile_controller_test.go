package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/repository"
)

func TestContributorDashboard(t *testing.T) {
	userRepo := new(MockUserRepository)
	articleRepo := new(MockArticleRepository)
	articleRepo.On("CountByAuthorAndStatus", uint(7)).Return(int64(6), repository.StatusCounts{
		Pending: 1, Approved: 4, Rejected: 1,
	}, nil)
	articleRepo.On("TopViewed", 5, false, uint(7)).Return([]models.Article{
		{ID: 2, AuthorID: 7, ViewCount: 30},
	}, nil)

	controller := NewProfileController(userRepo, articleRepo)
	router := setupTestRouter()
	router.GET("/profile/dashboard", asCaller(7, models.RoleContributor), controller.Dashboard)

	req := httptest.NewRequest(http.MethodGet, "/profile/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "6", string(resp.Data["total_articles"]))
	assert.Equal(t, "4", string(resp.Data["approved"]))
	articleRepo.AssertExpectations(t)
}

func TestReaderDashboard(t *testing.T) {
	userRepo := new(MockUserRepository)
	articleRepo := new(MockArticleRepository)
	articleRepo.On("RecentApproved", 10).Return([]models.Article{
		{ID: 5, Status: models.StatusApproved},
	}, nil)
	articleRepo.On("TopViewed", 10, true, uint(0)).Return([]models.Article{
		{ID: 1, Status: models.StatusApproved, ViewCount: 99},
	}, nil)

	controller := NewProfileController(userRepo, articleRepo)
	router := setupTestRouter()
	router.GET("/profile/dashboard", asCaller(9, models.RoleUser), controller.Dashboard)

	req := httptest.NewRequest(http.MethodGet, "/profile/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data, "recent_approved")
	assert.Contains(t, resp.Data, "most_viewed")
	articleRepo.AssertExpectations(t)
}

func TestUpdateProfile(t *testing.T) {
	userRepo := new(MockUserRepository)
	articleRepo := new(MockArticleRepository)
	existing := &models.User{ID: 7, Name: "Old Name", Role: models.RoleContributor, PasswordHash: "oldhash"}
	userRepo.On("GetUserByID", uint(7)).Return(existing, nil)
	userRepo.On("UpdateUser", mock.MatchedBy(func(u *models.User) bool {
		return u.Name == "New Name" && u.PasswordHash != "oldhash" && u.UpdatedAt != nil
	})).Return(nil)

	controller := NewProfileController(userRepo, articleRepo)
	router := setupTestRouter()
	router.PUT("/profile", asCaller(7, models.RoleContributor), controller.UpdateProfile)

	req := httptest.NewRequest(http.MethodPut, "/profile", jsonBody(t, map[string]interface{}{
		"name":     "New Name",
		"password": "newpassword123",
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	userRepo.AssertExpectations(t)
}
