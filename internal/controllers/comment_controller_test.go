package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
)

func TestCreateComment(t *testing.T) {
	tests := []struct {
		name           string
		article        *models.Article
		expectedStatus int
		expectCreate   bool
	}{
		{
			name:           "comment on approved article",
			article:        approvedArticle(3, 7),
			expectedStatus: http.StatusCreated,
			expectCreate:   true,
		},
		{
			name:           "comment on pending article refused",
			article:        &models.Article{ID: 3, AuthorID: 7, Status: models.StatusPending},
			expectedStatus: http.StatusBadRequest,
			expectCreate:   false,
		},
		{
			name:           "comment on rejected article refused",
			article:        &models.Article{ID: 3, AuthorID: 7, Status: models.StatusRejected},
			expectedStatus: http.StatusBadRequest,
			expectCreate:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commentRepo := new(MockCommentRepository)
			articleRepo := new(MockArticleRepository)
			articleRepo.On("FindByID", uint(3)).Return(tt.article, nil)
			if tt.expectCreate {
				commentRepo.On("Create", mock.MatchedBy(func(c *models.Comment) bool {
					return c.ArticleID == 3 && c.UserID == 9 && c.Text == "nice article"
				})).Return(nil)
			}

			controller := NewCommentController(commentRepo, articleRepo)
			router := setupTestRouter()
			router.POST("/comments", asCaller(9, models.RoleUser), controller.CreateComment)

			req := httptest.NewRequest(http.MethodPost, "/comments", jsonBody(t, map[string]interface{}{
				"article_id": 3,
				"text":       "nice article",
			}))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			commentRepo.AssertExpectations(t)
			if !tt.expectCreate {
				commentRepo.AssertNotCalled(t, "Create", mock.Anything)
			}
		})
	}
}

func TestCommentsForArticle(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	articleRepo := new(MockArticleRepository)
	articleRepo.On("FindByID", uint(3)).Return(approvedArticle(3, 7), nil)
	commentRepo.On("FindByArticleID", uint(3)).Return([]models.Comment{
		{ID: 2, ArticleID: 3, Text: "second"},
		{ID: 1, ArticleID: 3, Text: "first"},
	}, nil)

	controller := NewCommentController(commentRepo, articleRepo)
	router := setupTestRouter()
	router.GET("/comments/article/:articleId", asCaller(9, models.RoleUser), controller.CommentsForArticle)

	req := httptest.NewRequest(http.MethodGet, "/comments/article/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	commentRepo.AssertExpectations(t)
}
