package controllers

import (
	"github.com/stretchr/testify/mock"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/repository"
)

// Shared MockArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) FindByID(id uint) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) Update(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticleRepository) FindByAuthor(authorID uint) ([]models.Article, error) {
	args := m.Called(authorID)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindPending() ([]models.Article, error) {
	args := m.Called()
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) Browse(opts repository.BrowseOptions) ([]models.Article, error) {
	args := m.Called(opts)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) SearchAllApproved(query string, categoryID uint) ([]models.Article, error) {
	args := m.Called(query, categoryID)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) RecordView(articleID uint, userID *uint) error {
	args := m.Called(articleID, userID)
	return args.Error(0)
}

func (m *MockArticleRepository) CountByStatus() (repository.StatusCounts, error) {
	args := m.Called()
	return args.Get(0).(repository.StatusCounts), args.Error(1)
}

func (m *MockArticleRepository) CountByAuthorAndStatus(authorID uint) (int64, repository.StatusCounts, error) {
	args := m.Called(authorID)
	return args.Get(0).(int64), args.Get(1).(repository.StatusCounts), args.Error(2)
}

func (m *MockArticleRepository) TopViewed(limit int, approvedOnly bool, authorID uint) ([]models.Article, error) {
	args := m.Called(limit, approvedOnly, authorID)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) RecentApproved(limit int) ([]models.Article, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Article), args.Error(1)
}

// Shared MockCategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCategoryRepository) Exists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Get(0).(bool), args.Error(1)
}

func (m *MockCategoryRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	args := m.Called(slug, excludeID)
	return args.Get(0).(bool), args.Error(1)
}

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) EmailExists(email string, excludeID uint) (bool, error) {
	args := m.Called(email, excludeID)
	return args.Get(0).(bool), args.Error(1)
}

func (m *MockUserRepository) CountUsers() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountUsersByRole(role models.Role) (int64, error) {
	args := m.Called(role)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockCommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByArticleID(articleID uint) ([]models.Comment, error) {
	args := m.Called(articleID)
	return args.Get(0).([]models.Comment), args.Error(1)
}
