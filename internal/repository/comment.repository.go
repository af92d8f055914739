package repository

import (
	"gorm.io/gorm"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByArticleID(articleID uint) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (cr *commentRepository) Create(comment *models.Comment) error {
	return cr.db.Create(comment).Error
}

func (cr *commentRepository) FindByArticleID(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := cr.db.Preload("User").
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}
