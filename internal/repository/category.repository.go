package repository

import (
	"gorm.io/gorm"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	FindAll() ([]models.Category, error)
	FindByID(id uint) (*models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
	SlugExists(slug string, excludeID uint) (bool, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (cr *categoryRepository) Create(category *models.Category) error {
	return cr.db.Create(category).Error
}

func (cr *categoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := cr.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (cr *categoryRepository) FindByID(id uint) (*models.Category, error) {
	var category models.Category
	err := cr.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (cr *categoryRepository) Update(category *models.Category) error {
	return cr.db.Save(category).Error
}

func (cr *categoryRepository) Delete(id uint) error {
	return cr.db.Delete(&models.Category{}, id).Error
}

func (cr *categoryRepository) Exists(id uint) (bool, error) {
	var count int64
	err := cr.db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (cr *categoryRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	err := cr.db.Model(&models.Category{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}
