package repository

import (
	"gorm.io/gorm"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
)

type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	FindAll() ([]models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
	EmailExists(email string, excludeID uint) (bool, error)
	CountUsers() (int64, error)
	CountUsersByRole(role models.Role) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (ur *userRepository) CreateUser(user *models.User) error {
	return ur.db.Create(user).Error
}

func (ur *userRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := ur.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := ur.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) FindAll() ([]models.User, error) {
	var users []models.User
	err := ur.db.Order("name ASC").Find(&users).Error
	return users, err
}

func (ur *userRepository) UpdateUser(user *models.User) error {
	return ur.db.Save(user).Error
}

func (ur *userRepository) DeleteUser(id uint) error {
	return ur.db.Delete(&models.User{}, id).Error
}

func (ur *userRepository) EmailExists(email string, excludeID uint) (bool, error) {
	var count int64
	err := ur.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (ur *userRepository) CountUsers() (int64, error) {
	var count int64
	err := ur.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (ur *userRepository) CountUsersByRole(role models.Role) (int64, error) {
	var count int64
	err := ur.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
