package database

import (
	"log"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Article{},
		&models.ArticleView{},
		&models.Comment{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
