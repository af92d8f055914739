package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/database"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/auth"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	demoUsers := seedCmd.Int("demo-users", 0, "Number of demo contributor/reader accounts to create")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])

		database.ConnectDatabase()
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		if err := seedCategories(); err != nil {
			log.Fatalf("Failed to seed categories: %v", err)
		}
		if *demoUsers > 0 {
			if err := seedDemoUsers(*demoUsers); err != nil {
				log.Fatalf("Failed to seed demo users: %v", err)
			}
		}
		log.Println("Seeding completed")
	default:
		printHelp()
		os.Exit(1)
	}
}

func seedCategories() error {
	var count int64
	if err := database.DB.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Categories already present, skipping")
		return nil
	}

	categories := []models.Category{
		{Name: "HR", Slug: "hr", Description: "Human Resources"},
		{Name: "IT", Slug: "it", Description: "Information Technology"},
		{Name: "Development", Slug: "dev", Description: "Development and Engineering"},
	}
	return database.DB.Create(&categories).Error
}

func seedDemoUsers(n int) error {
	for i := 1; i <= n; i++ {
		role := models.RoleUser
		if i%2 == 1 {
			role = models.RoleContributor
		}

		hash, err := auth.HashPassword("TestPassword123!")
		if err != nil {
			return err
		}

		user := models.User{
			EmployeeID:   fmt.Sprintf("EMP-%04d", i),
			Name:         fmt.Sprintf("Demo User %d", i),
			Email:        fmt.Sprintf("demouser%d@example.com", i),
			PasswordHash: hash,
			Role:         role,
			IsActive:     true,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			return err
		}
	}
	log.Printf("Created %d demo users", n)
	return nil
}

func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  seed [--demo-users N]   Seed categories and optional demo accounts")
}
