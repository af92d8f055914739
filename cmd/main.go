package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/database"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/docs"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/controllers"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/repository"
	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Internal Knowledge Base Portal API"
	docs.SwaggerInfo.Description = "Knowledge sharing portal with contributor submissions and admin moderation."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Article reads go through Redis when available; everything else hits
	// Postgres directly.
	var articleRepo repository.ArticleRepository
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		articleRepo = repository.NewCachedArticleRepository(database.DB, redis.NewClient(opt))
		log.Println("Article cache enabled (Redis)")
	} else {
		articleRepo = repository.NewArticleRepository(database.DB)
		log.Println("Article cache disabled")
	}

	userRepo := repository.NewUserRepository(database.DB)
	categoryRepo := repository.NewCategoryRepository(database.DB)
	commentRepo := repository.NewCommentRepository(database.DB)

	// Initialize controllers
	authController := controllers.NewAuthController(userRepo)
	articleController := controllers.NewArticleController(articleRepo, categoryRepo)
	commentController := controllers.NewCommentController(commentRepo, articleRepo)
	profileController := controllers.NewProfileController(userRepo, articleRepo)
	adminController := controllers.NewAdminController(userRepo, categoryRepo, articleRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Knowledge Base Portal API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterArticleRoutes(router, articleController)
	routes.RegisterCommentRoutes(router, commentController)
	routes.RegisterProfileRoutes(router, profileController)
	routes.RegisterAdminRoutes(router, adminController)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{
			"database_health": err == nil && result == 1,
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
