package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"members-only/config"
	"members-only/handlers"
	"members-only/helper"
	"members-only/middleware"
	"members-only/repositories"
	"members-only/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	// Initialize services
	authService := services.NewAuthService(cfg, userRepo)
	messageService := services.NewMessageService(messageRepo)

	// Initialize handlers
	formHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(cfg, authService, formHelper)
	messageHandler := handlers.NewMessageHandler(messageService, formHelper)

	// Setup router
	router := gin.Default()
	router.LoadHTMLGlob("templates/*.html")

	// Resolve the current identity on every request
	router.Use(middleware.CurrentUser(cfg, authService))

	// Board
	router.GET("/", messageHandler.ShowBoard)
	router.POST("/", messageHandler.PostMessage)

	// Auth
	router.GET("/log-in", middleware.RequireAnonymous(), authHandler.ShowLogIn)
	router.POST("/log-in", authHandler.LogIn)
	router.GET("/sign-up", middleware.RequireAnonymous(), authHandler.ShowSignUp)
	router.POST("/sign-up", authHandler.SignUp)
	router.GET("/become-member", middleware.RequireAuth(), authHandler.ShowBecomeMember)
	router.POST("/become-member", middleware.RequireAuth(), authHandler.BecomeMember)
	router.GET("/log-out", middleware.RequireAuth(), authHandler.LogOut)

	// Admin-only deletion, gated on both the confirmation page and the POST
	deleteRoutes := router.Group("/delete")
	deleteRoutes.Use(middleware.RequireAdmin())
	{
		deleteRoutes.GET("/:id", messageHandler.ConfirmDelete)
		deleteRoutes.POST("/:id", messageHandler.DeleteMessage)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
