package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/riadev/ria-server/config"
	"github.com/riadev/ria-server/handler"
	"github.com/riadev/ria-server/middleware"
	"github.com/riadev/ria-server/repository"
	"github.com/riadev/ria-server/services"
	"github.com/riadev/ria-server/usecase"
	"github.com/riadev/ria-server/utils"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	utils.InitValidator()
}

func setupRouter(store repository.Store, cfg config.ServerConfig) *gin.Engine {
	router := gin.Default()

	usersRepo := repository.GetUsersRepo(store)
	notesRepo := repository.GetNotesRepo(store)
	codesRepo := repository.GetCodesRepo(store)

	authService := &usecase.AuthService{
		Users: usersRepo,
		Codes: codesRepo,
		SMS:   services.LogSMSSender{},
	}
	notesService := &usecase.NotesService{
		Notes: notesRepo,
		Users: usersRepo,
	}
	statsHandler := handler.NewStatsHandler(notesService)

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	if cfg.MetricsEnabled {
		router.Use(middleware.MetricsMiddleware())
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.GET("/health", handler.HealthHandler)

	auth := router.Group("/auth")
	{
		auth.POST("/send-code", func(c *gin.Context) {
			handler.SendCodeHandler(c, authService)
		})
		auth.POST("/register", func(c *gin.Context) {
			handler.RegisterHandler(c, authService)
		})
		auth.POST("/login", func(c *gin.Context) {
			handler.LoginHandler(c, authService)
		})
	}

	notes := router.Group("/notes")
	notes.Use(middleware.UserPhoneMiddleware())
	{
		notes.GET("", func(c *gin.Context) {
			handler.GetNotesHandler(c, notesService)
		})
		notes.POST("", func(c *gin.Context) {
			handler.CreateNoteHandler(c, notesService)
		})
		notes.PUT("/:id", func(c *gin.Context) {
			handler.UpdateNoteHandler(c, notesService)
		})
		notes.DELETE("/:id", func(c *gin.Context) {
			handler.DeleteNoteHandler(c, notesService)
		})
	}

	userStats := router.Group("/stats")
	userStats.Use(middleware.UserPhoneMiddleware())
	{
		userStats.GET("", statsHandler.GetUserStats)
	}

	return router
}

func main() {
	cfg := config.LoadServerConfig()

	store, err := repository.NewRedisStore(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer store.Close()

	if cfg.MetricsEnabled {
		utils.StartSystemMetrics(cfg.SystemMetrics)
	}

	router := setupRouter(store, cfg)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
