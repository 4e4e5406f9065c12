package main

import (
	"log"

	"github.com/thais-adelino/projeto-skin-track/internal/bot"
	"github.com/thais-adelino/projeto-skin-track/internal/config"
	"github.com/thais-adelino/projeto-skin-track/internal/database"
	"github.com/thais-adelino/projeto-skin-track/internal/gateway"
	"github.com/thais-adelino/projeto-skin-track/internal/handlers"
	"github.com/thais-adelino/projeto-skin-track/internal/quiz"
	"github.com/thais-adelino/projeto-skin-track/internal/services"
	"github.com/thais-adelino/projeto-skin-track/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title           SkinTrack API
// @version         1.0
// @description     Skin-type quiz backend: chat sessions, result storage and community statistics
// @host            localhost:3001
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()
	catalog := quiz.DefaultCatalog()

	userService := services.NewUserService(db)

	userHandler := handlers.NewUserHandler(userService, hub)
	chatHandler := handlers.NewChatHandler(catalog, handlers.NewBroadcastSink(userService, hub))
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/ws/statistics", wsHandler.HandleStatistics)

	api := r.Group("/api")
	{
		api.GET("/health", userHandler.Health)
		api.POST("/users", userHandler.CreateUser)
		api.GET("/users", userHandler.ListUsers)
		api.GET("/statistics", userHandler.GetStatistics)

		chat := api.Group("/chat")
		{
			chat.POST("/sessions", chatHandler.CreateSession)
			chat.GET("/sessions/:id", chatHandler.GetSession)
			chat.POST("/sessions/:id/answers", chatHandler.SubmitAnswer)
			chat.POST("/sessions/:id/reset", chatHandler.ResetSession)
		}
	}

	if cfg.TelegramBotToken != "" {
		quizBot, err := bot.New(cfg.TelegramBotToken, catalog, gateway.NewClient(cfg.APIBaseURL))
		if err != nil {
			log.Printf("failed to start telegram bot: %v", err)
		} else {
			go quizBot.Start()
		}
	} else {
		log.Println("TELEGRAM_BOT_TOKEN not set, telegram bot disabled")
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
