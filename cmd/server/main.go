package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pitchside/backend/internal/config"
	"pitchside/backend/internal/database"
	"pitchside/backend/internal/handler"
	"pitchside/backend/internal/service"
	"pitchside/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	// Swagger imports
	_ "pitchside/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Pitchside API
// @version         1.0
// @description     Backend for scheduling pickup football games and managing their rosters.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	db := database.Connect(config.AppConfig.DatabaseURL)
	roster := store.NewGormRoster(db)

	gameHandler := handler.NewGameHandler(service.NewGameService(roster))
	venueHandler := handler.NewVenueHandler(service.NewVenueService(roster))
	userHandler := handler.NewUserHandler(service.NewUserService(roster))

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("", gameHandler.GetGames)
			gameRoutes.POST("", gameHandler.CreateGame)
			gameRoutes.GET("/:id", gameHandler.GetGameByID)
			gameRoutes.PUT("/:id", gameHandler.UpdateGame)
			gameRoutes.DELETE("/:id", gameHandler.DeleteGame)

			// Roster operations
			gameRoutes.POST("/:id/join", gameHandler.JoinGame)
			gameRoutes.DELETE("/:id/join", gameHandler.LeaveGame)
		}

		venueRoutes := apiV1.Group("/venues")
		{
			venueRoutes.GET("", venueHandler.GetVenues)
			venueRoutes.POST("", venueHandler.CreateVenue)
			venueRoutes.GET("/:id", venueHandler.GetVenueByID)
		}

		userRoutes := apiV1.Group("/users")
		{
			userRoutes.GET("/:id", userHandler.GetUserByID)
		}
	}

	srv := &http.Server{
		Addr:              ":" + config.AppConfig.Port,
		Handler:           router,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logrus.Infof("Server is running on :%s", config.AppConfig.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Info("App Shutting Down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
