package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/cars/internal/server/http/handlers"
	"github.com/polkiloo/cars/internal/server/http/middleware"
)

const healthPath = "/health"

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.Facade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(middleware.CompressResponse(healthPath))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET(healthPath, healthHandler.Check)

	api := engine.Group("/api")
	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	users := api.Group("/users")
	users.Use(middleware.AuthRequired(facade))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/search", userHandler.Search)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	return engine
}
