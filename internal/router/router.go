package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/taskdeck-dev/taskdeck/internal/handlers"
	"github.com/taskdeck-dev/taskdeck/internal/middleware"
	"github.com/taskdeck-dev/taskdeck/internal/store"
	"github.com/taskdeck-dev/taskdeck/internal/types"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	users := store.NewUserStore(db)
	cards := store.NewCardStore(db)
	comments := store.NewCommentStore(db)

	authHandler := handlers.NewAuthHandler(users)
	cardHandler := handlers.NewCardHandler(cards)
	commentHandler := handlers.NewCommentHandler(comments, cards)

	r.GET("/health", handlers.HealthCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.AuthMiddleware(users), authHandler.Me)
	}

	cardRoutes := r.Group("/cards", middleware.AuthMiddleware(users))
	{
		cardRoutes.GET("", cardHandler.List)
		cardRoutes.GET("/:id", cardHandler.Get)
		cardRoutes.POST("", cardHandler.Create)
		cardRoutes.PUT("/:id", cardHandler.Replace)
		cardRoutes.PATCH("/:id", cardHandler.Patch)
		cardRoutes.DELETE("/:id", cardHandler.Delete)
	}

	commentRoutes := r.Group("/comments", middleware.AuthMiddleware(users))
	{
		commentRoutes.GET("", commentHandler.List)
		commentRoutes.GET("/:id", commentHandler.Get)
		commentRoutes.POST("", commentHandler.Create)
		commentRoutes.DELETE("/:id", commentHandler.Delete)
	}

	return r
}
