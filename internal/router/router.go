package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lifehub-dev/lifehub/internal/handlers"
	"github.com/lifehub-dev/lifehub/internal/middleware"
	"github.com/lifehub-dev/lifehub/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.HealthCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		auth.DELETE("/me", middleware.AuthMiddleware(), handlers.DeleteAccount)
	}

	areas := r.Group("/areas", middleware.AuthMiddleware())
	{
		areas.GET("", handlers.ListAreas)
		areas.POST("", handlers.CreateArea)
		areas.GET("/:id", handlers.GetArea)
		areas.PATCH("/:id", handlers.UpdateArea)
		areas.DELETE("/:id", handlers.DeleteArea)
	}

	projects := r.Group("/projects", middleware.AuthMiddleware())
	{
		projects.GET("", handlers.ListProjects)
		projects.POST("", handlers.CreateProject)
		projects.GET("/:project_id", handlers.GetProject)
		projects.PATCH("/:project_id", handlers.UpdateProject)
		projects.DELETE("/:project_id", handlers.DeleteProject)

		// Next actions hang off their project for listing and creation
		// but are addressed directly for mutation, mirroring the
		// ownership walk.
		projects.GET("/:project_id/next-actions", handlers.ListNextActions)
		projects.POST("/:project_id/next-actions", handlers.CreateNextAction)
	}

	nextActions := r.Group("/project-next-actions", middleware.AuthMiddleware())
	{
		nextActions.PATCH("/:id", handlers.UpdateNextAction)
		nextActions.DELETE("/:id", handlers.DeleteNextAction)
	}

	tasks := r.Group("/one-shot-tasks", middleware.AuthMiddleware())
	{
		tasks.GET("", handlers.ListOneShotTasks)
		tasks.POST("", handlers.CreateOneShotTask)
		tasks.GET("/:id", handlers.GetOneShotTask)
		tasks.PATCH("/:id", handlers.UpdateOneShotTask)
		tasks.DELETE("/:id", handlers.DeleteOneShotTask)
	}

	return r
}
