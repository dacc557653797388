package app

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	"github.com/BenLittle1/orggraph-api/internal/cache"
	"github.com/BenLittle1/orggraph-api/internal/config"
	"github.com/BenLittle1/orggraph-api/internal/handlers"
	"github.com/BenLittle1/orggraph-api/internal/seed"
	"github.com/BenLittle1/orggraph-api/internal/service"
	"github.com/BenLittle1/orggraph-api/internal/store"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, log *zap.Logger, treeStore *store.TreeStore, roster seed.Roster, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.HEAD("/health", func(c *gin.Context) { c.Status(200) })
	r.GET("/version", versionHandler(cfg))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api/v1")

	var snapCache *cache.SnapshotCache
	if rdb != nil {
		snapCache = cache.NewSnapshotCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}
	trackerSvc := service.NewTrackerService(treeStore, snapCache, log, cfg.App.RootName)
	teamSvc := service.NewTeamService(roster.Members, roster.Departments, treeStore, trackerSvc, log)

	registerTrackerRoutes(api, handlers.NewTrackerHandler(trackerSvc))
	registerGraphRoutes(api, handlers.NewGraphHandler(trackerSvc))
	registerTeamRoutes(api, handlers.NewTeamHandler(teamSvc))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Org Graph API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTrackerRoutes(api *gin.RouterGroup, h *handlers.TrackerHandler) {
	api.GET("/tree", h.Tree)
	api.GET("/summary", h.Summary)
	api.POST("/reset", h.Reset)
	api.GET("/tasks/high-priority", h.HighPriority)
	api.GET("/tasks/:id", h.GetTask)
	api.PATCH("/tasks/:id", h.UpdateTask)
	api.POST("/subcategories/:id/tasks", h.CreateTask)
	api.POST("/categories", h.CreateCategory)
	api.POST("/categories/:id/subcategories", h.CreateSubcategory)
	api.POST("/categories/:id/complete", h.CompleteCategory)
	api.GET("/categories/:id/progress", h.CategoryProgress)
}

func registerGraphRoutes(api *gin.RouterGroup, h *handlers.GraphHandler) {
	api.GET("/graph", h.Graph)
}

func registerTeamRoutes(api *gin.RouterGroup, h *handlers.TeamHandler) {
	api.GET("/team", h.Team)
	api.GET("/team/:id", h.Member)
	api.GET("/team/:id/tasks", h.MemberTasks)
	api.GET("/team/:id/progress", h.MemberProgress)
	api.PUT("/tasks/:id/assignee", h.AssignTask)
}
