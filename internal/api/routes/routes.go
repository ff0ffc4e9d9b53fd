package routes

import (
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/api/handlers"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/api/middleware"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/catalog"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/config"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/repository"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize catalog gateway client
	gateway, err := catalog.NewClient(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize catalog client:", err)
	}

	// Initialize repositories
	auditRepo := repository.NewAuditRepository(db)

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	store := service.NewAllocationStore(gateway)
	selections := service.NewMissionSelections()
	limits := service.LimitsFromConfig(cfg)
	allocationService := service.NewAllocationService(store, limits, selections)
	moveService := service.NewMoveService(store, gateway, limits, cfg.PoolTeamID, auditService, validator)
	groupService := service.NewGroupService(store, gateway, selections, auditService, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	allocationHandler := handlers.NewAllocationHandler(allocationService)
	moveHandler := handlers.NewMoveHandler(moveService)
	groupHandler := handlers.NewGroupHandler(groupService)
	auditHandler := handlers.NewAuditHandler(auditService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	allocation := v1.Group("/allocation")
	{
		// Date session
		allocation.POST("/session", allocationHandler.SelectDate)
		allocation.POST("/refresh", allocationHandler.Refresh)

		// Snapshot read views
		allocation.GET("/teams", allocationHandler.GetTeams)
		allocation.GET("/missions", allocationHandler.GetMissions)
		allocation.GET("/groups", allocationHandler.GetGroups)
		allocation.GET("/plan-load", allocationHandler.GetPlanLoad)

		// Mission selection sets
		allocation.PUT("/selection/:set", allocationHandler.UpdateSelection)
		allocation.GET("/selection/:set", allocationHandler.GetSelection)
		allocation.DELETE("/selection/:set", allocationHandler.ClearSelection)

		// Resource moves
		allocation.POST("/moves", moveHandler.MoveResource)
		allocation.POST("/pool", moveHandler.ReturnToPool)

		// Mission groups
		allocation.POST("/groups", groupHandler.DeployGroup)
		allocation.POST("/groups/:id/missions", groupHandler.AddMissions)
		allocation.DELETE("/groups/missions", groupHandler.RemoveMissions)

		// Audit trail
		allocation.GET("/audit", auditHandler.GetByDate)
		allocation.GET("/audit/recent", auditHandler.GetRecent)
		allocation.GET("/groups/:id/audit", auditHandler.GetByGroup)
	}

	return router
}
