package server

import (
	"net/http"

	"inspectpro/internal/config"
	"inspectpro/internal/handlers"
	"inspectpro/internal/middleware"
	"inspectpro/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	handlers.UploadDir = cfg.UploadDir
	r.Static("/uploads", cfg.UploadDir)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("inspectpro_session", store))

	r.Use(middleware.InjectUser())

	// AUTH
	r.POST("/api/login", handlers.Login)
	r.POST("/api/logout", handlers.Logout)

	auth := r.Group("/api")
	auth.Use(middleware.RequireAuth())

	auth.GET("/me", handlers.Me)

	// USERS — provisioning is admin-only
	auth.GET("/users", handlers.ListUsers)
	auth.POST("/users",
		middleware.RequireRole(models.RoleAdmin),
		handlers.CreateUser,
	)
	auth.PUT("/users/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.UpdateUser,
	)
	auth.DELETE("/users/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteUser,
	)

	// CLIENTS
	auth.GET("/clients", handlers.ListClients)
	auth.GET("/clients/:id", handlers.GetClient)
	auth.POST("/clients",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateClient,
	)
	auth.PUT("/clients/:id",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.UpdateClient,
	)

	// LOCATIONS
	auth.GET("/locations", handlers.ListLocations)
	auth.POST("/locations",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateLocation,
	)
	auth.PUT("/locations/:id",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.UpdateLocation,
	)
	auth.DELETE("/locations/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteLocation,
	)

	// EQUIPMENT
	auth.GET("/equipment", handlers.ListEquipment)
	auth.GET("/equipment-categories", handlers.ListEquipmentCategories)
	auth.POST("/equipment",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateEquipment,
	)
	auth.PUT("/equipment/:id",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.UpdateEquipment,
	)
	auth.DELETE("/equipment/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteEquipment,
	)

	// INSPECTION TYPES
	auth.GET("/inspection-types", handlers.ListInspectionTypes)
	auth.POST("/inspection-types",
		middleware.RequireRole(models.RoleAdmin),
		handlers.CreateInspectionType,
	)
	auth.PUT("/inspection-types/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.UpdateInspectionType,
	)

	// PROJECTS — status changes go through the workflow engine inside
	// the handlers; routes carry no role middleware beyond auth so the
	// engine stays the single gate.
	auth.GET("/projects", handlers.ListProjects)
	auth.POST("/projects", handlers.CreateProject)
	auth.GET("/projects/:ref", handlers.GetProject)
	auth.GET("/projects/:ref/capabilities", handlers.GetProjectCapabilities)
	auth.GET("/projects/:ref/editor", handlers.GetEditorState)
	auth.PUT("/projects/:ref/report", handlers.SaveReport)
	auth.GET("/projects/:ref/history", handlers.ListProjectHistory)

	// UPLOADS
	auth.POST("/uploads", handlers.Upload)

	// AUDIT
	auth.GET("/audit",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.ListAuditLogs,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
