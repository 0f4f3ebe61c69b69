package handlers

import (
	"net/http"

	"inspectpro/internal/database"
	"inspectpro/internal/models"

	"github.com/gin-gonic/gin"
)

func ListAuditLogs(c *gin.Context) {
	dbq := database.DB.
		Preload("User").
		Order("created_at desc").
		Limit(200)

	if entity := c.Query("entity"); entity != "" {
		dbq = dbq.Where("entity = ?", entity)
	}

	var logs []models.AuditLog
	if err := dbq.Find(&logs).Error; err != nil {
		serverErr(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// ListProjectHistory returns the audit walk of one project, oldest
// first, which is the status timeline the detail screen shows.
func ListProjectHistory(c *gin.Context) {
	p, err := database.FindProjectByRef(database.DB, database.ParseRef(c.Param("ref")))
	if err != nil {
		notFound(c, "project reference not found")
		return
	}

	var logs []models.AuditLog
	if err := database.DB.
		Where("entity = ? AND entity_id = ?", "project", p.ID).
		Preload("User").
		Order("created_at asc").
		Find(&logs).Error; err != nil {
		serverErr(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
