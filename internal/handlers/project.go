package handlers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"inspectpro/internal/database"
	"inspectpro/internal/models"
	"inspectpro/internal/workflow"

	"github.com/gin-gonic/gin"
)

// ListProjects returns the projects visible to the session role:
// inspectors see their own assignments, supervisors see review work
// plus their own, managers and admins see everything.
func ListProjects(c *gin.Context) {
	uid, role := sessionIdentity(c)

	dbq := database.DB.Order("created_at desc")

	switch role {
	case models.RoleInspector, models.RoleLeadInspector:
		dbq = dbq.Where("inspector_id = ?", uid)
	case models.RoleSupervisor:
		dbq = dbq.Where("inspector_id = ? OR status = ?", uid, models.StatusPending)
	}

	if cid := c.Query("client_id"); cid != "" {
		dbq = dbq.Where("client_id = ?", cid)
	}
	if status := c.Query("status"); status != "" {
		if !models.ValidProjectStatuses[models.ProjectStatus(status)] {
			badReq(c, "invalid status filter")
			return
		}
		dbq = dbq.Where("status = ?", status)
	}

	var projects []models.Project
	if err := dbq.Find(&projects).Error; err != nil {
		serverErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject resolves :ref through the id -> code -> report number
// fallback chain.
func GetProject(c *gin.Context) {
	p, err := database.FindProjectByRef(database.DB, database.ParseRef(c.Param("ref")))
	if err != nil {
		if errors.Is(err, database.ErrProjectNotFound) {
			notFound(c, err.Error())
			return
		}
		serverErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetProjectCapabilities lists the workflow actions the session role
// may take on the project in its current status. The UI enables
// buttons from this list; the write path re-checks the same table.
func GetProjectCapabilities(c *gin.Context) {
	p, err := database.FindProjectByRef(database.DB, database.ParseRef(c.Param("ref")))
	if err != nil {
		if errors.Is(err, database.ErrProjectNotFound) {
			notFound(c, err.Error())
			return
		}
		serverErr(c, err)
		return
	}

	_, role := sessionIdentity(c)
	actions := workflow.Allowed(role, p.Status)
	if actions == nil {
		actions = []workflow.Action{}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  p.Status,
		"actions": actions,
	})
}

type createProjectRequest struct {
	ProjectName      string `json:"projectName"`
	ClientID         uint   `json:"clientId"`
	LocationID       uint   `json:"locationId"`
	EquipmentID      uint   `json:"equipmentId"`
	InspectionTypeID uint   `json:"inspectionTypeId"`
	InspectorID      uint   `json:"inspectorId"`
	StartDate        string `json:"startDate"`
}

// CreateProject is the admin project-setup operation. Validation
// enumerates every missing required field so the form can flag them
// all at once; status is always the initial workflow state.
func CreateProject(c *gin.Context) {
	uid, role := sessionIdentity(c)
	if !workflow.Can(role, "", workflow.ActionCreate) {
		forbidden(c, "only admins can create projects")
		return
	}

	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badReq(c, "invalid request body")
		return
	}

	var missing []string
	req.ProjectName = strings.TrimSpace(req.ProjectName)
	if req.ProjectName == "" {
		missing = append(missing, "projectName")
	}
	if req.ClientID == 0 {
		missing = append(missing, "clientId")
	}
	if req.InspectorID == 0 {
		missing = append(missing, "inspectorId")
	}
	if req.EquipmentID == 0 {
		missing = append(missing, "equipmentId")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "required fields missing",
			"missing": missing,
		})
		return
	}

	var client models.Client
	if err := database.DB.First(&client, req.ClientID).Error; err != nil {
		badReq(c, "client not found")
		return
	}

	var eq models.Equipment
	if err := database.DB.First(&eq, req.EquipmentID).Error; err != nil {
		badReq(c, "equipment not found")
		return
	}

	var inspector models.User
	if err := database.DB.First(&inspector, req.InspectorID).Error; err != nil {
		badReq(c, "inspector not found")
		return
	}
	if inspector.Role != models.RoleInspector && inspector.Role != models.RoleLeadInspector {
		badReq(c, "assignee must be an inspector or lead inspector")
		return
	}

	var admin models.User
	database.DB.First(&admin, uid)

	project := models.Project{
		Code:              newProjectCode(),
		Name:              req.ProjectName,
		ClientID:          client.ID,
		ClientName:        client.Name,
		EquipmentID:       eq.ID,
		EquipmentTag:      eq.Tag,
		EquipmentCategory: eq.Category,
		InspectorID:       inspector.ID,
		InspectorName:     inspector.DisplayName,
		AdminID:           admin.ID,
		AdminName:         admin.DisplayName,
		Status:            models.StatusForwarded,
	}

	if req.LocationID != 0 {
		var location models.Location
		if err := database.DB.First(&location, req.LocationID).Error; err != nil {
			badReq(c, "location not found")
			return
		}
		project.LocationID = location.ID
		project.LocationName = location.Name
	} else if eq.LocationID != 0 {
		project.LocationID = eq.LocationID
		project.LocationName = eq.LocationName
	}

	if req.InspectionTypeID != 0 {
		var it models.InspectionType
		if err := database.DB.First(&it, req.InspectionTypeID).Error; err != nil {
			badReq(c, "inspection type not found")
			return
		}
		project.InspectionTypeID = it.ID
		project.InspectionTypeCode = it.Code
		project.Technique = it.Technique
	} else {
		project.Technique = models.TechniqueVisual
	}

	if req.StartDate != "" {
		if t, err := time.Parse("2006-01-02", req.StartDate); err == nil {
			project.StartDate = &t
		} else {
			badReq(c, "invalid startDate")
			return
		}
	}

	// retry once on a business-key collision
	for attempt := 0; ; attempt++ {
		err := database.DB.Create(&project).Error
		if err == nil {
			break
		}
		if attempt < 3 && strings.Contains(strings.ToLower(err.Error()), "unique") {
			project.Code = newProjectCode()
			continue
		}
		serverErr(c, err)
		return
	}

	database.Audit(uid, "project", project.ID, "create",
		fmt.Sprintf("Created project %s: %s", project.Code, project.Name))

	c.JSON(http.StatusCreated, project)
}

func newProjectCode() string {
	return fmt.Sprintf("PRJ-%04d", rand.Intn(10000))
}
