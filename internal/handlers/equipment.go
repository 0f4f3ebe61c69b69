package handlers

import (
	"net/http"
	"strings"

	"inspectpro/internal/checklist"
	"inspectpro/internal/database"
	"inspectpro/internal/models"

	"github.com/gin-gonic/gin"
)

func ListEquipment(c *gin.Context) {
	dbq := database.DB.Order("tag asc")
	if cid := c.Query("client_id"); cid != "" {
		dbq = dbq.Where("client_id = ?", cid)
	}
	if lid := c.Query("location_id"); lid != "" {
		dbq = dbq.Where("location_id = ?", lid)
	}
	if cat := c.Query("category"); cat != "" {
		dbq = dbq.Where("category = ?", cat)
	}

	var equipment []models.Equipment
	if err := dbq.Find(&equipment).Error; err != nil {
		serverErr(c, err)
		return
	}
	c.JSON(http.StatusOK, equipment)
}

// ListEquipmentCategories exposes the checklist-backed category keys so
// the register form offers only categories a template exists for.
func ListEquipmentCategories(c *gin.Context) {
	c.JSON(http.StatusOK, checklist.Categories())
}

type equipmentRequest struct {
	ClientID    uint   `json:"clientId"`
	LocationID  uint   `json:"locationId"`
	Tag         string `json:"tag"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func CreateEquipment(c *gin.Context) {
	var req equipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badReq(c, "invalid request body")
		return
	}

	req.Tag = strings.TrimSpace(req.Tag)
	if req.Tag == "" {
		badReq(c, "tag is required")
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		badReq(c, "category is required")
		return
	}

	eq := models.Equipment{
		Tag:         req.Tag,
		Category:    req.Category,
		Description: req.Description,
	}

	if req.ClientID != 0 {
		var client models.Client
		if err := database.DB.First(&client, req.ClientID).Error; err != nil {
			badReq(c, "client not found")
			return
		}
		eq.ClientID = client.ID
		eq.ClientName = client.Name
	}
	if req.LocationID != 0 {
		var location models.Location
		if err := database.DB.First(&location, req.LocationID).Error; err != nil {
			badReq(c, "location not found")
			return
		}
		eq.LocationID = location.ID
		eq.LocationName = location.Name
	}

	if err := database.DB.Create(&eq).Error; err != nil {
		serverErr(c, err)
		return
	}

	if uid, _ := sessionIdentity(c); uid != 0 {
		database.Audit(uid, "equipment", eq.ID, "create", "Created equipment: "+eq.Tag)
	}

	c.JSON(http.StatusCreated, eq)
}

func UpdateEquipment(c *gin.Context) {
	var eq models.Equipment
	if err := database.DB.First(&eq, c.Param("id")).Error; err != nil {
		notFound(c, "equipment not found")
		return
	}

	var req equipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badReq(c, "invalid request body")
		return
	}

	req.Tag = strings.TrimSpace(req.Tag)
	if req.Tag == "" {
		badReq(c, "tag is required")
		return
	}

	eq.Tag = req.Tag
	if req.Category != "" {
		eq.Category = req.Category
	}
	eq.Description = req.Description

	if req.ClientID != 0 {
		var client models.Client
		if err := database.DB.First(&client, req.ClientID).Error; err != nil {
			badReq(c, "client not found")
			return
		}
		eq.ClientID = client.ID
		eq.ClientName = client.Name
	}
	if req.LocationID != 0 {
		var location models.Location
		if err := database.DB.First(&location, req.LocationID).Error; err != nil {
			badReq(c, "location not found")
			return
		}
		eq.LocationID = location.ID
		eq.LocationName = location.Name
	}

	if err := database.DB.Save(&eq).Error; err != nil {
		serverErr(c, err)
		return
	}

	if uid, _ := sessionIdentity(c); uid != 0 {
		database.Audit(uid, "equipment", eq.ID, "update", "Updated equipment: "+eq.Tag)
	}

	c.JSON(http.StatusOK, eq)
}

func DeleteEquipment(c *gin.Context) {
	var eq models.Equipment
	if err := database.DB.First(&eq, c.Param("id")).Error; err != nil {
		notFound(c, "equipment not found")
		return
	}

	if err := database.DB.Delete(&eq).Error; err != nil {
		serverErr(c, err)
		return
	}

	if uid, _ := sessionIdentity(c); uid != 0 {
		database.Audit(uid, "equipment", eq.ID, "delete", "Deleted equipment: "+eq.Tag)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
