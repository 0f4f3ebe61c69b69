package handlers

import (
	"net/http"
	"strings"

	"inspectpro/internal/database"
	"inspectpro/internal/models"

	"github.com/gin-gonic/gin"
)

func ListLocations(c *gin.Context) {
	dbq := database.DB.Order("name asc")
	if cid := c.Query("client_id"); cid != "" {
		dbq = dbq.Where("client_id = ?", cid)
	}

	var locations []models.Location
	if err := dbq.Find(&locations).Error; err != nil {
		serverErr(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

type locationRequest struct {
	ClientID uint   `json:"clientId"`
	Name     string `json:"name"`
	Region   string `json:"region"`
	Notes    string `json:"notes"`
}

func CreateLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badReq(c, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		badReq(c, "name is required")
		return
	}

	var client models.Client
	if err := database.DB.First(&client, req.ClientID).Error; err != nil {
		badReq(c, "client not found")
		return
	}

	location := models.Location{
		ClientID:   client.ID,
		ClientName: client.Name,
		Name:       req.Name,
		Region:     req.Region,
		Notes:      req.Notes,
	}
	if err := database.DB.Create(&location).Error; err != nil {
		serverErr(c, err)
		return
	}

	if uid, _ := sessionIdentity(c); uid != 0 {
		database.Audit(uid, "location", location.ID, "create", "Created location: "+location.Name)
	}

	c.JSON(http.StatusCreated, location)
}

func UpdateLocation(c *gin.Context) {
	var location models.Location
	if err := database.DB.First(&location, c.Param("id")).Error; err != nil {
		notFound(c, "location not found")
		return
	}

	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badReq(c, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		badReq(c, "name is required")
		return
	}

	if req.ClientID != 0 && req.ClientID != location.ClientID {
		var client models.Client
		if err := database.DB.First(&client, req.ClientID).Error; err != nil {
			badReq(c, "client not found")
			return
		}
		location.ClientID = client.ID
		location.ClientName = client.Name
	}

	location.Name = req.Name
	location.Region = req.Region
	location.Notes = req.Notes

	if err := database.DB.Save(&location).Error; err != nil {
		serverErr(c, err)
		return
	}

	database.DB.Model(&models.Equipment{}).Where("location_id = ?", location.ID).Update("location_name", location.Name)

	if uid, _ := sessionIdentity(c); uid != 0 {
		database.Audit(uid, "location", location.ID, "update", "Updated location: "+location.Name)
	}

	c.JSON(http.StatusOK, location)
}

func DeleteLocation(c *gin.Context) {
	var location models.Location
	if err := database.DB.First(&location, c.Param("id")).Error; err != nil {
		notFound(c, "location not found")
		return
	}

	if err := database.DB.Delete(&location).Error; err != nil {
		serverErr(c, err)
		return
	}

	if uid, _ := sessionIdentity(c); uid != 0 {
		database.Audit(uid, "location", location.ID, "delete", "Deleted location: "+location.Name)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
