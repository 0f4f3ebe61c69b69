package handlers

import (
	"net/http"
	"strings"

	"inspectpro/internal/database"
	"inspectpro/internal/models"

	"github.com/gin-gonic/gin"
)

func ListClients(c *gin.Context) {
	var clients []models.Client
	if err := database.DB.Order("name asc").Find(&clients).Error; err != nil {
		serverErr(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func GetClient(c *gin.Context) {
	var client models.Client
	if err := database.DB.Preload("Locations").First(&client, c.Param("id")).Error; err != nil {
		notFound(c, "client not found")
		return
	}
	c.JSON(http.StatusOK, client)
}

type clientRequest struct {
	Name         string `json:"name"`
	Industry     string `json:"industry"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Notes        string `json:"notes"`
}

func CreateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badReq(c, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		badReq(c, "name is required")
		return
	}

	client := models.Client{
		Name:         req.Name,
		Industry:     req.Industry,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Notes:        req.Notes,
	}
	if err := database.DB.Create(&client).Error; err != nil {
		serverErr(c, err)
		return
	}

	if uid, _ := sessionIdentity(c); uid != 0 {
		database.Audit(uid, "client", client.ID, "create", "Created client: "+client.Name)
	}

	c.JSON(http.StatusCreated, client)
}

func UpdateClient(c *gin.Context) {
	var client models.Client
	if err := database.DB.First(&client, c.Param("id")).Error; err != nil {
		notFound(c, "client not found")
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badReq(c, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		badReq(c, "name is required")
		return
	}

	client.Name = req.Name
	client.Industry = req.Industry
	client.ContactName = req.ContactName
	client.ContactEmail = req.ContactEmail
	client.ContactPhone = req.ContactPhone
	client.Notes = req.Notes

	if err := database.DB.Save(&client).Error; err != nil {
		serverErr(c, err)
		return
	}

	// keep the denormalized name caches in step
	database.DB.Model(&models.Location{}).Where("client_id = ?", client.ID).Update("client_name", client.Name)
	database.DB.Model(&models.Equipment{}).Where("client_id = ?", client.ID).Update("client_name", client.Name)

	if uid, _ := sessionIdentity(c); uid != 0 {
		database.Audit(uid, "client", client.ID, "update", "Updated client: "+client.Name)
	}

	c.JSON(http.StatusOK, client)
}
