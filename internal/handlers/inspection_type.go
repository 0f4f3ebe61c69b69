package handlers

import (
	"net/http"
	"strings"

	"inspectpro/internal/database"
	"inspectpro/internal/models"

	"github.com/gin-gonic/gin"
)

func ListInspectionTypes(c *gin.Context) {
	var types []models.InspectionType
	if err := database.DB.Order("code asc").Find(&types).Error; err != nil {
		serverErr(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

type inspectionTypeRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Technique   string `json:"technique"`
	Description string `json:"description"`
}

func CreateInspectionType(c *gin.Context) {
	var req inspectionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badReq(c, "invalid request body")
		return
	}

	req.Code = strings.TrimSpace(req.Code)
	req.Name = strings.TrimSpace(req.Name)
	if req.Code == "" || req.Name == "" {
		badReq(c, "code and name are required")
		return
	}

	technique := models.Technique(req.Technique)
	if !models.ValidTechniques[technique] {
		badReq(c, "invalid technique")
		return
	}

	it := models.InspectionType{
		Code:        req.Code,
		Name:        req.Name,
		Technique:   technique,
		Description: req.Description,
	}
	if err := database.DB.Create(&it).Error; err != nil {
		serverErr(c, err)
		return
	}

	if uid, _ := sessionIdentity(c); uid != 0 {
		database.Audit(uid, "inspection_type", it.ID, "create", "Created inspection type: "+it.Code)
	}

	c.JSON(http.StatusCreated, it)
}

func UpdateInspectionType(c *gin.Context) {
	var it models.InspectionType
	if err := database.DB.First(&it, c.Param("id")).Error; err != nil {
		notFound(c, "inspection type not found")
		return
	}

	var req inspectionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badReq(c, "invalid request body")
		return
	}

	if req.Name != "" {
		it.Name = strings.TrimSpace(req.Name)
	}
	if req.Technique != "" {
		technique := models.Technique(req.Technique)
		if !models.ValidTechniques[technique] {
			badReq(c, "invalid technique")
			return
		}
		it.Technique = technique
	}
	it.Description = req.Description

	if err := database.DB.Save(&it).Error; err != nil {
		serverErr(c, err)
		return
	}

	c.JSON(http.StatusOK, it)
}
