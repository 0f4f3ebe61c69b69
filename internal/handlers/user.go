package handlers

import (
	"net/http"
	"strings"

	"inspectpro/internal/database"
	"inspectpro/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func ListUsers(c *gin.Context) {
	role := c.Query("role")

	dbq := database.DB.Order("display_name asc")
	if role != "" {
		dbq = dbq.Where("role = ?", role)
	}

	var users []models.User
	if err := dbq.Find(&users).Error; err != nil {
		serverErr(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type createUserRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

// CreateUser provisions an account. It is a plain insert: the acting
// admin's own session is never touched, so provisioning does not log
// the admin out.
func CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badReq(c, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if req.Email == "" || req.DisplayName == "" {
		badReq(c, "email and displayName are required")
		return
	}
	if len(req.Password) < 6 {
		badReq(c, "password must be at least 6 characters")
		return
	}

	role := models.UserRole(req.Role)
	if !models.ValidUserRoles[role] {
		badReq(c, "invalid role")
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		badReq(c, "user already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		serverErr(c, err)
		return
	}

	user := models.User{
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		serverErr(c, err)
		return
	}

	if uid, _ := sessionIdentity(c); uid != 0 {
		database.Audit(uid, "user", user.ID, "create", "Created user: "+user.Email)
	}

	c.JSON(http.StatusCreated, user)
}

type updateUserRequest struct {
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	Password    string `json:"password"`
}

func UpdateUser(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
		notFound(c, "user not found")
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badReq(c, "invalid request body")
		return
	}

	if req.DisplayName != "" {
		user.DisplayName = strings.TrimSpace(req.DisplayName)
	}
	if req.Role != "" {
		role := models.UserRole(req.Role)
		if !models.ValidUserRoles[role] {
			badReq(c, "invalid role")
			return
		}
		user.Role = role
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			badReq(c, "password must be at least 6 characters")
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			serverErr(c, err)
			return
		}
		user.PasswordHash = string(hash)
	}

	if err := database.DB.Save(&user).Error; err != nil {
		serverErr(c, err)
		return
	}

	if uid, _ := sessionIdentity(c); uid != 0 {
		database.Audit(uid, "user", user.ID, "update", "Updated user: "+user.Email)
	}

	c.JSON(http.StatusOK, user)
}

func DeleteUser(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
		notFound(c, "user not found")
		return
	}

	uid, _ := sessionIdentity(c)
	if uid == user.ID {
		badReq(c, "cannot delete the signed-in account")
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		serverErr(c, err)
		return
	}

	if uid != 0 {
		database.Audit(uid, "user", user.ID, "delete", "Deleted user: "+user.Email)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
