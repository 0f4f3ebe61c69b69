package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin         UserRole = "admin"
	RoleManager       UserRole = "manager"
	RoleSupervisor    UserRole = "supervisor"
	RoleLeadInspector UserRole = "lead_inspector"
	RoleInspector     UserRole = "inspector"
)

// ValidUserRoles maps the role strings accepted on user provisioning.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:         true,
	RoleManager:       true,
	RoleSupervisor:    true,
	RoleLeadInspector: true,
	RoleInspector:     true,
}

type User struct {
	gorm.Model
	Email        string   `gorm:"uniqueIndex;size:255;not null" json:"email"`
	DisplayName  string   `gorm:"size:255;not null" json:"displayName"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
}
