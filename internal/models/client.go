package models

import "gorm.io/gorm"

type Client struct {
	gorm.Model
	Name         string `gorm:"size:255;not null" json:"name"`
	Industry     string `gorm:"size:100" json:"industry"`
	ContactName  string `gorm:"size:255" json:"contactName"`
	ContactEmail string `gorm:"size:255" json:"contactEmail"`
	ContactPhone string `gorm:"size:50" json:"contactPhone"`
	Notes        string `gorm:"type:text" json:"notes"`

	Locations []Location `json:"locations,omitempty"`
	Projects  []Project  `json:"projects,omitempty"`
}
