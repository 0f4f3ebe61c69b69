package models

import "gorm.io/gorm"

// Location is a platform / site belonging to a client. ClientName is a
// denormalized cache so listings do not need a join.
type Location struct {
	gorm.Model
	ClientID uint   `gorm:"index;not null" json:"clientId"`
	Client   Client `json:"-"`

	Name       string `gorm:"size:255;not null" json:"name"`
	ClientName string `gorm:"size:255" json:"clientName"`
	Region     string `gorm:"size:100" json:"region"`
	Notes      string `gorm:"type:text" json:"notes"`
}
