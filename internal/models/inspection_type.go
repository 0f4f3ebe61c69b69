package models

import "gorm.io/gorm"

type Technique string

const (
	TechniqueVisual    Technique = "visual"
	TechniqueAUT       Technique = "aut"
	TechniqueIntegrity Technique = "integrity"
)

var ValidTechniques = map[Technique]bool{
	TechniqueVisual:    true,
	TechniqueAUT:       true,
	TechniqueIntegrity: true,
}

// InspectionType is a catalog entry, e.g. code "VI" / "External Visual
// Inspection" / technique visual.
type InspectionType struct {
	gorm.Model
	Code        string    `gorm:"uniqueIndex;size:32;not null" json:"code"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Technique   Technique `gorm:"type:varchar(20);not null" json:"technique"`
	Description string    `gorm:"type:text" json:"description"`
}
