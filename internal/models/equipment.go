package models

import "gorm.io/gorm"

// Equipment categories as shown in the equipment register. The category
// string selects the observation checklist template for new reports.
const (
	CategoryPressureVessel = "Pressure Vessel (V)"
	CategoryPiping         = "Piping (P)"
	CategoryStorageTank    = "Storage Tank (T)"
	CategoryHeatExchanger  = "Heat Exchanger (E)"
	CategoryPigTrap        = "Pig Launcher/Receiver (PL)"
)

type Equipment struct {
	gorm.Model
	ClientID   uint `gorm:"index" json:"clientId"`
	LocationID uint `gorm:"index" json:"locationId"`

	Tag          string `gorm:"uniqueIndex;size:100;not null" json:"tag"`
	Category     string `gorm:"size:100;not null" json:"category"`
	Description  string `gorm:"type:text" json:"description"`
	ClientName   string `gorm:"size:255" json:"clientName"`
	LocationName string `gorm:"size:255" json:"locationName"`
}
