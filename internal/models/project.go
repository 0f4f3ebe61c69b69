package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectStatus string

// The canonical status vocabulary. Legacy spellings from earlier report
// flows ("New", "Authorized") collapse into Draft and Completed.
const (
	StatusDraft     ProjectStatus = "Draft"
	StatusForwarded ProjectStatus = "Forwarded to Inspector"
	StatusPending   ProjectStatus = "Pending Confirmation"
	StatusConfirmed ProjectStatus = "Confirmed and Forwarded"
	StatusCompleted ProjectStatus = "Completed"
)

var ValidProjectStatuses = map[ProjectStatus]bool{
	StatusDraft:     true,
	StatusForwarded: true,
	StatusPending:   true,
	StatusConfirmed: true,
	StatusCompleted: true,
}

// Project is one assignment of an inspection task to an inspector. The
// client/location/equipment/user names are denormalized caches of the
// referenced rows; Report holds the most recently saved report document.
type Project struct {
	gorm.Model
	Code string `gorm:"uniqueIndex;size:32;not null" json:"projectId"`
	Name string `gorm:"size:255;not null" json:"projectName"`

	ClientID   uint   `gorm:"index;not null" json:"clientId"`
	ClientName string `gorm:"size:255" json:"clientName"`

	LocationID   uint   `gorm:"index" json:"locationId"`
	LocationName string `gorm:"size:255" json:"locationName"`

	EquipmentID       uint   `gorm:"index;not null" json:"equipmentId"`
	EquipmentTag      string `gorm:"size:100" json:"equipmentTag"`
	EquipmentCategory string `gorm:"size:100" json:"equipmentCategory"`

	InspectionTypeID   uint      `gorm:"index" json:"inspectionTypeId"`
	InspectionTypeCode string    `gorm:"size:32" json:"inspectionTypeCode"`
	Technique          Technique `gorm:"type:varchar(20)" json:"selectedTechnique"`

	InspectorID   uint   `gorm:"index;not null" json:"inspectorId"`
	InspectorName string `gorm:"size:255" json:"inspectorName"`
	AdminID       uint   `json:"adminId"`
	AdminName     string `gorm:"size:255" json:"adminName"`

	StartDate *time.Time    `json:"startDate"`
	Status    ProjectStatus `gorm:"type:varchar(40);not null;index" json:"status"`

	// Workflow bookkeeping set by confirm / return actions.
	ReturnNote  string     `gorm:"type:text" json:"returnNote,omitempty"`
	ConfirmedBy string     `gorm:"size:255" json:"confirmedBy,omitempty"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`

	// ReportNum mirrors report general.reportNum and serves the legacy
	// lookup path for reports saved before project codes existed.
	ReportNum string         `gorm:"index;size:64" json:"reportNum,omitempty"`
	Report    datatypes.JSON `gorm:"type:jsonb" json:"report,omitempty"`
}
