package database

import "inspectpro/internal/models"

// Audit appends a row to the audit trail. Best-effort: a failed audit
// write never blocks the workflow write it describes.
func Audit(userID uint, entity string, entityID uint, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = DB.Create(&record).Error
}
