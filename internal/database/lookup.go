package database

import (
	"errors"
	"strconv"

	"inspectpro/internal/models"

	"gorm.io/gorm"
)

// ErrProjectNotFound means no lookup path matched. Callers must abort
// the write; a miss never creates a project.
var ErrProjectNotFound = errors.New("project reference not found")

// ProjectRef carries the identifiers a report payload may reference its
// project by. Any subset may be set.
type ProjectRef struct {
	DocID     uint   // store document id
	Code      string // business key, e.g. PRJ-1234
	ReportNum string // legacy embedded report number
}

// FindProjectByRef resolves a project using the fallback chain: direct
// document id, then business code, then legacy report number. The first
// match wins; later paths are not consulted.
func FindProjectByRef(db *gorm.DB, ref ProjectRef) (*models.Project, error) {
	var p models.Project

	if ref.DocID != 0 {
		err := db.First(&p, ref.DocID).Error
		if err == nil {
			return &p, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if ref.Code != "" {
		err := db.Where("code = ?", ref.Code).First(&p).Error
		if err == nil {
			return &p, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if ref.ReportNum != "" {
		err := db.Where("report_num = ?", ref.ReportNum).First(&p).Error
		if err == nil {
			return &p, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return nil, ErrProjectNotFound
}

// ParseRef builds a ProjectRef from a URL path segment: a numeric
// segment is a document id, a PRJ-prefixed one a business code, and
// anything else a legacy report number. All three slots are filled so
// the full chain still runs on ambiguous input.
func ParseRef(seg string) ProjectRef {
	ref := ProjectRef{Code: seg, ReportNum: seg}
	if id, err := strconv.ParseUint(seg, 10, 32); err == nil {
		ref.DocID = uint(id)
	}
	return ref
}
