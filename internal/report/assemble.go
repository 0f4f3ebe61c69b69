package report

import (
	"inspectpro/internal/checklist"
	"inspectpro/internal/models"
)

// Prefill is the identity payload taken from the selected project when
// an editor opens.
type Prefill struct {
	Project *models.Project
	Date    string
}

// Assemble builds the initial editor state for a project. Precedence:
// the pre-fill's identity fields always win over stale copies inside an
// existing document, while the existing document's findings win over a
// fresh checklist template unless they are empty. Saved observations
// are merged sn-by-sn with the template so a returned report reopens
// with its prior answers intact.
func Assemble(pre Prefill, existing *Document) *Document {
	p := pre.Project
	template := checklist.Resolve(p.EquipmentCategory)

	doc := &Document{
		Technique: p.Technique,
		Status:    p.Status,
	}
	if existing != nil {
		*doc = *existing
		doc.Technique = p.Technique
		doc.Status = p.Status
	}

	doc.General.ProjectDocID = p.ID
	doc.General.ProjectCode = p.Code
	doc.General.Client = p.ClientName
	doc.General.Platform = p.LocationName
	doc.General.Tag = p.EquipmentTag
	doc.General.Equipment = p.EquipmentCategory
	doc.General.Inspector = p.InspectorName
	if doc.General.Date == "" {
		doc.General.Date = pre.Date
	}
	if doc.General.ReportNum == "" {
		doc.General.ReportNum = p.ReportNum
	}

	doc.SetObservations(checklist.Merge(doc.Observations(), template))
	return doc
}
