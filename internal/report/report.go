// Package report defines the report document variants produced by the
// technique editors and the assembler that builds initial editor state
// from a project pre-fill, a previously saved document and a checklist
// template.
package report

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"inspectpro/internal/checklist"
	"inspectpro/internal/models"
)

// General is the header block shared by every technique.
type General struct {
	ProjectDocID uint   `json:"projectDocId,omitempty"`
	ProjectCode  string `json:"projectId,omitempty"`
	ReportNum    string `json:"reportNum"`
	Date         string `json:"date"`
	Client       string `json:"client"`
	Platform     string `json:"platform"`
	Tag          string `json:"tag"`
	Equipment    string `json:"equipment"`
	Inspector    string `json:"inspector"`
}

type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// VesselData carries the AUT scan subject geometry and material facts.
type VesselData struct {
	Material      string `json:"material,omitempty"`
	DesignCode    string `json:"designCode,omitempty"`
	NominalWT     string `json:"nominalWt,omitempty"`
	Diameter      string `json:"diameter,omitempty"`
	Length        string `json:"length,omitempty"`
	YearInstalled string `json:"yearInstalled,omitempty"`
}

// AUTMetrics summarizes the corrosion-mapping scan results.
type AUTMetrics struct {
	MinThickness  string `json:"minThickness,omitempty"`
	MaxThickness  string `json:"maxThickness,omitempty"`
	MeanThickness string `json:"meanThickness,omitempty"`
	MinLocation   string `json:"minLocation,omitempty"`
	Coverage      string `json:"coverage,omitempty"`
	Remarks       string `json:"remarks,omitempty"`
}

// VisualSection holds the findings of a Visual or Integrity report.
type VisualSection struct {
	Observations []checklist.Observation `json:"observations"`
}

// AUTSection holds the findings of an AUT / corrosion-mapping report.
type AUTSection struct {
	VesselData                  VesselData              `json:"vesselData"`
	VisualObservations          []checklist.Observation `json:"visualObservations"`
	AuxiliaryObservations       []checklist.Observation `json:"auxiliaryObservations"`
	InstrumentationObservations []checklist.Observation `json:"instrumentationObservations"`
	Metrics                     AUTMetrics              `json:"autMetrics"`
}

// Document is the tagged report union. Technique selects which section
// pointer is populated; the other two stay nil and are omitted on the
// wire.
type Document struct {
	Technique models.Technique `json:"technique"`
	General   General          `json:"general"`

	Visual    *VisualSection `json:"visual,omitempty"`
	AUT       *AUTSection    `json:"aut,omitempty"`
	Integrity *VisualSection `json:"integrity,omitempty"`

	Images     []Image `json:"images,omitempty"`
	Schematics []Image `json:"schematics,omitempty"`

	// Status mirrors the owning project's status; both are written in
	// the same update so they cannot diverge.
	Status models.ProjectStatus `json:"status"`
}

// Observations returns the primary findings list regardless of
// technique (the visual observations for AUT reports).
func (d *Document) Observations() []checklist.Observation {
	switch {
	case d.Visual != nil:
		return d.Visual.Observations
	case d.Integrity != nil:
		return d.Integrity.Observations
	case d.AUT != nil:
		return d.AUT.VisualObservations
	}
	return nil
}

// SetObservations stores the primary findings list on the section
// matching the document's technique, creating the section if needed.
func (d *Document) SetObservations(obs []checklist.Observation) {
	switch d.Technique {
	case models.TechniqueAUT:
		if d.AUT == nil {
			d.AUT = &AUTSection{}
		}
		d.AUT.VisualObservations = obs
	case models.TechniqueIntegrity:
		if d.Integrity == nil {
			d.Integrity = &VisualSection{}
		}
		d.Integrity.Observations = obs
	default:
		if d.Visual == nil {
			d.Visual = &VisualSection{}
		}
		d.Visual.Observations = obs
	}
}

// Classification maps an observation condition to the render-time
// classification used by the printable view.
func Classification(condition string) string {
	if condition == checklist.ConditionNonConformity {
		return "Action Required"
	}
	return "Acceptable"
}

// Decode parses the embedded report column of a project. A nil result
// with nil error means no report has been saved yet.
func Decode(raw datatypes.JSON) (*Document, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode report document: %w", err)
	}
	return &doc, nil
}

// Encode serializes a document for the project's report column.
func Encode(doc *Document) (datatypes.JSON, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode report document: %w", err)
	}
	return datatypes.JSON(raw), nil
}
