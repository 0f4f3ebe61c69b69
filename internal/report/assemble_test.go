package report

import (
	"testing"

	"inspectpro/internal/checklist"
	"inspectpro/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visualProject() *models.Project {
	p := &models.Project{
		Code:              "PRJ-4242",
		Name:              "Separator external inspection",
		ClientName:        "Acme",
		LocationName:      "Platform A",
		EquipmentTag:      "V-101",
		EquipmentCategory: models.CategoryPressureVessel,
		InspectorName:     "J. Doe",
		Technique:         models.TechniqueVisual,
		Status:            models.StatusForwarded,
	}
	p.ID = 7
	return p
}

func TestAssembleFreshReportSeedsTemplate(t *testing.T) {
	doc := Assemble(Prefill{Project: visualProject(), Date: "2026-09-01"}, nil)

	require.NotNil(t, doc.Visual)
	template := checklist.Resolve(models.CategoryPressureVessel)
	assert.Len(t, doc.Visual.Observations, len(template))

	assert.Equal(t, "Acme", doc.General.Client)
	assert.Equal(t, "Platform A", doc.General.Platform)
	assert.Equal(t, "V-101", doc.General.Tag)
	assert.Equal(t, "PRJ-4242", doc.General.ProjectCode)
	assert.Equal(t, uint(7), doc.General.ProjectDocID)
	assert.Equal(t, "2026-09-01", doc.General.Date)
	assert.Equal(t, models.StatusForwarded, doc.Status)
}

// Pre-fill identity fields override stale copies inside an existing
// report; the existing findings survive.
func TestAssemblePrefillIdentityWins(t *testing.T) {
	existing := &Document{
		Technique: models.TechniqueVisual,
		General: General{
			Client:    "Old Client Name",
			Tag:       "OLD-TAG",
			Date:      "2026-01-15",
			ReportNum: "VI-AAAA1111",
		},
	}
	existing.SetObservations([]checklist.Observation{
		{SN: "3.1.1", Component: "Shell external surface", Condition: checklist.ConditionNonConformity, Notes: "crack found"},
	})

	doc := Assemble(Prefill{Project: visualProject(), Date: "2026-09-01"}, existing)

	assert.Equal(t, "Acme", doc.General.Client)
	assert.Equal(t, "V-101", doc.General.Tag)
	// report's own fields stay
	assert.Equal(t, "2026-01-15", doc.General.Date)
	assert.Equal(t, "VI-AAAA1111", doc.General.ReportNum)

	obs := doc.Observations()
	require.NotEmpty(t, obs)
	assert.Equal(t, "3.1.1", obs[0].SN)
	assert.Equal(t, "crack found", obs[0].Notes)
	// template items the inspector never touched are still present
	assert.Greater(t, len(obs), 1)
}

func TestAssembleEmptyExistingObservationsUseTemplate(t *testing.T) {
	existing := &Document{Technique: models.TechniqueVisual}

	doc := Assemble(Prefill{Project: visualProject(), Date: "2026-09-01"}, existing)
	template := checklist.Resolve(models.CategoryPressureVessel)
	assert.Len(t, doc.Observations(), len(template))
}

func TestAssembleAUTUsesVisualObservationsSlot(t *testing.T) {
	p := visualProject()
	p.Technique = models.TechniqueAUT

	doc := Assemble(Prefill{Project: p, Date: "2026-09-01"}, nil)
	require.NotNil(t, doc.AUT)
	assert.Nil(t, doc.Visual)
	assert.NotEmpty(t, doc.AUT.VisualObservations)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := Assemble(Prefill{Project: visualProject(), Date: "2026-09-01"}, nil)
	doc.Status = models.StatusPending

	raw, err := Encode(doc)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, doc.General, got.General)
	assert.Equal(t, len(doc.Observations()), len(got.Observations()))
}

func TestDecodeEmptyColumn(t *testing.T) {
	got, err := Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClassification(t *testing.T) {
	assert.Equal(t, "Action Required", Classification(checklist.ConditionNonConformity))
	assert.Equal(t, "Acceptable", Classification(checklist.ConditionSatisfactory))
	assert.Equal(t, "Acceptable", Classification(""))
}
