// Package checklist resolves equipment categories to the observation
// templates that seed a new report. Resolution is a pure lookup; the
// serial numbers are stable per category so saved notes and photo
// references can be matched back to their line items by sn after a
// correction round-trip.
package checklist

import "inspectpro/internal/models"

// Observation is one checklist line item.
type Observation struct {
	SN        string `json:"sn"`
	Component string `json:"component"`
	Condition string `json:"condition"`
	Notes     string `json:"notes"`
	PhotoRef  string `json:"photoRef"`
}

const (
	ConditionSatisfactory  = "Satisfactory"
	ConditionNonConformity = "Non-Conformity"
)

func item(sn, component string) Observation {
	return Observation{SN: sn, Component: component, Condition: ConditionSatisfactory}
}

var templates = map[string][]Observation{
	models.CategoryPressureVessel: {
		item("3.1.1", "Shell external surface"),
		item("3.1.2", "Head / end cap external surface"),
		item("3.1.3", "External coating / painting"),
		item("3.1.4", "Insulation and cladding"),
		item("3.2.1", "Nozzles and reinforcement pads"),
		item("3.2.2", "Manway and davit"),
		item("3.2.3", "Flanged joints and fasteners"),
		item("3.3.1", "Support skirt / saddle"),
		item("3.3.2", "Anchor bolts and foundation"),
		item("3.3.3", "Earthing connection"),
		item("3.4.1", "Relief valve and fittings"),
		item("3.4.2", "Gauges and instrumentation tappings"),
		item("3.4.3", "Nameplate and markings"),
	},
	models.CategoryPiping: {
		item("3.1.1", "Pipe external surface"),
		item("3.1.2", "External coating / painting"),
		item("3.1.3", "Insulation and cladding"),
		item("3.2.1", "Flanged joints and fasteners"),
		item("3.2.2", "Welded joints"),
		item("3.2.3", "Branch connections and fittings"),
		item("3.3.1", "Pipe supports and shoes"),
		item("3.3.2", "Clamps, guides and anchors"),
		item("3.3.3", "Vibration and movement indications"),
		item("3.4.1", "Valves and actuators"),
		item("3.4.2", "Line markings and identification"),
	},
	models.CategoryStorageTank: {
		item("3.1.1", "Shell course external surface"),
		item("3.1.2", "External coating / painting"),
		item("3.1.3", "Roof plates and structure"),
		item("3.2.1", "Shell nozzles and manways"),
		item("3.2.2", "Roof fittings and vents"),
		item("3.2.3", "Stairway, handrails and platforms"),
		item("3.3.1", "Annular ring and chime area"),
		item("3.3.2", "Foundation and settlement"),
		item("3.3.3", "Earthing connection"),
		item("3.4.1", "Gauging and level instruments"),
		item("3.4.2", "Nameplate and markings"),
	},
	models.CategoryHeatExchanger: {
		item("3.1.1", "Shell external surface"),
		item("3.1.2", "Channel / bonnet external surface"),
		item("3.1.3", "External coating / painting"),
		item("3.2.1", "Nozzles and reinforcement pads"),
		item("3.2.2", "Girth flanges and fasteners"),
		item("3.3.1", "Saddle supports and sliding plates"),
		item("3.3.2", "Anchor bolts and foundation"),
		item("3.4.1", "Relief devices and tappings"),
		item("3.4.2", "Nameplate and markings"),
	},
	models.CategoryPigTrap: {
		item("3.1.1", "Barrel external surface"),
		item("3.1.2", "External coating / painting"),
		item("3.2.1", "Closure door and locking mechanism"),
		item("3.2.2", "Kicker / bypass connections"),
		item("3.2.3", "Flanged joints and fasteners"),
		item("3.3.1", "Supports and foundation"),
		item("3.4.1", "Pressure indication and vents"),
		item("3.4.2", "Nameplate and markings"),
	},
}

// defaultTemplate seeds reports for unrecognized or missing categories.
var defaultTemplate = []Observation{
	item("3.1.1", "General external surface"),
	item("3.1.2", "External coating / painting"),
	item("3.2.1", "Connections and fasteners"),
	item("3.3.1", "Supports and foundation"),
}

// Resolve returns the observation template registered for category, or
// the generic default when the category is empty or unknown. The result
// is always non-empty and is a copy the caller may mutate.
func Resolve(category string) []Observation {
	tpl, ok := templates[category]
	if !ok {
		tpl = defaultTemplate
	}
	out := make([]Observation, len(tpl))
	copy(out, tpl)
	return out
}

// Categories lists the registered category keys.
func Categories() []string {
	out := make([]string, 0, len(templates))
	for k := range templates {
		out = append(out, k)
	}
	return out
}

// Merge overlays previously saved observations onto a freshly resolved
// template. Items are matched by sn: a saved item replaces the template
// item with the same sn, so notes, conditions and photo references
// survive a return-for-correction round-trip. Saved items whose sn is
// not in the template (e.g. from an older template revision) are
// appended after the template items in their saved order.
func Merge(saved, template []Observation) []Observation {
	if len(saved) == 0 {
		return template
	}

	bySN := make(map[string]Observation, len(saved))
	for _, o := range saved {
		bySN[o.SN] = o
	}

	out := make([]Observation, 0, len(template)+len(saved))
	seen := make(map[string]bool, len(template))
	for _, t := range template {
		if s, ok := bySN[t.SN]; ok {
			out = append(out, s)
		} else {
			out = append(out, t)
		}
		seen[t.SN] = true
	}
	for _, s := range saved {
		if !seen[s.SN] {
			out = append(out, s)
		}
	}
	return out
}
