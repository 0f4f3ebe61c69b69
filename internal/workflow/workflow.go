// Package workflow is the single source of truth for the project
// lifecycle: which roles may take which actions in which status, and
// what status results. Handlers and the capabilities endpoint both call
// into this table instead of re-deriving legal transitions per screen.
package workflow

import (
	"fmt"

	"inspectpro/internal/models"
)

type Action string

const (
	ActionCreate    Action = "create"
	ActionSaveDraft Action = "save_draft"
	ActionSubmit    Action = "submit"
	ActionConfirm   Action = "confirm"
	ActionReturn    Action = "return"
	ActionComplete  Action = "complete"
)

var ValidActions = map[Action]bool{
	ActionCreate:    true,
	ActionSaveDraft: true,
	ActionSubmit:    true,
	ActionConfirm:   true,
	ActionReturn:    true,
	ActionComplete:  true,
}

// Actions is the fixed order used when listing capabilities.
var Actions = []Action{
	ActionCreate,
	ActionSaveDraft,
	ActionSubmit,
	ActionConfirm,
	ActionReturn,
	ActionComplete,
}

type rule struct {
	from  models.ProjectStatus
	roles map[models.UserRole]models.ProjectStatus // role -> resulting status
}

// transitions encodes the lifecycle table. Save-draft is handled
// separately because it never changes status.
var transitions = map[Action][]rule{
	ActionSubmit: {
		{
			from: models.StatusForwarded,
			roles: map[models.UserRole]models.ProjectStatus{
				models.RoleInspector:     models.StatusPending,
				models.RoleLeadInspector: models.StatusCompleted,
			},
		},
		{
			// Integrity Check reports start life as drafts.
			from: models.StatusDraft,
			roles: map[models.UserRole]models.ProjectStatus{
				models.RoleInspector:     models.StatusPending,
				models.RoleLeadInspector: models.StatusCompleted,
			},
		},
	},
	ActionConfirm: {
		{
			from: models.StatusPending,
			roles: map[models.UserRole]models.ProjectStatus{
				models.RoleSupervisor:    models.StatusConfirmed,
				models.RoleLeadInspector: models.StatusConfirmed,
				models.RoleManager:       models.StatusConfirmed,
				models.RoleAdmin:         models.StatusConfirmed,
			},
		},
	},
	ActionReturn: {
		{
			from: models.StatusPending,
			roles: map[models.UserRole]models.ProjectStatus{
				models.RoleSupervisor:    models.StatusForwarded,
				models.RoleLeadInspector: models.StatusForwarded,
				models.RoleManager:       models.StatusForwarded,
			},
		},
	},
	ActionComplete: {
		{
			from: models.StatusConfirmed,
			roles: map[models.UserRole]models.ProjectStatus{
				models.RoleManager: models.StatusCompleted,
				models.RoleAdmin:   models.StatusCompleted,
			},
		},
	},
}

// draftRoles may persist report content without advancing status.
var draftRoles = map[models.UserRole]bool{
	models.RoleInspector:     true,
	models.RoleLeadInspector: true,
	models.RoleSupervisor:    true,
	models.RoleManager:       true,
}

// draftStatuses are the statuses in which a report is still editable.
var draftStatuses = map[models.ProjectStatus]bool{
	models.StatusDraft:     true,
	models.StatusForwarded: true,
}

// Can reports whether role may take action on a project currently in
// status from. ActionCreate is status-less and admin-only.
func Can(role models.UserRole, from models.ProjectStatus, action Action) bool {
	switch action {
	case ActionCreate:
		return role == models.RoleAdmin
	case ActionSaveDraft:
		return draftRoles[role] && draftStatuses[from]
	}

	for _, r := range transitions[action] {
		if r.from != from {
			continue
		}
		if _, ok := r.roles[role]; ok {
			return true
		}
	}
	return false
}

// Next returns the status resulting from role taking action in status
// from. For save_draft the status is returned unchanged. The error is
// non-nil when the transition is not permitted.
func Next(role models.UserRole, from models.ProjectStatus, action Action) (models.ProjectStatus, error) {
	if !ValidActions[action] {
		return from, fmt.Errorf("unknown action %q", action)
	}
	if action == ActionCreate {
		if role != models.RoleAdmin {
			return from, fmt.Errorf("role %q may not create projects", role)
		}
		return models.StatusForwarded, nil
	}
	if action == ActionSaveDraft {
		if !Can(role, from, action) {
			return from, fmt.Errorf("role %q may not save a draft in status %q", role, from)
		}
		return from, nil
	}

	for _, r := range transitions[action] {
		if r.from != from {
			continue
		}
		if next, ok := r.roles[role]; ok {
			return next, nil
		}
	}
	return from, fmt.Errorf("role %q may not %s a project in status %q", role, action, from)
}

// Allowed lists the actions role may take on a project in status from,
// in stable order. Used by the capabilities endpoint so button
// enablement and server-side gating share one rule source.
func Allowed(role models.UserRole, from models.ProjectStatus) []Action {
	var out []Action
	for _, a := range Actions {
		if a == ActionCreate {
			continue
		}
		if Can(role, from, a) {
			out = append(out, a)
		}
	}
	return out
}

// Terminal reports whether no action by any role can change status.
func Terminal(status models.ProjectStatus) bool {
	return status == models.StatusCompleted
}
