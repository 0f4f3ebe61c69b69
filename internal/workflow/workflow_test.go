package workflow

import (
	"testing"

	"inspectpro/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIsAdminOnly(t *testing.T) {
	next, err := Next(models.RoleAdmin, "", ActionCreate)
	require.NoError(t, err)
	assert.Equal(t, models.StatusForwarded, next)

	for _, role := range []models.UserRole{
		models.RoleManager,
		models.RoleSupervisor,
		models.RoleLeadInspector,
		models.RoleInspector,
	} {
		_, err := Next(role, "", ActionCreate)
		assert.Error(t, err, "role %s must not create projects", role)
	}
}

func TestSaveDraftNeverAdvancesStatus(t *testing.T) {
	status := models.StatusForwarded
	for i := 0; i < 5; i++ {
		next, err := Next(models.RoleInspector, status, ActionSaveDraft)
		require.NoError(t, err)
		assert.Equal(t, models.StatusForwarded, next)
		status = next
	}
}

func TestSaveDraftBlockedAfterSubmission(t *testing.T) {
	for _, from := range []models.ProjectStatus{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusCompleted,
	} {
		_, err := Next(models.RoleInspector, from, ActionSaveDraft)
		assert.Error(t, err, "draft save must be rejected in status %q", from)
	}
}

func TestInspectorSubmitGoesToPending(t *testing.T) {
	next, err := Next(models.RoleInspector, models.StatusForwarded, ActionSubmit)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, next)
}

func TestLeadInspectorSubmitShortcutsToCompleted(t *testing.T) {
	next, err := Next(models.RoleLeadInspector, models.StatusForwarded, ActionSubmit)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, next)
}

func TestSubmitFromDraft(t *testing.T) {
	next, err := Next(models.RoleInspector, models.StatusDraft, ActionSubmit)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, next)
}

func TestConfirmRoles(t *testing.T) {
	for _, role := range []models.UserRole{
		models.RoleSupervisor,
		models.RoleLeadInspector,
		models.RoleManager,
		models.RoleAdmin,
	} {
		next, err := Next(role, models.StatusPending, ActionConfirm)
		require.NoError(t, err, "role %s must confirm", role)
		assert.Equal(t, models.StatusConfirmed, next)
	}

	_, err := Next(models.RoleInspector, models.StatusPending, ActionConfirm)
	assert.Error(t, err)
}

func TestReturnRevertsToForwarded(t *testing.T) {
	for _, role := range []models.UserRole{
		models.RoleSupervisor,
		models.RoleLeadInspector,
		models.RoleManager,
	} {
		next, err := Next(role, models.StatusPending, ActionReturn)
		require.NoError(t, err)
		assert.Equal(t, models.StatusForwarded, next)
	}
}

func TestAdminCannotReturn(t *testing.T) {
	_, err := Next(models.RoleAdmin, models.StatusPending, ActionReturn)
	assert.Error(t, err)
}

func TestCompleteFromConfirmed(t *testing.T) {
	for _, role := range []models.UserRole{models.RoleManager, models.RoleAdmin} {
		next, err := Next(role, models.StatusConfirmed, ActionComplete)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, next)
	}

	_, err := Next(models.RoleSupervisor, models.StatusConfirmed, ActionComplete)
	assert.Error(t, err)
}

func TestCompletedIsTerminal(t *testing.T) {
	assert.True(t, Terminal(models.StatusCompleted))

	for _, role := range []models.UserRole{
		models.RoleAdmin,
		models.RoleManager,
		models.RoleSupervisor,
		models.RoleLeadInspector,
		models.RoleInspector,
	} {
		for _, action := range Actions {
			if action == ActionCreate {
				continue
			}
			assert.False(t, Can(role, models.StatusCompleted, action),
				"role %s action %s must be blocked on a completed project", role, action)
		}
	}
}

// Every reachable transition must be an edge of the documented table.
func TestNoUndocumentedTransitions(t *testing.T) {
	type edge struct {
		from models.ProjectStatus
		to   models.ProjectStatus
	}
	legal := map[edge]bool{
		{models.StatusDraft, models.StatusPending}:       true,
		{models.StatusDraft, models.StatusCompleted}:     true,
		{models.StatusForwarded, models.StatusPending}:   true,
		{models.StatusForwarded, models.StatusCompleted}: true,
		{models.StatusPending, models.StatusConfirmed}:   true,
		{models.StatusPending, models.StatusForwarded}:   true,
		{models.StatusConfirmed, models.StatusCompleted}: true,
	}

	statuses := []models.ProjectStatus{
		models.StatusDraft,
		models.StatusForwarded,
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusCompleted,
	}
	roles := []models.UserRole{
		models.RoleAdmin,
		models.RoleManager,
		models.RoleSupervisor,
		models.RoleLeadInspector,
		models.RoleInspector,
	}

	for _, from := range statuses {
		for _, role := range roles {
			for _, action := range Actions {
				if action == ActionCreate || action == ActionSaveDraft {
					continue
				}
				next, err := Next(role, from, action)
				if err != nil {
					continue
				}
				if !legal[edge{from, next}] {
					t.Fatalf("undocumented transition %q -> %q via %s as %s", from, next, action, role)
				}
			}
		}
	}
}

func TestAllowedMatchesCan(t *testing.T) {
	allowed := Allowed(models.RoleInspector, models.StatusForwarded)
	assert.ElementsMatch(t, []Action{ActionSaveDraft, ActionSubmit}, allowed)

	allowed = Allowed(models.RoleSupervisor, models.StatusPending)
	assert.ElementsMatch(t, []Action{ActionConfirm, ActionReturn}, allowed)

	allowed = Allowed(models.RoleInspector, models.StatusPending)
	assert.Empty(t, allowed)
}
