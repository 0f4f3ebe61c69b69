package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"inspectpro/internal/database"
	"inspectpro/internal/models"
	"inspectpro/internal/report"
	"inspectpro/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetEditorState assembles the initial editor document for a project:
// project pre-fill identity over the saved report (when one exists)
// over a fresh checklist template, with saved observations merged back
// by sn so a returned report reopens with its prior answers.
func GetEditorState(c *gin.Context) {
	p, err := database.FindProjectByRef(database.DB, database.ParseRef(c.Param("ref")))
	if err != nil {
		if errors.Is(err, database.ErrProjectNotFound) {
			notFound(c, err.Error())
			return
		}
		serverErr(c, err)
		return
	}

	existing, err := report.Decode(p.Report)
	if err != nil {
		serverErr(c, err)
		return
	}

	doc := report.Assemble(report.Prefill{
		Project: p,
		Date:    time.Now().Format("2006-01-02"),
	}, existing)

	c.JSON(http.StatusOK, gin.H{
		"project":    p,
		"report":     doc,
		"returnNote": p.ReturnNote,
	})
}

type reportActionRequest struct {
	Action     workflow.Action  `json:"action"`
	Report     *report.Document `json:"report,omitempty"`
	ReturnNote string           `json:"returnNote,omitempty"`
}

// SaveReport is the single status-changing write of the workflow. The
// resulting status, the embedded report document (whose status marker
// is set to the same value) and the workflow bookkeeping fields are
// written in one update so they cannot diverge.
func SaveReport(c *gin.Context) {
	p, err := database.FindProjectByRef(database.DB, database.ParseRef(c.Param("ref")))
	if err != nil {
		if errors.Is(err, database.ErrProjectNotFound) {
			notFound(c, err.Error())
			return
		}
		serverErr(c, err)
		return
	}

	var req reportActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badReq(c, "invalid request body")
		return
	}
	if !workflow.ValidActions[req.Action] || req.Action == workflow.ActionCreate {
		badReq(c, "invalid action")
		return
	}

	uid, role := sessionIdentity(c)

	next, err := workflow.Next(role, p.Status, req.Action)
	if err != nil {
		forbidden(c, err.Error())
		return
	}

	updates := map[string]interface{}{
		"status": next,
	}

	doc := req.Report
	switch req.Action {
	case workflow.ActionSaveDraft, workflow.ActionSubmit:
		if doc == nil {
			badReq(c, "report document is required")
			return
		}
	default:
		// confirm / return / complete act on the stored document
		if doc == nil {
			doc, err = report.Decode(p.Report)
			if err != nil {
				serverErr(c, err)
				return
			}
		}
	}

	if doc != nil {
		doc.General.ProjectDocID = p.ID
		doc.General.ProjectCode = p.Code
		if doc.General.ReportNum == "" {
			doc.General.ReportNum = newReportNum(p.Technique)
		}
		doc.Status = next

		raw, err := report.Encode(doc)
		if err != nil {
			serverErr(c, err)
			return
		}
		updates["report"] = raw
		updates["report_num"] = doc.General.ReportNum
	}

	var user models.User
	database.DB.First(&user, uid)

	switch req.Action {
	case workflow.ActionSubmit:
		// a resubmission supersedes the correction request
		updates["return_note"] = ""
	case workflow.ActionConfirm:
		now := time.Now()
		updates["confirmed_by"] = user.DisplayName
		updates["confirmed_at"] = &now
	case workflow.ActionReturn:
		if strings.TrimSpace(req.ReturnNote) == "" {
			badReq(c, "returnNote is required when returning a report")
			return
		}
		updates["return_note"] = strings.TrimSpace(req.ReturnNote)
	}

	if err := database.DB.Model(&models.Project{}).Where("id = ?", p.ID).Updates(updates).Error; err != nil {
		serverErr(c, err)
		return
	}

	database.Audit(uid, "project", p.ID, "status_change",
		fmt.Sprintf("%s: %s -> %s", req.Action, p.Status, next))

	c.JSON(http.StatusOK, gin.H{
		"projectId": p.Code,
		"status":    next,
	})
}

func newReportNum(t models.Technique) string {
	prefix := "RPT"
	switch t {
	case models.TechniqueVisual:
		prefix = "VI"
	case models.TechniqueAUT:
		prefix = "AUT"
	case models.TechniqueIntegrity:
		prefix = "IC"
	}
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(uuid.NewString()[:8]))
}
