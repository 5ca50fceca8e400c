package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"community_portal/internal/models"
	"community_portal/internal/store"
)

type IssueStore interface {
	ListIssues(ctx context.Context, f store.IssueFilter) ([]models.Issue, error)
	CreateIssue(ctx context.Context, i *models.Issue) error
}

type IssueController struct {
	store IssueStore
}

func NewIssueController(s IssueStore) *IssueController {
	return &IssueController{store: s}
}

type createIssueInput struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Location    string          `json:"location" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Priority    string          `json:"priority"`
	ReporterID  string          `json:"reporterId" binding:"required"`
	Geometry    json.RawMessage `json:"geometry"`
}

// List handles GET /api/issues.
func (ic *IssueController) List(c *gin.Context) {
	filter := store.IssueFilter{Category: c.Query("category")}
	if raw := c.Query("status"); raw != "" {
		st, err := models.ParseIssueStatus(raw)
		if err != nil {
			badRequest(c, "Invalid status")
			return
		}
		filter.Status = st
	}

	issues, err := ic.store.ListIssues(c.Request.Context(), filter)
	if err != nil {
		fail(c, "ListIssues", "Failed to fetch issues", err)
		return
	}

	out := make([]IssueResponse, 0, len(issues))
	for _, i := range issues {
		out = append(out, toIssueResponse(i))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /api/issues. Reports always start in the reported
// state with no upvotes.
func (ic *IssueController) Create(c *gin.Context) {
	var input createIssueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFailure(c, "CreateIssue", err)
		return
	}

	priority := models.PriorityMedium
	if input.Priority != "" {
		p, err := models.ParsePriority(input.Priority)
		if err != nil {
			badRequest(c, "Invalid priority")
			return
		}
		priority = p
	}

	wkbGeom, err := parsePointGeometry(input.Geometry)
	if err != nil {
		logrus.WithError(err).Debug("CreateIssue: rejected geometry")
		badRequest(c, "Invalid geometry")
		return
	}

	issue := models.Issue{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Category:    input.Category,
		Priority:    priority,
		Geometry:    wkbGeom,
		ReporterID:  input.ReporterID,
	}
	if err := ic.store.CreateIssue(c.Request.Context(), &issue); err != nil {
		fail(c, "CreateIssue", "Failed to report issue", err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"issue_id":    issue.ID,
		"reporter_id": issue.ReporterID,
	}).Info("issue reported")
	c.JSON(http.StatusCreated, toIssueResponse(issue))
}
