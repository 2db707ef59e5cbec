package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"comms-dashboard/internal/database"
	"comms-dashboard/internal/models"
	"comms-dashboard/internal/ui"
	pkgmodels "comms-dashboard/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IssueStore interface {
	Get(ctx context.Context, id uint) (*models.Issue, error)
	AttachmentRefs(ctx context.Context, id uint) ([]string, error)
	AddAttachment(ctx context.Context, id uint, ref string) (*models.Attachment, error)
}

type IssueHandler struct {
	Issues      IssueStore
	Placeholder string
	Log         *zap.Logger
}

func parseIssueID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return 0, false
	}
	return uint(id), true
}

func (h *IssueHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, database.ErrIssueNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}
	h.Log.Error("Issue request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// Gallery renders the attachment gallery fragment; no content when there are no attachments.
func (h *IssueHandler) Gallery(c *gin.Context) {
	id, ok := parseIssueID(c)
	if !ok {
		return
	}
	refs, err := h.Issues.AttachmentRefs(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	view := ui.AttachmentGallery{Attachments: refs, Placeholder: h.Placeholder}.Render()
	if view == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.HTML(http.StatusOK, "gallery", view)
}

func (h *IssueHandler) GetIssue(c *gin.Context) {
	id, ok := parseIssueID(c)
	if !ok {
		return
	}
	issue, err := h.Issues.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	refs := database.Refs(issue.Attachments)
	if refs == nil {
		refs = []string{}
	}
	c.JSON(http.StatusOK, pkgmodels.Issue{
		ID:          issue.ID,
		Title:       issue.Title,
		Status:      issue.Status,
		Attachments: refs,
		CreatedAt:   issue.CreatedAt.Format(time.RFC3339),
	})
}

func (h *IssueHandler) AddAttachment(c *gin.Context) {
	id, ok := parseIssueID(c)
	if !ok {
		return
	}
	var req pkgmodels.AddAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attachment, err := h.Issues.AddAttachment(c.Request.Context(), id, req.Ref)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "Attachment added", "position": attachment.Position})
}
