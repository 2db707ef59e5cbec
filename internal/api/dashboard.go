package api

import (
	"net/http"

	"comms-dashboard/internal/config"
	"comms-dashboard/internal/dashboard"
	"comms-dashboard/internal/session"
	"comms-dashboard/internal/stats"
	"comms-dashboard/internal/ui"
	pkgmodels "comms-dashboard/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	Renderer  *ui.Renderer
	Cards     dashboard.CardSource
	Messages  dashboard.MessageSource
	Sessions  *session.Store
	Readiness config.Readiness
	Log       *zap.Logger
}

var nav = []ui.NavItem{
	{Label: "Dashboard", Href: "/", Active: true},
	{Label: "Metrics", Href: "/metrics"},
}

func (h *DashboardHandler) communications(c *gin.Context) *dashboard.Communications {
	return &dashboard.Communications{
		Renderer:  h.Renderer,
		Cards:     h.Cards,
		Messages:  h.Messages,
		State:     h.Sessions.For(sessionID(c)),
		Readiness: h.Readiness,
	}
}

// Page serves the full page. Each request is a fresh mount, so the entrance plays once per load.
func (h *DashboardHandler) Page(c *gin.Context) {
	layout := ui.PageLayout{Renderer: h.Renderer, Title: "Communications", Nav: nav}
	shell := ui.NewPageShell(h.Renderer, layout, h.communications(c))

	page, err := shell.Mount().Render(c.Request.Context())
	if err != nil {
		h.Log.Error("Failed to render dashboard page", zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to render dashboard")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// Communications serves the dashboard content without the shell.
func (h *DashboardHandler) Communications(c *gin.Context) {
	html, err := h.communications(c).Render(c.Request.Context())
	if err != nil {
		h.Log.Error("Failed to render communications", zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to render communications")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *DashboardHandler) Panel(c *gin.Context) {
	html, err := h.communications(c).RenderPanel(c.Request.Context())
	if err != nil {
		h.Log.Error("Failed to render tab panel", zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to render panel")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *DashboardHandler) SetTab(c *gin.Context) {
	var req pkgmodels.TabChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tab, err := ui.ParseTab(req.Tab)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.communications(c).Selector().Select(tab)
	c.JSON(http.StatusOK, gin.H{"tab": tab})
}

func (h *DashboardHandler) GetTab(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tab": h.Sessions.For(sessionID(c)).Current()})
}

func (h *DashboardHandler) GetReadiness(c *gin.Context) {
	c.JSON(http.StatusOK, h.Readiness)
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	cards, err := h.Cards.Cards(c.Request.Context())
	if err != nil {
		h.Log.Error("Failed to compute stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats.JSON(stats.Render(cards)))
}
