package api

import (
	"net/http"

	"comms-dashboard/internal/config"
	"comms-dashboard/internal/dashboard"
	"comms-dashboard/internal/session"
	"comms-dashboard/internal/ui"
	"comms-dashboard/internal/webhook"
	"comms-dashboard/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="96" height="96" viewBox="0 0 96 96"><rect width="96" height="96" fill="#e2e8f0"/><path d="M24 68l16-20 12 14 8-10 12 16z" fill="#94a3b8"/><circle cx="62" cy="34" r="6" fill="#94a3b8"/></svg>`

type Deps struct {
	Renderer    *ui.Renderer
	Cards       dashboard.CardSource
	Messages    dashboard.MessageSource
	Issues      IssueStore
	Sessions    *session.Store
	Hub         *ws.Hub
	Webhook     *webhook.Handler
	Readiness   config.Readiness
	Placeholder string
	Gatherer    prometheus.Gatherer
	Log         *zap.Logger
}

func NewRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(d.Log), CORS())
	r.SetHTMLTemplate(d.Renderer.Template())

	dashboardHandler := &DashboardHandler{
		Renderer:  d.Renderer,
		Cards:     d.Cards,
		Messages:  d.Messages,
		Sessions:  d.Sessions,
		Readiness: d.Readiness,
		Log:       d.Log,
	}
	issueHandler := &IssueHandler{Issues: d.Issues, Placeholder: d.Placeholder, Log: d.Log}

	r.GET("/health", func(c *gin.Context) {
		clients := 0
		if d.Hub != nil {
			clients = d.Hub.ClientCount()
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "ws_clients": clients})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	r.GET("/static/placeholder.svg", func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=86400")
		c.Data(http.StatusOK, "image/svg+xml", []byte(placeholderSVG))
	})
	if d.Hub != nil {
		r.GET("/ws", func(c *gin.Context) { d.Hub.ServeWs(c.Writer, c.Request) })
	}

	// Webhook Routes
	if d.Webhook != nil {
		r.GET("/webhook", d.Webhook.VerifyWebhook)
		r.POST("/webhook", d.Webhook.HandleMessage)
	}

	// Pages and fragments
	pages := r.Group("/", Session())
	{
		pages.GET("", dashboardHandler.Page)
		pages.GET("communications", dashboardHandler.Communications)
		pages.GET("communications/panel", dashboardHandler.Panel)
		pages.GET("issues/:id/attachments", issueHandler.Gallery)
	}

	// Dashboard API Routes
	apiGroup := r.Group("/api", Session())
	{
		apiGroup.GET("/communications/tab", dashboardHandler.GetTab)
		apiGroup.POST("/communications/tab", dashboardHandler.SetTab)
		apiGroup.GET("/communications/readiness", dashboardHandler.GetReadiness)
		apiGroup.GET("/stats", dashboardHandler.GetStats)

		apiGroup.GET("/issues/:id", issueHandler.GetIssue)
		apiGroup.POST("/issues/:id/attachments", issueHandler.AddAttachment)
	}

	return r
}
