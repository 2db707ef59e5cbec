package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"comms-dashboard/internal/config"
	"comms-dashboard/internal/database"
	"comms-dashboard/internal/models"
	"comms-dashboard/internal/session"
	"comms-dashboard/internal/stats"
	"comms-dashboard/internal/ui"
	"comms-dashboard/internal/webhook"
	pkgmodels "comms-dashboard/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	router  *gin.Engine
	issues  *database.IssueRepository
	changes []ui.Tab
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(&config.Config{DBDriver: "sqlite", DBPath: filepath.Join(t.TempDir(), "api.db")})
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	renderer, err := ui.NewRenderer(ui.NewMetrics(reg))
	require.NoError(t, err)

	ts := &testServer{issues: database.NewIssueRepository(db)}
	messages := database.NewMessageRepository(db)
	sessions := session.NewStore(func(_ string, tab ui.Tab) { ts.changes = append(ts.changes, tab) })

	ts.router = NewRouter(Deps{
		Renderer:    renderer,
		Cards:       stats.NewService(ts.issues, messages),
		Messages:    messages,
		Issues:      ts.issues,
		Sessions:    sessions,
		Webhook:     webhook.NewHandler("verify-me", messages, zap.NewNop()),
		Readiness:   config.Readiness{WhatsAppConfigured: true},
		Placeholder: "/static/placeholder.svg",
		Gatherer:    reg,
		Log:         zap.NewNop(),
	})
	return ts
}

func (ts *testServer) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func TestPageServesShellWithEntrance(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, `data-trigger="mount-once"`)
	assert.Contains(t, body, "Open Issues")
	assert.Equal(t, 3, strings.Count(body, "data-tab-trigger data-value"))
	assert.NotEmpty(t, w.Result().Cookies())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestCommunicationsFragmentHasNoShell(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/communications", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<!DOCTYPE html>")
	assert.NotContains(t, w.Body.String(), "data-transition")
}

func TestSetTabPerSession(t *testing.T) {
	ts := newTestServer(t)

	first := ts.do(http.MethodGet, "/api/communications/tab", "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `{"tab":"whatsapp"}`, first.Body.String())
	cookies := first.Result().Cookies()
	require.NotEmpty(t, cookies)

	w := ts.do(http.MethodPost, "/api/communications/tab", `{"tab":"sms"}`, cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []ui.Tab{ui.TabSMS}, ts.changes)

	w = ts.do(http.MethodGet, "/api/communications/tab", "", cookies...)
	assert.JSONEq(t, `{"tab":"sms"}`, w.Body.String())

	w = ts.do(http.MethodGet, "/communications/panel", "", cookies...)
	assert.Contains(t, w.Body.String(), `data-tab="sms"`)

	other := ts.do(http.MethodGet, "/api/communications/tab", "")
	assert.JSONEq(t, `{"tab":"whatsapp"}`, other.Body.String())
}

func TestSetTabRejectsUnknown(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/communications/tab", `{"tab":"fax"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodPost, "/api/communications/tab", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, ts.changes)
}

func TestReadiness(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/communications/readiness", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"whatsapp_configured":true,"sms_configured":false}`, w.Body.String())
}

func TestGalleryFragment(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	withAttachments := &models.Issue{Title: "Screenshots", Attachments: []models.Attachment{{Ref: "a.png"}, {Ref: "b.png"}, {Ref: "c.png"}}}
	require.NoError(t, ts.issues.Create(ctx, withAttachments))
	empty := &models.Issue{Title: "Nothing attached"}
	require.NoError(t, ts.issues.Create(ctx, empty))

	w := ts.do(http.MethodGet, "/issues/"+itoa(withAttachments.ID)+"/attachments", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Attachments (3)")
	assert.Equal(t, 3, strings.Count(w.Body.String(), `class="thumbnail"`))

	w = ts.do(http.MethodGet, "/issues/"+itoa(empty.ID)+"/attachments", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/issues/999/attachments", "").Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/issues/abc/attachments", "").Code)
}

func TestIssueAPI(t *testing.T) {
	ts := newTestServer(t)
	issue := &models.Issue{Title: "Voice drops"}
	require.NoError(t, ts.issues.Create(context.Background(), issue))
	path := "/api/issues/" + itoa(issue.ID)

	w := ts.do(http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got pkgmodels.Issue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Voice drops", got.Title)
	assert.Equal(t, []string{}, got.Attachments)

	w = ts.do(http.MethodPost, path+"/attachments", `{"ref":"call.png"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(http.MethodGet, path, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"call.png"}, got.Attachments)

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/issues/999", "").Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodPost, path+"/attachments", `{}`).Code)
}

func TestStatsAPI(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var cards []pkgmodels.StatCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
	require.Len(t, cards, 4)
	assert.Equal(t, "Open Issues", cards[0].Title)
	assert.Equal(t, "0", cards[0].Value)
}

func TestMetricsAndStatic(t *testing.T) {
	ts := newTestServer(t)
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/", "").Code)

	w := ts.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `comms_dashboard_renders_total{view="layout"} 1`)

	w = ts.do(http.MethodGet, "/static/placeholder.svg", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))

	w = ts.do(http.MethodGet, "/health", "")
	assert.JSONEq(t, `{"status":"ok","ws_clients":0}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(http.MethodOptions, "/api/stats", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestInboundWebhookFeedsStats(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/webhook?hub.mode=subscribe&hub.verify_token=verify-me&hub.challenge=abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", w.Body.String())

	w = ts.do(http.MethodPost, "/webhook", `{"entry":[{"changes":[{"value":{"messages":[{"id":"m1","from":"15550100","type":"text","text":{"body":"ping"}}]}}]}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodGet, "/api/stats", "")
	var cards []pkgmodels.StatCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
	require.Len(t, cards, 4)
	assert.Equal(t, "WhatsApp Messages", cards[1].Title)
	assert.Equal(t, "1", cards[1].Value)

	w = ts.do(http.MethodGet, "/communications/panel", "")
	assert.Contains(t, w.Body.String(), "ping")
}
