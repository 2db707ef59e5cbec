package webhook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comms-dashboard/internal/models"
	pkgmodels "comms-dashboard/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorder struct {
	messages []*models.Message
	err      error
}

func (r *recorder) Create(_ context.Context, msg *models.Message) error {
	if r.err != nil {
		return r.err
	}
	r.messages = append(r.messages, msg)
	return nil
}

func newRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/webhook", h.VerifyWebhook)
	r.POST("/webhook", h.HandleMessage)
	return r
}

func TestVerifyWebhook(t *testing.T) {
	r := newRouter(NewHandler("secret", &recorder{}, zap.NewNop()))

	tests := []struct {
		name   string
		query  string
		status int
		body   string
	}{
		{"valid", "hub.mode=subscribe&hub.verify_token=secret&hub.challenge=42", http.StatusOK, "42"},
		{"wrong token", "hub.mode=subscribe&hub.verify_token=nope&hub.challenge=42", http.StatusForbidden, ""},
		{"missing params", "", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/webhook?"+tt.query, nil))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestVerifyWebhookWithoutConfiguredToken(t *testing.T) {
	r := newRouter(NewHandler("", &recorder{}, zap.NewNop()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/webhook?hub.mode=subscribe&hub.verify_token=x", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandleMessageLogsInbound(t *testing.T) {
	rec := &recorder{}
	r := newRouter(NewHandler("secret", rec, zap.NewNop()))

	body := `{"object":"whatsapp_business_account","entry":[{"changes":[{"value":{"messages":[
		{"id":"wamid.1","from":"15550100","type":"text","text":{"body":"hi"}},
		{"id":"wamid.2","from":"15550100","type":"image","image":{"id":"media-1","caption":"receipt"}}
	]}}]}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, rec.messages, 2)
	assert.Equal(t, models.ChannelWhatsApp, rec.messages[0].Channel)
	assert.Equal(t, "inbound", rec.messages[0].Direction)
	assert.Equal(t, "hi", rec.messages[0].Content)
	assert.Equal(t, "[image]:media-1:receipt", rec.messages[1].Content)
}

func TestHandleMessageStoreFailureStillAcks(t *testing.T) {
	r := newRouter(NewHandler("secret", &recorder{err: errors.New("db down")}, zap.NewNop()))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"entry":[{"changes":[{"value":{"messages":[{"from":"1","type":"text","text":{"body":"x"}}]}}]}]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleMessageRejectsBadJSON(t *testing.T) {
	r := newRouter(NewHandler("secret", &recorder{}, zap.NewNop()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContent(t *testing.T) {
	assert.Equal(t, "[audio]:a1", Content(pkgmodels.WebhookMessage{Type: "audio", Audio: &pkgmodels.WebhookMedia{ID: "a1"}}))
	assert.Equal(t, "[document]:d1:report.pdf", Content(pkgmodels.WebhookMessage{Type: "document", Document: &pkgmodels.WebhookMedia{ID: "d1", Filename: "report.pdf"}}))
	assert.Equal(t, "[sticker]", Content(pkgmodels.WebhookMessage{Type: "sticker"}))
	assert.Equal(t, "[video]", Content(pkgmodels.WebhookMessage{Type: "video"}))
}
