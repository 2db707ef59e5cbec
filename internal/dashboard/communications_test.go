package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"comms-dashboard/internal/config"
	"comms-dashboard/internal/models"
	"comms-dashboard/internal/session"
	"comms-dashboard/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCards []ui.StatCard

func (s staticCards) Cards(context.Context) ([]ui.StatCard, error) { return s, nil }

type channelMessages struct {
	byChannel map[models.Channel][]models.Message
	err       error
}

func (m channelMessages) Recent(_ context.Context, ch models.Channel, _ int) ([]models.Message, error) {
	return m.byChannel[ch], m.err
}

func newCommunications(t *testing.T, state ui.TabState, messages MessageSource) *Communications {
	t.Helper()
	r, err := ui.NewRenderer(nil)
	require.NoError(t, err)
	return &Communications{
		Renderer: r,
		Cards: staticCards{
			{Title: "Open Issues", Value: ui.IntValue(42)},
			{Title: "SMS Messages", Value: ui.IntValue(19), Trend: ui.Some(ui.Trend{Value: -5})},
		},
		Messages:  messages,
		State:     state,
		Readiness: config.Readiness{WhatsAppConfigured: true},
	}
}

func TestCommunicationsRender(t *testing.T) {
	store := session.NewStore(nil)
	state := store.For("s1")
	state.SetTab(ui.TabSMS)

	c := newCommunications(t, state, channelMessages{byChannel: map[models.Channel][]models.Message{
		models.ChannelSMS: {{Recipient: "+15550100", Content: "ping", Status: "delivered"}},
	}})

	html, err := c.Render(context.Background())
	require.NoError(t, err)
	out := string(html)

	assert.Contains(t, out, "Open Issues")
	assert.Contains(t, out, "↓ 5%")
	assert.Equal(t, 3, strings.Count(out, "data-tab-trigger"))
	assert.Contains(t, out, `data-tab="sms"`)
	assert.Contains(t, out, "SMS Testing")
	assert.Contains(t, out, "ping")
}

func TestCommunicationsEmptyPanel(t *testing.T) {
	c := newCommunications(t, session.NewStore(nil).For("s1"), channelMessages{})

	html, err := c.RenderPanel(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(html), `data-tab="whatsapp"`)
	assert.Contains(t, string(html), "No messages yet.")
}

func TestCommunicationsSelectorWritesState(t *testing.T) {
	state := session.NewStore(nil).For("s1")
	c := newCommunications(t, state, channelMessages{})

	c.Selector().Select(ui.TabVoice)

	assert.Equal(t, ui.TabVoice, state.Current())
	assert.True(t, c.Selector().WhatsAppConfigured)
	assert.False(t, c.Selector().SMSConfigured)
}

func TestCommunicationsPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	c := newCommunications(t, session.NewStore(nil).For("s1"), channelMessages{err: boom})

	_, err := c.Render(context.Background())
	assert.ErrorIs(t, err, boom)
}
