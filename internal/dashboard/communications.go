// Package dashboard is the communications dashboard content wrapped by the page shell.
package dashboard

import (
	"context"
	"html/template"

	"comms-dashboard/internal/config"
	"comms-dashboard/internal/models"
	"comms-dashboard/internal/stats"
	"comms-dashboard/internal/ui"
)

const recentLimit = 10

type CardSource interface {
	Cards(ctx context.Context) ([]ui.StatCard, error)
}

type MessageSource interface {
	Recent(ctx context.Context, channel models.Channel, limit int) ([]models.Message, error)
}

// Communications renders the stat cards, the channel tab selector and the
// panel for the session's current tab.
type Communications struct {
	Renderer  *ui.Renderer
	Cards     CardSource
	Messages  MessageSource
	State     ui.TabState
	Readiness config.Readiness
}

type Panel struct {
	Tab      ui.Tab
	Title    string
	Messages []models.Message
}

type view struct {
	Cards []ui.StatCardView
	Tabs  ui.TabSelectorView
	Panel Panel
}

var panelTitles = map[ui.Tab]string{
	ui.TabWhatsApp: "WhatsApp Testing",
	ui.TabSMS:      "SMS Testing",
	ui.TabVoice:    "Voice Testing",
}

func (c *Communications) Selector() ui.TabSelector {
	return ui.BindTabSelector(c.State, c.Readiness.WhatsAppConfigured, c.Readiness.SMSConfigured)
}

func (c *Communications) Render(ctx context.Context) (template.HTML, error) {
	cards, err := c.Cards.Cards(ctx)
	if err != nil {
		return "", err
	}
	panel, err := c.panel(ctx)
	if err != nil {
		return "", err
	}
	return c.Renderer.Fragment("dashboard", view{
		Cards: stats.Render(cards),
		Tabs:  c.Selector().Render(),
		Panel: panel,
	})
}

// RenderPanel renders only the panel of the current tab.
func (c *Communications) RenderPanel(ctx context.Context) (template.HTML, error) {
	panel, err := c.panel(ctx)
	if err != nil {
		return "", err
	}
	return c.Renderer.Fragment("panel", panel)
}

func (c *Communications) panel(ctx context.Context) (Panel, error) {
	tab := c.State.Current()
	messages, err := c.Messages.Recent(ctx, models.Channel(tab), recentLimit)
	if err != nil {
		return Panel{}, err
	}
	return Panel{Tab: tab, Title: panelTitles[tab], Messages: messages}, nil
}
