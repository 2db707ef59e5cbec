// Package stats turns repository counts into dashboard stat cards.
package stats

import (
	"context"
	"math"
	"time"

	"comms-dashboard/internal/models"
	"comms-dashboard/internal/ui"
	pkgmodels "comms-dashboard/pkg/models"
)

const week = 7 * 24 * time.Hour

type IssueCounter interface {
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountOpenedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type MessageCounter interface {
	CountBetween(ctx context.Context, channel models.Channel, from, to time.Time) (int64, error)
}

type Service struct {
	issues   IssueCounter
	messages MessageCounter
	now      func() time.Time
}

func NewService(issues IssueCounter, messages MessageCounter) *Service {
	return &Service{issues: issues, messages: messages, now: time.Now}
}

type channelCard struct {
	channel models.Channel
	title   string
	icon    ui.Icon
}

var channelCards = []channelCard{
	{models.ChannelWhatsApp, "WhatsApp Messages", ui.Icon{Name: "message-circle", Tone: "text-green-500"}},
	{models.ChannelSMS, "SMS Messages", ui.Icon{Name: "message-square", Tone: "text-blue-500"}},
	{models.ChannelVoice, "Voice Calls", ui.Icon{Name: "phone"}},
}

// Cards returns the open issue card followed by one card per channel.
// Channel cards count the last seven days and trend against the seven before.
func (s *Service) Cards(ctx context.Context) ([]ui.StatCard, error) {
	now := s.now()
	thisWeek, lastWeek := now.Add(-week), now.Add(-2*week)

	open, err := s.issues.CountByStatus(ctx, "open")
	if err != nil {
		return nil, err
	}
	openedNow, err := s.issues.CountOpenedBetween(ctx, thisWeek, now)
	if err != nil {
		return nil, err
	}
	openedBefore, err := s.issues.CountOpenedBetween(ctx, lastWeek, thisWeek)
	if err != nil {
		return nil, err
	}

	cards := make([]ui.StatCard, 0, 1+len(channelCards))
	cards = append(cards, card("Open Issues", open, ui.Icon{Name: "alert-circle"}, openedNow, openedBefore))

	for _, cc := range channelCards {
		current, err := s.messages.CountBetween(ctx, cc.channel, thisWeek, now)
		if err != nil {
			return nil, err
		}
		previous, err := s.messages.CountBetween(ctx, cc.channel, lastWeek, thisWeek)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card(cc.title, current, cc.icon, current, previous))
	}
	return cards, nil
}

func card(title string, value int64, icon ui.Icon, current, previous int64) ui.StatCard {
	c := ui.StatCard{Title: title, Value: ui.IntValue(value), Icon: icon}
	if trend, ok := WeekOverWeek(current, previous); ok {
		c.Trend = ui.Some(trend)
		c.Description = ui.Some("vs last week")
	}
	return c
}

// WeekOverWeek is the percentage change from previous to current, rounded to
// one decimal. There is no trend when previous is zero.
func WeekOverWeek(current, previous int64) (ui.Trend, bool) {
	if previous == 0 {
		return ui.Trend{}, false
	}
	pct := float64(current-previous) / float64(previous) * 100
	pct = math.Round(pct*10) / 10
	return ui.Trend{Value: pct, IsPositive: pct >= 0}, true
}

// JSON converts rendered cards to their API form.
func JSON(views []ui.StatCardView) []pkgmodels.StatCard {
	out := make([]pkgmodels.StatCard, 0, len(views))
	for _, v := range views {
		c := pkgmodels.StatCard{Title: v.Title, Value: v.Value, Icon: v.Icon.Name}
		if v.Secondary != nil {
			c.Description = v.Secondary.Description
			if b := v.Secondary.Badge; b != nil {
				c.TrendGlyph = b.Glyph
				c.TrendText = b.Text
				c.TrendTone = string(b.Tone)
			}
		}
		out = append(out, c)
	}
	return out
}

func Render(cards []ui.StatCard) []ui.StatCardView {
	views := make([]ui.StatCardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, c.Render())
	}
	return views
}
