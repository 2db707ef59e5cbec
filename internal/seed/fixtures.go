// Package seed loads demo issues and messages from a YAML fixture file.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"comms-dashboard/internal/models"
	"comms-dashboard/internal/ui"

	"gopkg.in/yaml.v3"
)

type Fixture struct {
	Issues   []IssueFixture   `yaml:"issues"`
	Messages []MessageFixture `yaml:"messages"`
}

type IssueFixture struct {
	Title       string   `yaml:"title"`
	Status      string   `yaml:"status"`
	Attachments []string `yaml:"attachments"`
}

// MessageFixture is one logged message. DaysAgo backdates it so week-over-week trends have data.
type MessageFixture struct {
	Channel   string `yaml:"channel"`
	Recipient string `yaml:"recipient"`
	Content   string `yaml:"content"`
	Direction string `yaml:"direction"`
	Status    string `yaml:"status"`
	DaysAgo   int    `yaml:"days_ago"`
	Repeat    int    `yaml:"repeat"`
}

type IssueCreator interface {
	Create(ctx context.Context, issue *models.Issue) error
}

type MessageCreator interface {
	Create(ctx context.Context, msg *models.Message) error
}

func Decode(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	for i, m := range f.Messages {
		if _, err := ui.ParseTab(m.Channel); err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
	}
	return &f, nil
}

func LoadFile(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Decode(file)
}

type Result struct {
	Issues      int
	Attachments int
	Messages    int
}

// Apply inserts the fixture. now anchors DaysAgo.
func (f *Fixture) Apply(ctx context.Context, issues IssueCreator, messages MessageCreator, now time.Time) (Result, error) {
	var res Result
	for _, fi := range f.Issues {
		issue := &models.Issue{Title: fi.Title, Status: fi.Status}
		if issue.Status == "" {
			issue.Status = "open"
		}
		for _, ref := range fi.Attachments {
			issue.Attachments = append(issue.Attachments, models.Attachment{Ref: ref})
		}
		if err := issues.Create(ctx, issue); err != nil {
			return res, fmt.Errorf("create issue %q: %w", fi.Title, err)
		}
		res.Issues++
		res.Attachments += len(fi.Attachments)
	}

	for _, fm := range f.Messages {
		n := fm.Repeat
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			msg := &models.Message{
				Channel:   models.Channel(fm.Channel),
				Recipient: fm.Recipient,
				Content:   fm.Content,
				Direction: fm.Direction,
				Status:    fm.Status,
				CreatedAt: now.AddDate(0, 0, -fm.DaysAgo),
			}
			if err := messages.Create(ctx, msg); err != nil {
				return res, fmt.Errorf("create %s message: %w", fm.Channel, err)
			}
			res.Messages++
		}
	}
	return res, nil
}
