package ui

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"sync"
	"time"
)

// VisualState is one end of a transition.
type VisualState struct {
	Opacity float64
	OffsetY float64 // pixels, positive is downwards
}

func (s VisualState) css() string {
	return fmt.Sprintf("opacity:%s;transform:translateY(%spx)", formatNumber(s.Opacity), formatNumber(s.OffsetY))
}

type Trigger string

const TriggerMountOnce Trigger = "mount-once"

// Transition is a declarative timed transition any animation primitive can consume.
type Transition struct {
	Name     string
	From     VisualState
	To       VisualState
	Duration time.Duration
	Trigger  Trigger
}

// Entrance fades content in from 20px below over 500ms, once per mount.
var Entrance = Transition{
	Name:     "entrance",
	From:     VisualState{Opacity: 0, OffsetY: 20},
	To:       VisualState{Opacity: 1, OffsetY: 0},
	Duration: 500 * time.Millisecond,
	Trigger:  TriggerMountOnce,
}

func (t Transition) DurationMS() int64 {
	return t.Duration.Milliseconds()
}

// StartStyle is the inline style for an element entering with t.
func (t Transition) StartStyle() template.CSS {
	return template.CSS(fmt.Sprintf("%s;animation:%s %dms ease-out forwards", t.From.css(), t.Name, t.DurationMS()))
}

func (t Transition) Keyframes() template.CSS {
	return template.CSS(fmt.Sprintf("@keyframes %s{from{%s}to{%s}}", t.Name, t.From.css(), t.To.css()))
}

// Component renders a self-contained piece of page content.
type Component interface {
	Render(ctx context.Context) (template.HTML, error)
}

// Layout wraps page content with the shared chrome.
type Layout interface {
	Wrap(ctx context.Context, body template.HTML) (template.HTML, error)
}

// PageShell composes a layout around a dashboard with an entrance transition.
type PageShell struct {
	Renderer   *Renderer
	Layout     Layout
	Dashboard  Component
	Transition Transition
}

func NewPageShell(r *Renderer, layout Layout, dashboard Component) PageShell {
	return PageShell{Renderer: r, Layout: layout, Dashboard: dashboard, Transition: Entrance}
}

// Mount starts a new lifetime of the shell. Only its first successful render
// carries the entrance transition.
func (s PageShell) Mount() *MountedShell {
	return &MountedShell{shell: s}
}

type MountedShell struct {
	shell  PageShell
	mu     sync.Mutex
	played bool
}

type entranceView struct {
	Body       template.HTML
	Transition *Transition
}

// Render is serialized per mount so concurrent first renders cannot both carry the entrance.
func (m *MountedShell) Render(ctx context.Context) (template.HTML, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	body, err := m.shell.Dashboard.Render(ctx)
	if err != nil {
		return "", err
	}

	view := entranceView{Body: body}
	first := !m.played
	if first {
		t := m.shell.Transition
		view.Transition = &t
	}

	content, err := m.shell.Renderer.Fragment("entrance", view)
	if err != nil {
		return "", err
	}
	page, err := m.shell.Layout.Wrap(ctx, content)
	if err != nil {
		return "", err
	}
	if first {
		m.played = true
	}
	return page, nil
}

type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// PageLayout is the dashboard chrome: title, navigation and shared styles.
type PageLayout struct {
	Renderer   *Renderer
	Title      string
	Nav        []NavItem
	Transition Transition
}

type layoutView struct {
	Title     string
	Nav       []NavItem
	Body      template.HTML
	Keyframes template.CSS
}

func (l PageLayout) Wrap(_ context.Context, body template.HTML) (template.HTML, error) {
	t := l.Transition
	if t.Name == "" {
		t = Entrance
	}
	title := l.Title
	if strings.TrimSpace(title) == "" {
		title = "Dashboard"
	}
	return l.Renderer.Fragment("layout", layoutView{
		Title:     title,
		Nav:       l.Nav,
		Body:      body,
		Keyframes: t.Keyframes(),
	})
}
