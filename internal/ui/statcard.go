package ui

import (
	"math"
	"strconv"
)

// Value is a stat card value: either text or a number.
type Value struct {
	text     string
	number   float64
	isNumber bool
}

func TextValue(s string) Value {
	return Value{text: s}
}

func NumberValue(n float64) Value {
	return Value{number: n, isNumber: true}
}

func IntValue(n int64) Value {
	return NumberValue(float64(n))
}

func (v Value) String() string {
	if v.isNumber {
		return formatNumber(v.number)
	}
	return v.text
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Trend is a signed percentage change. IsPositive decides glyph and palette,
// independently of the sign of Value.
type Trend struct {
	Value      float64
	IsPositive bool
}

type Tone string

const (
	ToneSuccess     Tone = "success"
	ToneDestructive Tone = "destructive"
)

type TrendBadge struct {
	Glyph string
	Text  string
	Tone  Tone
}

// Label is the badge as displayed, e.g. "↓ 5%".
func (b TrendBadge) Label() string {
	return b.Glyph + " " + b.Text
}

func (t Trend) Badge() TrendBadge {
	b := TrendBadge{
		Glyph: "↓",
		Text:  formatNumber(math.Abs(t.Value)) + "%",
		Tone:  ToneDestructive,
	}
	if t.IsPositive {
		b.Glyph = "↑"
		b.Tone = ToneSuccess
	}
	return b
}

type StatCard struct {
	Title       string
	Value       Value
	Icon        Icon
	Description Optional[string]
	Trend       Optional[Trend]
}

type SecondaryLine struct {
	Badge       *TrendBadge
	Description string
}

// Text is the line as a reader sees it: badge, then description.
func (l SecondaryLine) Text() string {
	switch {
	case l.Badge == nil:
		return l.Description
	case l.Description == "":
		return l.Badge.Label()
	default:
		return l.Badge.Label() + " " + l.Description
	}
}

type StatCardView struct {
	Title     string
	Value     string
	Icon      Icon
	Secondary *SecondaryLine
}

func (c StatCard) Render() StatCardView {
	view := StatCardView{
		Title: c.Title,
		Value: c.Value.String(),
		Icon:  c.Icon,
	}

	trend, hasTrend := c.Trend.Get()
	desc, hasDesc := c.Description.Get()
	if !hasTrend && !hasDesc {
		return view
	}

	line := &SecondaryLine{Description: desc}
	if hasTrend {
		badge := trend.Badge()
		line.Badge = &badge
	}
	view.Secondary = line
	return view
}
