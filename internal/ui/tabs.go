package ui

import (
	"errors"
	"fmt"
)

// Tab identifies one of the communication channel views.
type Tab string

const (
	TabWhatsApp Tab = "whatsapp"
	TabSMS      Tab = "sms"
	TabVoice    Tab = "voice"

	// DefaultTab is the tab the tab primitive shows as active until the user picks another.
	DefaultTab = TabWhatsApp
)

var ErrUnknownTab = errors.New("unknown tab")

func ParseTab(s string) (Tab, error) {
	switch t := Tab(s); t {
	case TabWhatsApp, TabSMS, TabVoice:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// TabState is owned by the parent. Components read a snapshot through Current
// and request changes through SetTab, never holding the value themselves.
type TabState interface {
	Current() Tab
	SetTab(Tab)
}

type TabTrigger struct {
	Value Tab
	Label string
	Icon  Icon
}

var tabTriggers = [...]TabTrigger{
	{Value: TabWhatsApp, Label: "WhatsApp", Icon: Icon{Name: "message-circle", Tone: "text-green-500"}},
	{Value: TabSMS, Label: "SMS", Icon: Icon{Name: "message-square", Tone: "text-blue-500"}},
	{Value: TabVoice, Label: "Voice", Icon: Icon{Name: "phone"}},
}

// TabSelector renders the WhatsApp/SMS/Voice triggers and reports selection changes.
// The readiness flags are carried through untouched; nothing renders them yet.
type TabSelector struct {
	Active             Tab
	OnChange           func(Tab)
	WhatsAppConfigured bool
	SMSConfigured      bool
}

// BindTabSelector wires a selector to a parent-owned state.
func BindTabSelector(state TabState, whatsappConfigured, smsConfigured bool) TabSelector {
	return TabSelector{
		Active:             state.Current(),
		OnChange:           state.SetTab,
		WhatsAppConfigured: whatsappConfigured,
		SMSConfigured:      smsConfigured,
	}
}

// Triggers returns the three triggers in their fixed order.
func (s TabSelector) Triggers() []TabTrigger {
	out := make([]TabTrigger, len(tabTriggers))
	copy(out, tabTriggers[:])
	return out
}

// Select reports a user selection. It does not consult the readiness flags.
func (s TabSelector) Select(t Tab) {
	if s.OnChange != nil {
		s.OnChange(t)
	}
}

type TabSelectorView struct {
	DefaultValue       Tab
	Active             Tab
	Triggers           []TabTrigger
	WhatsAppConfigured bool
	SMSConfigured      bool
}

func (s TabSelector) Render() TabSelectorView {
	return TabSelectorView{
		DefaultValue:       DefaultTab,
		Active:             s.Active,
		Triggers:           s.Triggers(),
		WhatsAppConfigured: s.WhatsAppConfigured,
		SMSConfigured:      s.SMSConfigured,
	}
}
