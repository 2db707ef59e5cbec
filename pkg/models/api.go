package models

// TabChangeRequest is the body of POST /api/communications/tab
type TabChangeRequest struct {
	Tab string `json:"tab" binding:"required"`
}

// TabChangeEvent is pushed to websocket clients when a session switches tabs
type TabChangeEvent struct {
	Session string `json:"session"`
	Tab     string `json:"tab"`
}

// Issue is the flattened issue structure returned to dashboard clients
type Issue struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Status      string   `json:"status"`
	Attachments []string `json:"attachments"` // ordered attachment references
	CreatedAt   string   `json:"created_at"`
}

// AddAttachmentRequest appends one reference to an issue's attachment list
type AddAttachmentRequest struct {
	Ref string `json:"ref" binding:"required"`
}

// StatCard is the JSON form of a rendered stat card
type StatCard struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
	TrendGlyph  string `json:"trend_glyph,omitempty"`
	TrendText   string `json:"trend_text,omitempty"`
	TrendTone   string `json:"trend_tone,omitempty"`
}
