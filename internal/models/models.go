package models

import (
	"time"
)

// Channel identifies a messaging integration.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelSMS      Channel = "sms"
	ChannelVoice    Channel = "voice"
)

// Message represents a logged test message on one of the channels
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Channel   Channel   `gorm:"type:varchar(20);index;not null" json:"channel"`
	Recipient string    `gorm:"type:varchar(50)" json:"recipient"`
	Content   string    `gorm:"type:text" json:"content"`
	Direction string    `gorm:"type:varchar(20)" json:"direction"` // inbound, outbound
	Status    string    `gorm:"type:varchar(20)" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Message) TableName() string {
	return "messages"
}

// Issue represents a tracked issue with attachments
type Issue struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Status      string       `gorm:"type:varchar(20);default:'open';index" json:"status"` // open, closed
	Attachments []Attachment `gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE;" json:"attachments"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Issue) TableName() string {
	return "issues"
}

// Attachment is an opaque reference attached to an issue. Position keeps list order.
type Attachment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IssueID   uint      `gorm:"index;not null" json:"issue_id"`
	Ref       string    `gorm:"type:text;not null" json:"ref"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Attachment) TableName() string {
	return "attachments"
}

// SystemSetting stores a key/value override for runtime configuration
type SystemSetting struct {
	Key       string    `gorm:"primaryKey;type:varchar(100)" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SystemSetting) TableName() string {
	return "system_settings"
}

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&SystemSetting{},
		&Issue{},
		&Attachment{},
		&Message{},
	}
}
