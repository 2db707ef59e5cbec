package database

import (
	"context"
	"fmt"
	"time"

	"comms-dashboard/internal/models"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// CountBetween counts channel messages created in [from, to).
func (r *MessageRepository) CountBetween(ctx context.Context, channel models.Channel, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("channel = ? AND created_at >= ? AND created_at < ?", channel, from, to).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count %s messages: %w", channel, err)
	}
	return count, nil
}

func (r *MessageRepository) Recent(ctx context.Context, channel models.Channel, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("channel = ?", channel).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("list %s messages: %w", channel, err)
	}
	return messages, nil
}
