package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"comms-dashboard/internal/models"

	"gorm.io/gorm"
)

var ErrIssueNotFound = errors.New("issue not found")

type IssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

func (r *IssueRepository) Create(ctx context.Context, issue *models.Issue) error {
	for i := range issue.Attachments {
		issue.Attachments[i].Position = i
	}
	if err := r.db.WithContext(ctx).Create(issue).Error; err != nil {
		return fmt.Errorf("create issue: %w", err)
	}
	return nil
}

// Get loads an issue with its attachments in list order.
func (r *IssueRepository) Get(ctx context.Context, id uint) (*models.Issue, error) {
	var issue models.Issue
	err := r.db.WithContext(ctx).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		First(&issue, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrIssueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get issue %d: %w", id, err)
	}
	return &issue, nil
}

// AttachmentRefs returns the issue's attachment references in order, or nil when it has none.
func (r *IssueRepository) AttachmentRefs(ctx context.Context, id uint) ([]string, error) {
	issue, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return Refs(issue.Attachments), nil
}

// AddAttachment appends ref after the issue's current last attachment.
func (r *IssueRepository) AddAttachment(ctx context.Context, id uint, ref string) (*models.Attachment, error) {
	var attachment models.Attachment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var issue models.Issue
		if err := tx.Select("id").First(&issue, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrIssueNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Attachment{}).Where("issue_id = ?", id).Count(&count).Error; err != nil {
			return err
		}

		attachment = models.Attachment{IssueID: id, Ref: ref, Position: int(count)}
		return tx.Create(&attachment).Error
	})
	if errors.Is(err, ErrIssueNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("add attachment to issue %d: %w", id, err)
	}
	return &attachment, nil
}

func (r *IssueRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Issue{}).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count %s issues: %w", status, err)
	}
	return count, nil
}

// CountOpenedBetween counts issues created in [from, to).
func (r *IssueRepository) CountOpenedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Issue{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count issues opened: %w", err)
	}
	return count, nil
}

// Refs flattens attachments into their references.
func Refs(attachments []models.Attachment) []string {
	if len(attachments) == 0 {
		return nil
	}
	refs := make([]string, 0, len(attachments))
	for _, a := range attachments {
		refs = append(refs, a.Ref)
	}
	return refs
}
