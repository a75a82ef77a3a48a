package postgres

import (
	"context"
	"fmt"

	"fsmpAdvisor/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{
		DB: db,
	}
}

func (r *EventRepository) SaveEvent(ctx context.Context, event *domain.RecommendationEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to save recommendation event: %w", err)
	}

	return nil
}

func (r *EventRepository) FindRecent(ctx context.Context, limit int) ([]domain.RecommendationEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.RecommendationEvent
	err := r.DB.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recommendation events: %w", err)
	}

	return events, nil
}
