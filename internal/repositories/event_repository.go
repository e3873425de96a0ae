package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tirtha/internal/models/db_models"
)

type EventRepository interface {
	Create(ctx context.Context, event *db_models.Event) (uuid.UUID, error)
	Update(ctx context.Context, event *db_models.Event) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Event, error)
	ListByDestination(ctx context.Context, destinationID string) ([]db_models.Event, error)
	ListPopular(ctx context.Context) ([]db_models.Event, error)
	ListDaily(ctx context.Context) ([]db_models.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *db_models.Event) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return uuid.Nil, err
	}
	return event.ID, nil
}

func (r *eventRepository) Update(ctx context.Context, event *db_models.Event) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", event.ID).
			Delete(&db_models.EventTranslation{}).Error; err != nil {
			return fmt.Errorf("failed to clear event translations: %w", err)
		}

		result := tx.Save(event)
		if result.Error != nil {
			return fmt.Errorf("failed to update event: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&db_models.EventTranslation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&db_models.Reminder{}).Error; err != nil {
			return err
		}
		err := tx.Delete(&db_models.Event{}, "id = ?", id).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return nil
	})
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*db_models.Event, error) {
	var event db_models.Event
	err := r.db.WithContext(ctx).
		Preload("Translations").
		First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) ListByDestination(ctx context.Context, destinationID string) ([]db_models.Event, error) {
	var events []db_models.Event
	err := r.db.WithContext(ctx).
		Preload("Translations").
		Where("destination_id = ?", destinationID).
		Order("start_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListPopular(ctx context.Context) ([]db_models.Event, error) {
	var events []db_models.Event
	err := r.db.WithContext(ctx).
		Preload("Translations").
		Preload("Destination").
		Preload("Destination.Translations").
		Where("is_popular = ?", true).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListDaily(ctx context.Context) ([]db_models.Event, error) {
	var events []db_models.Event
	err := r.db.WithContext(ctx).
		Preload("Translations").
		Preload("Destination").
		Preload("Destination.Translations").
		Where("daily = ?", true).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
