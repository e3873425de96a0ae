package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tirtha/internal/models/db_models"
)

type ReminderRepository interface {
	// Create is idempotent: a duplicate (user, event) pair is a no-op, the
	// unique index enforces at-most-one reminder server side.
	Create(ctx context.Context, reminder *db_models.Reminder) error
	Delete(ctx context.Context, userID, eventID uuid.UUID) error

	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Reminder, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Reminder, error)
}

type reminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *db_models.Reminder) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
			DoNothing: true,
		}).
		Create(reminder).Error
}

func (r *reminderRepository) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&db_models.Reminder{}).Error
}

func (r *reminderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Reminder, error) {
	var reminders []db_models.Reminder
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Event.Translations").
		Preload("Event.Destination").
		Preload("Event.Destination.Translations").
		Where("user_id = ?", userID).
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Reminder, error) {
	var reminders []db_models.Reminder
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}
