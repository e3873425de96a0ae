package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tirtha/internal/models/db_models"
)

type DestinationRepository interface {
	Create(ctx context.Context, destination *db_models.Destination) (uuid.UUID, error)
	Update(ctx context.Context, destination *db_models.Destination) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListPins(ctx context.Context) ([]db_models.Destination, error)
	GetByID(ctx context.Context, id string) (*db_models.Destination, error)
	GetByIDFull(ctx context.Context, id string) (*db_models.Destination, error)
	ListFullByIDs(ctx context.Context, ids []string) ([]db_models.Destination, error)
	GetLiveFeed(ctx context.Context, id string) (*string, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Create(ctx context.Context, destination *db_models.Destination) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(destination).Error; err != nil {
		return uuid.Nil, err
	}
	return destination.ID, nil
}

// Update replaces the destination row together with its translations and
// images; events are managed through their own endpoints and left alone.
func (r *destinationRepository) Update(ctx context.Context, destination *db_models.Destination) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("destination_id = ?", destination.ID).
			Delete(&db_models.DestinationTranslation{}).Error; err != nil {
			return fmt.Errorf("failed to clear destination translations: %w", err)
		}
		if err := tx.Where("destination_id = ?", destination.ID).
			Delete(&db_models.DestinationImage{}).Error; err != nil {
			return fmt.Errorf("failed to clear destination images: %w", err)
		}

		result := tx.Save(destination)
		if result.Error != nil {
			return fmt.Errorf("failed to update destination: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *destinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("destination_id = ?", id).Delete(&db_models.DestinationTranslation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("destination_id = ?", id).Delete(&db_models.DestinationImage{}).Error; err != nil {
			return err
		}
		err := tx.Delete(&db_models.Destination{}, "id = ?", id).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return nil
	})
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *destinationRepository) ListPins(ctx context.Context) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Select("id", "latitude", "longitude", "deity", "sampradaya", "city").
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) GetByID(ctx context.Context, id string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).First(&destination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) GetByIDFull(ctx context.Context, id string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).
		Preload("Translations").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Events").
		Preload("Events.Translations").
		First(&destination, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) ListFullByIDs(ctx context.Context, ids []string) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Preload("Translations").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Events").
		Preload("Events.Translations").
		Where("id IN ?", ids).
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) GetLiveFeed(ctx context.Context, id string) (*string, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).
		Select("live_feed").
		First(&destination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination.LiveFeed, nil
}
