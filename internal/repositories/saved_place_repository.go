package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tirtha/internal/models/db_models"
)

type SavedPlaceRepository interface {
	Create(ctx context.Context, place *db_models.SavedPlace) error
	Delete(ctx context.Context, userID, destinationID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.SavedPlace, error)
}

type savedPlaceRepository struct {
	db *gorm.DB
}

func NewSavedPlaceRepository(db *gorm.DB) SavedPlaceRepository {
	return &savedPlaceRepository{db: db}
}

func (r *savedPlaceRepository) Create(ctx context.Context, place *db_models.SavedPlace) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "destination_id"}},
			DoNothing: true,
		}).
		Create(place).Error
}

func (r *savedPlaceRepository) Delete(ctx context.Context, userID, destinationID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND destination_id = ?", userID, destinationID).
		Delete(&db_models.SavedPlace{}).Error
}

func (r *savedPlaceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.SavedPlace, error) {
	var places []db_models.SavedPlace
	err := r.db.WithContext(ctx).
		Preload("Destination").
		Preload("Destination.Translations").
		Where("user_id = ?", userID).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
