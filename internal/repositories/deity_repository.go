package repositories

import (
	"context"

	"gorm.io/gorm"

	"tirtha/internal/models/db_models"
)

type DeityRepository interface {
	ListMarkers(ctx context.Context) ([]db_models.DeityMarker, error)
}

type deityRepository struct {
	db *gorm.DB
}

func NewDeityRepository(db *gorm.DB) DeityRepository {
	return &deityRepository{db: db}
}

func (r *deityRepository) ListMarkers(ctx context.Context) ([]db_models.DeityMarker, error) {
	var markers []db_models.DeityMarker
	err := r.db.WithContext(ctx).Find(&markers).Error
	if err != nil {
		return nil, err
	}
	return markers, nil
}
