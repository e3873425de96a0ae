package repositories

import (
	"context"

	"gorm.io/gorm"

	"tirtha/internal/models/db_models"
)

type UserRequestRepository interface {
	Create(ctx context.Context, request *db_models.UserRequest) error
	List(ctx context.Context, page, pageSize int) ([]db_models.UserRequest, error)
}

type userRequestRepository struct {
	db *gorm.DB
}

func NewUserRequestRepository(db *gorm.DB) UserRequestRepository {
	return &userRequestRepository{db: db}
}

func (r *userRequestRepository) Create(ctx context.Context, request *db_models.UserRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *userRequestRepository) List(ctx context.Context, page, pageSize int) ([]db_models.UserRequest, error) {
	var requests []db_models.UserRequest
	err := r.db.WithContext(ctx).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}
