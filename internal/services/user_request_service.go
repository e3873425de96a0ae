package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"tirtha/internal/models/db_models"
	"tirtha/internal/repositories"
	"tirtha/pkg/utils"
)

type UserRequestServiceInterface interface {
	SubmitRequest(ctx context.Context, userID uuid.UUID, text string) error
	ListRequests(ctx context.Context, page, pageSize int) ([]db_models.UserRequest, error)
}

type UserRequestService struct {
	requestRepo repositories.UserRequestRepository
}

func NewUserRequestService(requestRepo repositories.UserRequestRepository) UserRequestServiceInterface {
	return &UserRequestService{requestRepo: requestRepo}
}

func (s *UserRequestService) SubmitRequest(ctx context.Context, userID uuid.UUID, text string) error {
	request := &db_models.UserRequest{
		UserID:  userID,
		Request: text,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		log.Printf("Error submitting user request: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *UserRequestService) ListRequests(ctx context.Context, page, pageSize int) ([]db_models.UserRequest, error) {
	requests, err := s.requestRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing user requests: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return requests, nil
}
