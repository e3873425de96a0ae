package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"tirtha/internal/models/db_models"
	"tirtha/internal/models/response_models"
	"tirtha/internal/repositories"
	"tirtha/pkg/i18n"
	"tirtha/pkg/utils"
)

type ReminderServiceInterface interface {
	CreateReminder(ctx context.Context, userID, eventID uuid.UUID) error
	DeleteReminder(ctx context.Context, userID, eventID uuid.UUID) error
	ListReminders(ctx context.Context, userID uuid.UUID, lang string) ([]response_models.ReminderEntry, error)
}

type ReminderService struct {
	reminderRepo repositories.ReminderRepository
	eventRepo    repositories.EventRepository
}

func NewReminderService(
	reminderRepo repositories.ReminderRepository,
	eventRepo repositories.EventRepository) ReminderServiceInterface {
	return &ReminderService{
		reminderRepo: reminderRepo,
		eventRepo:    eventRepo,
	}
}

// CreateReminder opts the user in for one event. Creating a reminder that
// already exists succeeds without change.
func (s *ReminderService) CreateReminder(ctx context.Context, userID, eventID uuid.UUID) error {
	event, err := s.eventRepo.GetByID(ctx, eventID.String())
	if err != nil {
		log.Printf("Error fetching event: %v", err)
		return utils.ErrDatabaseError
	}
	if event == nil {
		return utils.ErrEventNotFound
	}

	reminder := &db_models.Reminder{
		UserID:  userID,
		EventID: eventID,
	}
	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		log.Printf("Error creating reminder: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

// DeleteReminder opts the user out. Removing a reminder that does not
// exist succeeds, mirroring the create side.
func (s *ReminderService) DeleteReminder(ctx context.Context, userID, eventID uuid.UUID) error {
	if err := s.reminderRepo.Delete(ctx, userID, eventID); err != nil {
		log.Printf("Error deleting reminder: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ReminderService) ListReminders(ctx context.Context, userID uuid.UUID, lang string) ([]response_models.ReminderEntry, error) {
	reminders, err := s.reminderRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("Error listing reminders: %v", err)
		return nil, utils.ErrDatabaseError
	}

	entries := make([]response_models.ReminderEntry, 0, len(reminders))
	for _, reminder := range reminders {
		if reminder.Event == nil {
			continue // event deleted since the opt-in
		}

		entry := response_models.ReminderEntry{
			ID:            reminder.ID.String(),
			Event:         toLocalizedEvent(*reminder.Event, lang),
			DestinationID: reminder.Event.DestinationID.String(),
		}
		if reminder.Event.Destination != nil {
			entry.DestinationName = i18n.Pick(reminder.Event.Destination.Translations, lang).Name
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
