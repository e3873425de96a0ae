package workers

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"tirtha/internal/models/db_models"
	"tirtha/internal/repositories"
	"tirtha/pkg/i18n"
	"tirtha/pkg/schedule"
	"tirtha/pkg/utils"
)

// lookahead is how far before an event's start the dispatch fires. The
// cron cadence must not exceed it or starts can be skipped.
const lookahead = 15 * time.Minute

// ReminderWorker scans daily events on a fixed cadence and hands a
// notification to the provider for every opted-in user whose event starts
// within the lookahead window.
type ReminderWorker struct {
	eventRepo    repositories.EventRepository
	reminderRepo repositories.ReminderRepository
	provider     Provider
	cron         *cron.Cron

	lastRun time.Time
}

func NewReminderWorker(
	eventRepo repositories.EventRepository,
	reminderRepo repositories.ReminderRepository,
	provider Provider) *ReminderWorker {
	return &ReminderWorker{
		eventRepo:    eventRepo,
		reminderRepo: reminderRepo,
		provider:     provider,
	}
}

func (w *ReminderWorker) Start() {
	w.lastRun = time.Now()
	w.cron = cron.New()
	if _, err := w.cron.AddFunc("*/5 * * * *", func() {
		w.RunOnce(context.Background(), time.Now())
	}); err != nil {
		log.Fatalf("Error scheduling reminder worker: %v", err)
	}
	w.cron.Start()
	log.Printf("Reminder worker started, provider=%s", w.provider.GetName())
}

func (w *ReminderWorker) Stop() {
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
	log.Println("Reminder worker stopped")
}

// RunOnce dispatches reminders for daily events whose start falls inside
// (lastRun+lookahead, now+lookahead]. The half-open window means each
// start is claimed by exactly one run.
func (w *ReminderWorker) RunOnce(ctx context.Context, now time.Time) {
	events, err := w.eventRepo.ListDaily(ctx)
	if err != nil {
		log.Printf("Error loading daily events for dispatch: %v", err)
		return
	}

	windowStart := w.lastRun.Add(lookahead)
	windowEnd := now.Add(lookahead)
	w.lastRun = now

	for _, event := range events {
		start, ok := startOn(event, now)
		if !ok {
			log.Printf("Skipping event %s with malformed start time %q", event.ID, event.StartTime)
			continue
		}
		// A window reaching past midnight covers starts on the next
		// calendar day, so the next-day projection is tested as well.
		if !withinWindow(start, windowStart, windowEnd) &&
			!withinWindow(start.AddDate(0, 0, 1), windowStart, windowEnd) {
			continue
		}
		w.dispatch(ctx, event)
	}
}

// withinWindow reports whether t lies in (start, end].
func withinWindow(t, start, end time.Time) bool {
	return t.After(start) && !t.After(end)
}

func (w *ReminderWorker) dispatch(ctx context.Context, event db_models.Event) {
	reminders, err := w.reminderRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		log.Printf("Error loading reminders for event %s: %v", event.ID, err)
		return
	}

	eventName := i18n.Pick(event.Translations, i18n.English).Name
	destinationName := ""
	if event.Destination != nil {
		destinationName = i18n.Pick(event.Destination.Translations, i18n.English).Name
	}

	for _, reminder := range reminders {
		notification := Notification{
			UserID:          reminder.UserID.String(),
			EventID:         event.ID.String(),
			EventName:       eventName,
			DestinationName: destinationName,
			StartTime:       utils.To12HourClock(event.StartTime),
		}
		if err := w.provider.Send(notification); err != nil {
			log.Printf("Error dispatching reminder to user %s: %v", reminder.UserID, err)
		}
	}
}

// startOn projects the event's start time onto now's calendar date.
func startOn(event db_models.Event, now time.Time) (time.Time, bool) {
	clock, err := schedule.ParseTimeOfDay(event.StartTime)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, now.Location()), true
}
