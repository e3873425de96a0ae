package workers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tirtha/internal/models/db_models"
	"tirtha/internal/repositories"
)

type mockEventRepository struct {
	ListDailyFunc func(ctx context.Context) ([]db_models.Event, error)
}

var _ repositories.EventRepository = (*mockEventRepository)(nil)

func (m *mockEventRepository) Create(ctx context.Context, event *db_models.Event) (uuid.UUID, error) {
	panic("unexpected call")
}

func (m *mockEventRepository) Update(ctx context.Context, event *db_models.Event) error {
	panic("unexpected call")
}

func (m *mockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	panic("unexpected call")
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*db_models.Event, error) {
	panic("unexpected call")
}

func (m *mockEventRepository) ListByDestination(ctx context.Context, destinationID string) ([]db_models.Event, error) {
	panic("unexpected call")
}

func (m *mockEventRepository) ListPopular(ctx context.Context) ([]db_models.Event, error) {
	panic("unexpected call")
}

func (m *mockEventRepository) ListDaily(ctx context.Context) ([]db_models.Event, error) {
	return m.ListDailyFunc(ctx)
}

type mockReminderRepository struct {
	ListByEventFunc func(ctx context.Context, eventID uuid.UUID) ([]db_models.Reminder, error)
}

var _ repositories.ReminderRepository = (*mockReminderRepository)(nil)

func (m *mockReminderRepository) Create(ctx context.Context, reminder *db_models.Reminder) error {
	panic("unexpected call")
}

func (m *mockReminderRepository) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	panic("unexpected call")
}

func (m *mockReminderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Reminder, error) {
	panic("unexpected call")
}

func (m *mockReminderRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Reminder, error) {
	return m.ListByEventFunc(ctx, eventID)
}

// captureProvider records every dispatch instead of delivering it.
type captureProvider struct {
	sent []Notification
}

var _ Provider = (*captureProvider)(nil)

func (p *captureProvider) Send(notification Notification) error {
	p.sent = append(p.sent, notification)
	return nil
}

func (p *captureProvider) GetName() string { return "capture" }

func newDailyEvent(name, start string) db_models.Event {
	return db_models.Event{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		StartTime: start,
		EndTime:   start,
		Daily:     true,
		Translations: []db_models.EventTranslation{
			{Language: "en", Name: name},
		},
	}
}

func clockAt(clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2025-06-10 "+clock)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRunOnce_DispatchesInsideTheLookaheadWindow(t *testing.T) {
	soon := newDailyEvent("morning aarti", "06:10")     // 10 minutes out
	later := newDailyEvent("noon aarti", "12:00")       // hours out
	passed := newDailyEvent("mangala aarti", "04:30")   // already started
	malformed := newDailyEvent("broken", "six o'clock") // skipped with a log line

	userA := uuid.New()
	userB := uuid.New()

	eventRepo := &mockEventRepository{
		ListDailyFunc: func(ctx context.Context) ([]db_models.Event, error) {
			return []db_models.Event{soon, later, passed, malformed}, nil
		},
	}
	reminderRepo := &mockReminderRepository{
		ListByEventFunc: func(ctx context.Context, eventID uuid.UUID) ([]db_models.Reminder, error) {
			require.Equal(t, soon.ID, eventID)
			return []db_models.Reminder{
				{UserID: userA, EventID: eventID},
				{UserID: userB, EventID: eventID},
			}, nil
		},
	}
	provider := &captureProvider{}

	worker := NewReminderWorker(eventRepo, reminderRepo, provider)
	worker.lastRun = clockAt("05:50")
	worker.RunOnce(context.Background(), clockAt("06:00"))

	require.Len(t, provider.sent, 2)
	assert.Equal(t, userA.String(), provider.sent[0].UserID)
	assert.Equal(t, userB.String(), provider.sent[1].UserID)
	assert.Equal(t, soon.ID.String(), provider.sent[0].EventID)
	assert.Equal(t, "morning aarti", provider.sent[0].EventName)
	assert.Equal(t, "6:10 AM", provider.sent[0].StartTime)
}

func TestRunOnce_EachStartClaimedByExactlyOneRun(t *testing.T) {
	event := newDailyEvent("aarti", "06:10")

	eventRepo := &mockEventRepository{
		ListDailyFunc: func(ctx context.Context) ([]db_models.Event, error) {
			return []db_models.Event{event}, nil
		},
	}
	reminderRepo := &mockReminderRepository{
		ListByEventFunc: func(ctx context.Context, eventID uuid.UUID) ([]db_models.Reminder, error) {
			return []db_models.Reminder{{UserID: uuid.New(), EventID: eventID}}, nil
		},
	}
	provider := &captureProvider{}

	worker := NewReminderWorker(eventRepo, reminderRepo, provider)
	worker.lastRun = clockAt("05:50")

	// consecutive cron ticks; the 06:10 start falls only in the first window
	worker.RunOnce(context.Background(), clockAt("05:55"))
	worker.RunOnce(context.Background(), clockAt("06:00"))
	worker.RunOnce(context.Background(), clockAt("06:05"))

	assert.Len(t, provider.sent, 1)
}

func TestRunOnce_WindowCrossingMidnightDispatchesOnce(t *testing.T) {
	event := newDailyEvent("nightly seva", "00:05")

	eventRepo := &mockEventRepository{
		ListDailyFunc: func(ctx context.Context) ([]db_models.Event, error) {
			return []db_models.Event{event}, nil
		},
	}
	reminderRepo := &mockReminderRepository{
		ListByEventFunc: func(ctx context.Context, eventID uuid.UUID) ([]db_models.Reminder, error) {
			return []db_models.Reminder{{UserID: uuid.New(), EventID: eventID}}, nil
		},
	}
	provider := &captureProvider{}

	worker := NewReminderWorker(eventRepo, reminderRepo, provider)
	worker.lastRun = clockAt("23:45")

	// every 5-minute tick from late night through the start itself
	ticks := []time.Time{
		clockAt("23:50"),
		clockAt("23:55"),
		clockAt("23:59").Add(time.Minute), // midnight, next day
		clockAt("23:59").Add(6 * time.Minute),
		clockAt("23:59").Add(11 * time.Minute),
	}
	for _, now := range ticks {
		worker.RunOnce(context.Background(), now)
	}

	assert.Len(t, provider.sent, 1)
	assert.Equal(t, "nightly seva", provider.sent[0].EventName)
}

func TestRunOnce_NoOptInsMeansNoDispatch(t *testing.T) {
	event := newDailyEvent("aarti", "06:10")

	eventRepo := &mockEventRepository{
		ListDailyFunc: func(ctx context.Context) ([]db_models.Event, error) {
			return []db_models.Event{event}, nil
		},
	}
	reminderRepo := &mockReminderRepository{
		ListByEventFunc: func(ctx context.Context, eventID uuid.UUID) ([]db_models.Reminder, error) {
			return nil, nil
		},
	}
	provider := &captureProvider{}

	worker := NewReminderWorker(eventRepo, reminderRepo, provider)
	worker.lastRun = clockAt("05:50")
	worker.RunOnce(context.Background(), clockAt("06:00"))

	assert.Empty(t, provider.sent)
}

func TestRunOnce_IncludesDestinationName(t *testing.T) {
	destination := &db_models.Destination{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Translations: []db_models.DestinationTranslation{
			{Language: "en", Name: "Kashi Vishwanath"},
		},
	}
	event := newDailyEvent("aarti", "06:10")
	event.DestinationID = destination.ID
	event.Destination = destination

	eventRepo := &mockEventRepository{
		ListDailyFunc: func(ctx context.Context) ([]db_models.Event, error) {
			return []db_models.Event{event}, nil
		},
	}
	reminderRepo := &mockReminderRepository{
		ListByEventFunc: func(ctx context.Context, eventID uuid.UUID) ([]db_models.Reminder, error) {
			return []db_models.Reminder{{UserID: uuid.New(), EventID: eventID}}, nil
		},
	}
	provider := &captureProvider{}

	worker := NewReminderWorker(eventRepo, reminderRepo, provider)
	worker.lastRun = clockAt("05:50")
	worker.RunOnce(context.Background(), clockAt("06:00"))

	require.Len(t, provider.sent, 1)
	assert.Equal(t, "Kashi Vishwanath", provider.sent[0].DestinationName)
}
