package workers_fx

import (
	"go.uber.org/fx"
	"tirtha/internal/repositories"
	"tirtha/internal/workers"
)

var Module = fx.Options(
	fx.Provide(provideProvider, provideReminderWorker),
	fx.Invoke(registerWorker))

func provideProvider() workers.Provider {
	return workers.NewLogProvider()
}

func provideReminderWorker(
	eventRepo repositories.EventRepository,
	reminderRepo repositories.ReminderRepository,
	provider workers.Provider) *workers.ReminderWorker {
	return workers.NewReminderWorker(eventRepo, reminderRepo, provider)
}

func registerWorker(lc fx.Lifecycle, worker *workers.ReminderWorker) {
	lc.Append(fx.StartStopHook(worker.Start, worker.Stop))
}
