package workers

import "log"

// Notification is one reminder handed to a delivery provider. StartTime is
// the display form ("6:10 AM") the clients render.
type Notification struct {
	UserID          string
	EventID         string
	EventName       string
	DestinationName string
	StartTime       string
}

// Provider delivers reminder notifications. Actual push delivery lives in
// a managed service; a provider only needs to hand the payload over.
type Provider interface {
	Send(notification Notification) error
	GetName() string
}

// LogProvider writes each dispatch to the process log. It is the default
// provider in environments without a push gateway configured.
type LogProvider struct{}

func NewLogProvider() Provider {
	return &LogProvider{}
}

func (p *LogProvider) Send(notification Notification) error {
	log.Printf("reminder dispatch user=%s event=%s %q at %s (%s)",
		notification.UserID, notification.EventID,
		notification.EventName, notification.StartTime, notification.DestinationName)
	return nil
}

func (p *LogProvider) GetName() string { return "log" }
