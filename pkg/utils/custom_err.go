package utils

import "errors"

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidLanguage     = errors.New("invalid language code")
	ErrInvalidEnumValue    = errors.New("invalid enum value")
	ErrInvalidTimeOfDay    = errors.New("invalid time of day")
	ErrDailyEventWithDate  = errors.New("daily event must not carry a date")
	ErrDatedEventNoDate    = errors.New("one-time event requires a date")
	ErrDatabaseError       = errors.New("database error")
)
