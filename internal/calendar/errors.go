package calendar

import "errors"

var (
	// ErrMalformedScheduleRecord marks a record missing the temporal fields it
	// needs where no fallback exists. Such records are excluded, not surfaced.
	ErrMalformedScheduleRecord = errors.New("malformed schedule record")

	// ErrInvalidDateValue marks a date string or rule that does not resolve to
	// a valid instant.
	ErrInvalidDateValue = errors.New("invalid date value")

	// ErrInvalidAnchorDate is returned when a window is requested for a zero anchor.
	ErrInvalidAnchorDate = errors.New("invalid anchor date")

	// ErrUnknownViewMode is returned for a mode other than day, week, month or agenda.
	ErrUnknownViewMode = errors.New("unknown view mode")
)
