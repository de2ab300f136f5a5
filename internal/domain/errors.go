package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAgentInactive      = errors.New("agent is inactive")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrMissingName        = errors.New("client name is required")
	ErrInvalidPhone       = errors.New("phone must have exactly 9 digits")
	ErrInvalidSchedule    = errors.New("invalid schedule date or time")
	ErrClientNotFound     = errors.New("no client matches the given phone or name")
	ErrExportFailed       = errors.New("export failed")
	ErrDuplicateHoliday   = errors.New("holiday already registered for that date")
)
