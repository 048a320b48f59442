package polyedit

import "errors"

var (
	// ErrEditInProgress is returned by BeginEdit when another edit has not ended.
	ErrEditInProgress = errors.New("polyedit: edit already in progress")

	// ErrInvalidEditMode is returned by BeginEdit for ModeNone or an unknown mode.
	ErrInvalidEditMode = errors.New("polyedit: invalid edit mode")

	// ErrTooFewPoints is returned when an operation needs at least one segment.
	ErrTooFewPoints = errors.New("polyedit: polyline needs at least 2 points")

	// ErrNilBackend is returned by Render when no backend is given.
	ErrNilBackend = errors.New("polyedit: backend must not be nil")
)
