package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrExportInFlight     = errors.New("an export is already in progress")
	ErrHistoryUnavailable = errors.New("invoice history unavailable")
	ErrLogoTooLarge       = errors.New("logo exceeds the maximum allowed size")
	ErrLogoNotImage       = errors.New("logo is not a supported image type")
	ErrPreviewUnavailable = errors.New("no preview source could be reached")
)
