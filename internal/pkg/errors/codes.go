package errors

import "net/http"

var (
	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrConfigurationError = New(
		"CONFIGURATION_ERROR",
		"Missing or invalid API configuration",
		http.StatusInternalServerError,
	)

	ErrTransportError = New(
		"TRANSPORT_ERROR",
		"External API request failed",
		http.StatusBadGateway,
	)

	ErrValidationError = New(
		"VALIDATION_ERROR",
		"Record failed required-field validation",
		http.StatusUnprocessableEntity,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrQueueError = New(
		"QUEUE_ERROR",
		"Queue operation failed",
		http.StatusInternalServerError,
	)

	ErrJobNotFound = New(
		"JOB_NOT_FOUND",
		"Sync job not found",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
