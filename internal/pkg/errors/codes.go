package errors

import "net/http"

var (
	ErrMissingCredential = New(
		"MISSING_CREDENTIAL",
		"API key is required",
		http.StatusUnauthorized,
	)

	ErrTransportFailure = New(
		"TRANSPORT_FAILURE",
		"Routing service is unreachable",
		http.StatusBadGateway,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrRequestLogDisabled = New(
		"REQUEST_LOG_DISABLED",
		"Request log is not enabled",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
