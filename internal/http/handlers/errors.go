// Package handlers defines HTTP-layer error codes used across all API
// endpoints. Codes are lowercase snake_case; generic ones mirror HTTP
// status semantics, domain-specific ones cover business failures that a
// status alone cannot convey. Clients branch on these codes.
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeNotFound     = "not_found"
	ErrCodeRateLimited  = "rate_limited"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeValidation       = "validation_failed"
	ErrCodeCreateFailed     = "create_failed"
	ErrCodeListFailed       = "list_failed"
	ErrCodeGreetingNotFound = "greeting_not_found"
	ErrCodeScheduleFailed   = "schedule_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
