package services

import (
	"context"
	"errors"
	"net/http"

	"storefront-service/repository"
)

// ServiceError is a typed error with an HTTP status code. Controllers map it
// straight to the response; the Message is safe to expose.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

func validationErr(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: msg}
}

func unauthorizedErr() *ServiceError {
	return &ServiceError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}
}

func forbiddenErr(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusForbidden, Message: msg}
}

func notFoundErr(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: msg}
}

// storeErr classifies a failure from the KV store. Deadline exhaustion maps
// to 504; anything else is an internal error with a generic message.
func storeErr(err error) *ServiceError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ServiceError{StatusCode: http.StatusGatewayTimeout, Message: "Store operation timed out"}
	}
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Internal server error"}
}

// isNotFound reports whether err is the store's missing-key error.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrKeyNotFound)
}
