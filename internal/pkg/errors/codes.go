package errors

import (
	"fmt"
	"net/http"
)

// Error code constants. Errors carry code + params; API consumers decide
// presentation. Backend logs are always in English.

// Audit record error codes.
const (
	CodeRecordNotFound    = "AUDIT_RECORD_NOT_FOUND"
	CodePersistenceFailed = "AUDIT_PERSISTENCE_FAILED"
	CodeInvalidActor      = "INVALID_ACTOR"
	CodeInvalidQuery      = "INVALID_AUDIT_QUERY"
)

// Cleanup error codes.
const (
	CodeCleanupFailed      = "AUDIT_CLEANUP_FAILED"
	CodeInvalidActionType  = "INVALID_ACTION_TYPE"
	CodeInvalidBatchSize   = "INVALID_BATCH_SIZE"
	CodeInvalidRetention   = "INVALID_RETENTION_OVERRIDE"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// Convenience constructors using predefined codes.

// ErrRecordNotFoundf creates a record not found error.
func ErrRecordNotFoundf(recordID string) *AppError {
	return &AppError{
		Code:       CodeRecordNotFound,
		Message:    "audit record not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"record_id": recordID},
		Err:        ErrNotFound,
	}
}

// ErrPersistencef wraps a store failure with the failing operation.
func ErrPersistencef(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       CodePersistenceFailed,
		Message:    "audit store operation failed",
		HTTPStatus: http.StatusServiceUnavailable,
		Params:     map[string]interface{}{"operation": fmt.Sprintf(format, args...)},
		Err:        wrapSentinel(err, ErrPersistence),
	}
}

// ErrInvalidActorf creates the caller-contract violation error. This error is
// always propagated by the dispatch wrapper.
func ErrInvalidActorf(operation string) *AppError {
	return &AppError{
		Code:       CodeInvalidActor,
		Message:    "valid authenticated actor required for audit logging",
		HTTPStatus: http.StatusBadRequest,
		Params:     map[string]interface{}{"operation": operation},
		Err:        ErrInvalidActor,
	}
}

// ErrInvalidQueryf creates a malformed selector input error.
func ErrInvalidQueryf(field, reason string) *AppError {
	return &AppError{
		Code:       CodeInvalidQuery,
		Message:    "invalid audit query: " + reason,
		HTTPStatus: http.StatusBadRequest,
		Params:     map[string]interface{}{"field": field},
		Err:        ErrInvalidQuery,
	}
}

// ErrCleanupFailedf wraps a retention run failure.
func ErrCleanupFailedf(err error, category string) *AppError {
	return &AppError{
		Code:       CodeCleanupFailed,
		Message:    "audit retention cleanup failed",
		HTTPStatus: http.StatusServiceUnavailable,
		Params:     map[string]interface{}{"category": category},
		Err:        wrapSentinel(err, ErrPersistence),
	}
}

// ErrInvalidActionTypef rejects a cleanup run for an unknown action type.
func ErrInvalidActionTypef(actionType string) *AppError {
	return &AppError{
		Code:       CodeInvalidActionType,
		Message:    "unknown audit action type",
		HTTPStatus: http.StatusBadRequest,
		Params:     map[string]interface{}{"action_type": actionType},
		Err:        ErrBadRequest,
	}
}

// ErrInvalidBatchSizef rejects a negative cleanup batch size.
func ErrInvalidBatchSizef(batchSize int) *AppError {
	return &AppError{
		Code:       CodeInvalidBatchSize,
		Message:    "cleanup batch size must not be negative",
		HTTPStatus: http.StatusBadRequest,
		Params:     map[string]interface{}{"batch_size": batchSize},
		Err:        ErrBadRequest,
	}
}

// ErrInvalidRetentionf rejects a negative retention-window override.
func ErrInvalidRetentionf(days int) *AppError {
	return &AppError{
		Code:       CodeInvalidRetention,
		Message:    "retention override must not be negative",
		HTTPStatus: http.StatusBadRequest,
		Params:     map[string]interface{}{"days": days},
		Err:        ErrBadRequest,
	}
}

// wrapSentinel chains a sentinel under err so both match with errors.Is.
func wrapSentinel(err, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return &sentinelError{err: err, sentinel: sentinel}
}

type sentinelError struct {
	err      error
	sentinel error
}

func (s *sentinelError) Error() string { return s.sentinel.Error() + ": " + s.err.Error() }

func (s *sentinelError) Is(target error) bool { return target == s.sentinel }

func (s *sentinelError) Unwrap() error { return s.err }
