package assignment

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the Service.
var (
	// ErrNotFound is returned when a case, attorney or assignment id does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned for malformed input, including team lists
	// that mix known and unknown attorney ids.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when the case status forbids the requested mutation.
	ErrInvalidState = errors.New("case status does not allow team changes")

	// ErrInsufficientCandidates is returned by team selection when fewer than
	// two eligible attorneys exist.
	ErrInsufficientCandidates = errors.New("not enough eligible attorneys for a team")

	// ErrConflict is returned when storage detects a concurrent mutation.
	ErrConflict = errors.New("concurrent modification detected")
)

// ReasonCode identifies which validation rule rejected a proposal.
type ReasonCode string

const (
	ReasonMinLawyers            ReasonCode = "MIN_LAWYERS"
	ReasonMaxLawyersExceeded    ReasonCode = "MAX_LAWYERS_EXCEEDED"
	ReasonInvalidLawyer         ReasonCode = "INVALID_LAWYER"
	ReasonWorkloadExceeded      ReasonCode = "WORKLOAD_EXCEEDED"
	ReasonDuplicateLawyers      ReasonCode = "DUPLICATE_LAWYERS"
	ReasonMissingSpecialization ReasonCode = "MISSING_SPECIALIZATION"
	ReasonInsufficientAuthority ReasonCode = "INSUFFICIENT_AUTHORITY"
	ReasonNotAssigned           ReasonCode = "NOT_ASSIGNED"
	ReasonMinLawyersRequired    ReasonCode = "MIN_LAWYERS_REQUIRED"
	ReasonNoAlternativePrimary  ReasonCode = "NO_ALTERNATIVE_PRIMARY"
)

// ValidationError is a reason-coded rule rejection. Detail names the
// offending entity so callers can surface actionable feedback.
type ValidationError struct {
	Code   ReasonCode
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

func newValidationError(code ReasonCode, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
