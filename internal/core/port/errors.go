package port

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrBudgetExhausted  = errors.New("budget exhausted")
	ErrCooldownActive   = errors.New("reward cooldown active")
	ErrSettlementFailed = errors.New("settlement failed")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrDuplicateDomain  = errors.New("domain already registered")
	ErrEventFinalized   = errors.New("event already finalized")
	ErrAccountNotFound  = errors.New("account not found")
	ErrQueueFull        = errors.New("task queue full")
)

// ValidationError lists the offending fields of a rejected request. It
// matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
