package status

import (
	"errors"
	"fmt"

	"shop/internal/pkg/errs"
)

var (
	// ErrConfig is wrapped by every ConfigError. The process must not start when it is returned.
	ErrConfig = errors.New("status configuration is invalid")

	ErrInvalidStatusReference = errors.New("invalid status reference")
	ErrMalformedVocabulary    = errors.New("malformed status vocabulary")
	ErrMissingDefault         = errors.New("missing default status")
	ErrDuplicateDefault       = errors.New("duplicate default status")

	// ErrNoMatchingRule means the rule table has a gap for a (payment, shipment) pair.
	ErrNoMatchingRule = errors.New("no matching rule")

	// ErrUnknownStatusCode is returned when a caller supplies a code absent from a vocabulary.
	ErrUnknownStatusCode = errors.New("unknown status code")
)

// ConfigError describes one inconsistency found while loading the registry.
type ConfigError struct {
	Reason error
	Axis   Axis
	Code   string
	Detail string
	Cause  error
}

func newConfigError(reason error, axis Axis, code, detail string) *ConfigError {
	return &ConfigError{Reason: reason, Axis: axis, Code: code, Detail: detail}
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrConfig, e.Reason)
	if e.Axis != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Axis)
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Code)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ConfigError) Unwrap() []error {
	wrapped := []error{ErrConfig, e.Reason}
	if e.Cause != nil {
		wrapped = append(wrapped, e.Cause)
	}
	return wrapped
}

// NoMatchingRuleError carries the pair that no rule covered.
type NoMatchingRuleError struct {
	Payment  string
	Shipment string
}

func (e *NoMatchingRuleError) Error() string {
	return fmt.Sprintf("%s for %s:%s", ErrNoMatchingRule, e.Payment, e.Shipment)
}

func (e *NoMatchingRuleError) Unwrap() error {
	return ErrNoMatchingRule
}

// UnknownStatusCodeError names the axis and the rejected code.
type UnknownStatusCodeError struct {
	Axis Axis
	Code string
}

func (e *UnknownStatusCodeError) Error() string {
	return fmt.Sprintf("%s: %s status %q", ErrUnknownStatusCode, e.Axis, e.Code)
}

func (e *UnknownStatusCodeError) Unwrap() []error {
	return []error{ErrUnknownStatusCode, errs.ErrValueIsInvalid}
}
