// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer, never in handlers or
// storage. It ensures that business logic only operates on semantically valid data.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/serieshub/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return v
}

// FloatRange fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) FloatRange(field string, value, min, max float64) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %g and %g", min, max))
	}
	return v
}

// Min fails if the value is below min.
func (v *Validator) Min(field string, value, min int) *Validator {
	if value < min {
		v.add(field, fmt.Sprintf("Must be at least %d", min))
	}
	return v
}

// Positive fails unless the identifier is strictly greater than zero.
func (v *Validator) Positive(field string, value int64) *Validator {
	if value <= 0 {
		v.add(field, "Must be a positive integer")
	}
	return v
}

// PositiveIDs fails if the list is empty or holds any non-positive element.
//
// The offending elements are listed in the message so callers can see
// exactly which entries were rejected.
func (v *Validator) PositiveIDs(field string, ids []int64) *Validator {
	if len(ids) == 0 {
		v.add(field, "Must contain at least one id")
		return v
	}

	var invalid []string
	for _, id := range ids {
		if id <= 0 {
			invalid = append(invalid, fmt.Sprint(id))
		}
	}

	if len(invalid) > 0 {
		v.add(field, fmt.Sprintf("Invalid ids: %s", strings.Join(invalid, ", ")))
	}
	return v
}

// AtMost fails if the value exceeds max.
func (v *Validator) AtMost(field string, value, max int64) *Validator {
	if value > max {
		v.add(field, fmt.Sprintf("Must be at most %d", max))
	}
	return v
}

// IDsAtMost fails if any identifier exceeds max, listing the offenders.
func (v *Validator) IDsAtMost(field string, ids []int64, max int64) *Validator {
	var invalid []string
	for _, id := range ids {
		if id > max {
			invalid = append(invalid, fmt.Sprint(id))
		}
	}

	if len(invalid) > 0 {
		v.add(field, fmt.Sprintf("Ids out of range: %s", strings.Join(invalid, ", ")))
	}
	return v
}

// EachMaxLen fails once if any trimmed element is longer than max characters.
func (v *Validator) EachMaxLen(field string, values []string, max int) *Validator {
	for _, value := range values {
		if utf8.RuneCountInString(strings.TrimSpace(value)) > max {
			v.add(field, fmt.Sprintf("Each element is limited to %d characters", max))
			break
		}
	}
	return v
}

// NotEmpty fails if the list holds no elements.
func (v *Validator) NotEmpty(field string, size int) *Validator {
	if size == 0 {
		v.add(field, "Must contain at least one element")
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("fields", noneSet, "No fields to update")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method. Call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
