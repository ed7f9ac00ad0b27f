// Package codes validates 4-digit DCSPH codes and generates ranked code
// suggestions from matched locations and pathologies.
package codes

import (
	"fmt"

	"github.com/fysioscribe/dcsph-engine/internal/taxonomy"
)

// #region validation-error

// ValidationReason identifies which check a code failed.
type ValidationReason string

const (
	ReasonEmpty            ValidationReason = "empty"
	ReasonLength           ValidationReason = "length"
	ReasonNotNumeric       ValidationReason = "not_numeric"
	ReasonUnknownLocation  ValidationReason = "unknown_location"
	ReasonUnknownPathology ValidationReason = "unknown_pathology"
)

// ValidationError describes why a code failed validation. The message
// is a diagnostic for logs, never surfaced to patients.
type ValidationError struct {
	Reason  ValidationReason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(reason ValidationReason, format string, args ...any) *ValidationError {
	return &ValidationError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// #endregion

// #region validate

// Validate checks a candidate 4-digit code against the taxonomy and
// returns the resolved composite on success.
func Validate(code string) (taxonomy.DCSPHCode, error) {
	if code == "" {
		return taxonomy.DCSPHCode{}, newValidationError(ReasonEmpty, "code is empty")
	}
	if len(code) != 4 {
		return taxonomy.DCSPHCode{}, newValidationError(ReasonLength,
			"code %q must be exactly 4 digits, got %d characters", code, len(code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return taxonomy.DCSPHCode{}, newValidationError(ReasonNotNumeric,
				"code %q contains non-numeric characters", code)
		}
	}

	locCode, patCode := code[:2], code[2:]
	if _, ok := taxonomy.GetLocation(locCode); !ok {
		return taxonomy.DCSPHCode{}, newValidationError(ReasonUnknownLocation,
			"unknown location code %q in %q", locCode, code)
	}
	if _, ok := taxonomy.GetPathology(patCode); !ok {
		return taxonomy.DCSPHCode{}, newValidationError(ReasonUnknownPathology,
			"unknown pathology code %q in %q", patCode, code)
	}

	built, _ := taxonomy.BuildCode(locCode, patCode)
	return built, nil
}

// IsValid reports whether a code passes Validate.
func IsValid(code string) bool {
	_, err := Validate(code)
	return err == nil
}

// #endregion
