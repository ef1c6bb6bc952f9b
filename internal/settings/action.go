// Package settings implements validated reducers for user-tunable
// configuration, the store of saved values, and the debounced form bridge.
package settings

import (
	"errors"
	"fmt"
)

const (
	// ActionSetAll replaces the whole value without validation.
	ActionSetAll = "setAll"
	// ActionReset restores the value captured when the reducer was built.
	ActionReset = "reset"
)

// ErrUnknownAction is returned for action types a reducer does not define.
var ErrUnknownAction = errors.New("unknown settings action")

// ErrInvalidValue is returned when an action carries a value that fails validation.
var ErrInvalidValue = errors.New("invalid settings value")

// Action is one state transition request dispatched to a reducer.
type Action struct {
	Type  string `json:"type"`
	Value any    `json:"value,omitempty"`
}

// SetAll builds a whole-value replacement action.
func SetAll(value any) Action {
	return Action{Type: ActionSetAll, Value: value}
}

// Set builds a single-field action such as setDuration.
func Set(actionType string, value any) Action {
	return Action{Type: actionType, Value: value}
}

// Reset builds a reset action.
func Reset() Action {
	return Action{Type: ActionReset}
}

// ValidationError describes a rejected single-field value.
type ValidationError struct {
	Field   string `json:"field"`
	Value   any    `json:"value"`
	Message string `json:"message"`
}

// Error formats the field, reason, and offending value.
func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s (got %v)", e.Field, e.Message, e.Value)
}

// Unwrap lets callers match ErrInvalidValue with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidValue
}
