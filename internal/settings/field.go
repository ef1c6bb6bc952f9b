package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
)

// Rule validates one numeric value and returns a reason on failure.
type Rule func(v float64) error

// NonNegative rejects values below zero.
func NonNegative(v float64) error {
	if v < 0 {
		return errors.New("must be non-negative")
	}
	return nil
}

// Positive rejects zero and negative values.
func Positive(v float64) error {
	if v <= 0 {
		return errors.New("must be positive")
	}
	return nil
}

// AtLeast rejects values below min.
func AtLeast(min float64) Rule {
	return func(v float64) error {
		if v < min {
			return fmt.Errorf("must be at least %g", min)
		}
		return nil
	}
}

// Between rejects values outside [min, max].
func Between(min, max float64) Rule {
	return func(v float64) error {
		if v < min || v > max {
			return fmt.Errorf("must be between %g and %g", min, max)
		}
		return nil
	}
}

// Field describes one settable field of T: its action name, how a value is
// validated, and how it is written into a copy of the state.
type Field[T any] struct {
	Name   string
	Action string

	apply func(state T, value any) (T, error)
	check func(state T) error
}

// Apply validates value and returns a copy of state with only this field changed.
// On failure state is returned as given.
func (f Field[T]) Apply(state T, value any) (T, error) {
	return f.apply(state, value)
}

// Check validates the current value of this field within state.
func (f Field[T]) Check(state T) error {
	if f.check == nil {
		return nil
	}
	return f.check(state)
}

// NumberField defines a finite float field constrained by rules.
func NumberField[T any](name, action string, get func(T) float64, set func(*T, float64), rules ...Rule) Field[T] {
	return Field[T]{
		Name:   name,
		Action: action,
		apply: func(state T, value any) (T, error) {
			n, ok := toFloat(value)
			if !ok {
				return state, &ValidationError{Field: name, Value: value, Message: "must be a number"}
			}
			if err := checkNumber(name, n, rules); err != nil {
				return state, err
			}
			next := state
			set(&next, n)
			return next, nil
		},
		check: func(state T) error {
			return checkNumber(name, get(state), rules)
		},
	}
}

// OptionalNumberField defines a nullable float field; nil is always accepted.
func OptionalNumberField[T any](name, action string, get func(T) *float64, set func(*T, *float64), rules ...Rule) Field[T] {
	return Field[T]{
		Name:   name,
		Action: action,
		apply: func(state T, value any) (T, error) {
			next := state
			if isNil(value) {
				set(&next, nil)
				return next, nil
			}

			n, ok := toFloat(value)
			if !ok {
				return state, &ValidationError{Field: name, Value: value, Message: "must be a number or null"}
			}
			if err := checkNumber(name, n, rules); err != nil {
				return state, err
			}
			set(&next, &n)
			return next, nil
		},
		check: func(state T) error {
			v := get(state)
			if v == nil {
				return nil
			}
			return checkNumber(name, *v, rules)
		},
	}
}

// IntField defines an integral field; fractional values are rejected, not rounded.
func IntField[T any](name, action string, get func(T) int, set func(*T, int), rules ...Rule) Field[T] {
	return Field[T]{
		Name:   name,
		Action: action,
		apply: func(state T, value any) (T, error) {
			n, ok := toFloat(value)
			if !ok {
				return state, &ValidationError{Field: name, Value: value, Message: "must be an integer"}
			}
			if err := checkInt(name, n, rules); err != nil {
				return state, err
			}
			next := state
			set(&next, int(n))
			return next, nil
		},
		check: func(state T) error {
			return checkInt(name, float64(get(state)), rules)
		},
	}
}

// BoolField defines a boolean toggle.
func BoolField[T any](name, action string, set func(*T, bool)) Field[T] {
	return Field[T]{
		Name:   name,
		Action: action,
		apply: func(state T, value any) (T, error) {
			b, ok := value.(bool)
			if !ok {
				return state, &ValidationError{Field: name, Value: value, Message: "must be a boolean"}
			}
			next := state
			set(&next, b)
			return next, nil
		},
	}
}

// EnumField defines a string-backed field restricted to allowed values.
func EnumField[T any, E ~string](name, action string, allowed []E, get func(T) E, set func(*T, E)) Field[T] {
	return Field[T]{
		Name:   name,
		Action: action,
		apply: func(state T, value any) (T, error) {
			var e E
			switch v := value.(type) {
			case E:
				e = v
			case string:
				e = E(v)
			default:
				return state, &ValidationError{Field: name, Value: value, Message: "must be a string"}
			}
			if err := checkEnum(name, e, allowed); err != nil {
				return state, err
			}
			next := state
			set(&next, e)
			return next, nil
		},
		check: func(state T) error {
			return checkEnum(name, get(state), allowed)
		},
	}
}

func checkNumber(name string, n float64, rules []Rule) error {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return &ValidationError{Field: name, Value: n, Message: "must be finite"}
	}
	for _, rule := range rules {
		if err := rule(n); err != nil {
			return &ValidationError{Field: name, Value: n, Message: err.Error()}
		}
	}
	return nil
}

func checkInt(name string, n float64, rules []Rule) error {
	if err := checkNumber(name, n, rules); err != nil {
		return err
	}
	if n != math.Trunc(n) {
		return &ValidationError{Field: name, Value: n, Message: "must be an integer"}
	}
	// float64(math.MinInt) is exact; its negation is one past math.MaxInt.
	if n < float64(math.MinInt) || n >= -float64(math.MinInt) {
		return &ValidationError{Field: name, Value: n, Message: "is out of range"}
	}
	return nil
}

func checkEnum[E ~string](name string, e E, allowed []E) error {
	if !slices.Contains(allowed, e) {
		return &ValidationError{Field: name, Value: string(e), Message: "is not a recognized option"}
	}
	return nil
}

// toFloat accepts the numeric shapes produced by Go callers and JSON decoding:
// every built-in integer and float kind, json.Number, and *float64 or *int.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case *float64:
		if v == nil {
			return 0, false
		}
		return *v, true
	case *int:
		if v == nil {
			return 0, false
		}
		return float64(*v), true
	default:
		return 0, false
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch p := value.(type) {
	case *float64:
		return p == nil
	case *int:
		return p == nil
	}
	return false
}
