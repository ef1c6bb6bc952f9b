package settings

import (
	"encoding/json"
	"fmt"
)

// Reducer is a pure transition function over configuration values of type T.
// Each reducer captures its own initial value, which reset restores.
type Reducer[T any] struct {
	initial T
	fields  []Field[T]
	byType  map[string]Field[T]
}

// NewReducer builds a reducer over the given fields with initial as its
// rollback point.
func NewReducer[T any](initial T, fields ...Field[T]) *Reducer[T] {
	byType := make(map[string]Field[T], len(fields))
	for _, field := range fields {
		byType[field.Action] = field
	}

	return &Reducer[T]{
		initial: clone(initial),
		fields:  fields,
		byType:  byType,
	}
}

// Initial returns the value captured at construction.
func (r *Reducer[T]) Initial() T {
	return clone(r.initial)
}

// Fields returns the field descriptors in declaration order.
func (r *Reducer[T]) Fields() []Field[T] {
	return append([]Field[T](nil), r.fields...)
}

// Reduce applies action to state and returns the next state.
// On error the returned value is state itself.
func (r *Reducer[T]) Reduce(state T, action Action) (T, error) {
	switch action.Type {
	case ActionSetAll:
		next, err := decodeAll[T](action.Value)
		if err != nil {
			return state, err
		}
		return clone(next), nil
	case ActionReset:
		return clone(r.initial), nil
	}

	field, ok := r.byType[action.Type]
	if !ok {
		return state, fmt.Errorf("%w: %q", ErrUnknownAction, action.Type)
	}
	return field.Apply(state, action.Value)
}

// decodeAll turns a setAll payload into T. Bound frontend calls deliver the
// object as a decoded JSON map, so maps and raw JSON are unmarshalled as a whole
// value: fields absent from the payload take their zero value.
func decodeAll[T any](value any) (T, error) {
	var next T
	var raw []byte

	switch v := value.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return next, fmt.Errorf("%w: %s expects %T, got nil", ErrInvalidValue, ActionSetAll, next)
		}
		return *v, nil
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	case map[string]any:
		b, err := json.Marshal(v)
		if err != nil {
			return next, fmt.Errorf("%w: %s: %v", ErrInvalidValue, ActionSetAll, err)
		}
		raw = b
	default:
		return next, fmt.Errorf("%w: %s expects %T, got %T", ErrInvalidValue, ActionSetAll, next, value)
	}

	if err := json.Unmarshal(raw, &next); err != nil {
		return next, fmt.Errorf("%w: %s: %v", ErrInvalidValue, ActionSetAll, err)
	}
	return next, nil
}

// clone deep-copies values that know how to, so no pointer is shared between
// the captured initial value and live state.
func clone[T any](v T) T {
	if c, ok := any(v).(interface{ Clone() T }); ok {
		return c.Clone()
	}
	return v
}
