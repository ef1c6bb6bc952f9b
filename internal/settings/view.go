package settings

import "annotation-review/internal/domain"

const (
	ActionSetDuration = "setDuration"
	ActionSetMinFreq  = "setMinFreq"
	ActionSetMaxFreq  = "setMaxFreq"
)

// ViewFields lists the settable view fields.
func ViewFields() []Field[domain.ViewSettings] {
	return []Field[domain.ViewSettings]{
		NumberField(
			"duration", ActionSetDuration,
			func(v domain.ViewSettings) float64 { return v.Duration },
			func(v *domain.ViewSettings, d float64) { v.Duration = d },
			NonNegative,
		),
		NumberField(
			"min_freq", ActionSetMinFreq,
			func(v domain.ViewSettings) float64 { return v.MinFreq },
			func(v *domain.ViewSettings, f float64) { v.MinFreq = f },
			NonNegative,
		),
		OptionalNumberField(
			"max_freq", ActionSetMaxFreq,
			func(v domain.ViewSettings) *float64 { return v.MaxFreq },
			func(v *domain.ViewSettings, f *float64) { v.MaxFreq = f },
			NonNegative,
		),
	}
}

// NewViewReducer builds the view reducer rooted at initial.
func NewViewReducer(initial domain.ViewSettings) *Reducer[domain.ViewSettings] {
	return NewReducer(initial, ViewFields()...)
}

// NewViewSession starts a view session rooted at initial.
func NewViewSession(initial domain.ViewSettings) *Session[domain.ViewSettings] {
	return NewSession(domain.SettingsKindView, NewViewReducer(initial))
}
