package settings

import "annotation-review/internal/domain"

const (
	ActionSetSamplerate  = "setSamplerate"
	ActionSetResample    = "setResample"
	ActionSetLowFreq     = "setLowFreq"
	ActionSetHighFreq    = "setHighFreq"
	ActionSetFilterOrder = "setFilterOrder"
	ActionSetSpeed       = "setSpeed"
	ActionSetChannel     = "setChannel"
)

// AudioFields lists the settable audio fields.
func AudioFields() []Field[domain.AudioSettings] {
	return []Field[domain.AudioSettings]{
		OptionalNumberField(
			"samplerate", ActionSetSamplerate,
			func(a domain.AudioSettings) *float64 { return a.Samplerate },
			func(a *domain.AudioSettings, v *float64) { a.Samplerate = v },
			Positive,
		),
		BoolField(
			"resample", ActionSetResample,
			func(a *domain.AudioSettings, v bool) { a.Resample = v },
		),
		OptionalNumberField(
			"low_freq", ActionSetLowFreq,
			func(a domain.AudioSettings) *float64 { return a.LowFreq },
			func(a *domain.AudioSettings, v *float64) { a.LowFreq = v },
			NonNegative,
		),
		OptionalNumberField(
			"high_freq", ActionSetHighFreq,
			func(a domain.AudioSettings) *float64 { return a.HighFreq },
			func(a *domain.AudioSettings, v *float64) { a.HighFreq = v },
			NonNegative,
		),
		IntField(
			"filter_order", ActionSetFilterOrder,
			func(a domain.AudioSettings) int { return a.FilterOrder },
			func(a *domain.AudioSettings, v int) { a.FilterOrder = v },
			AtLeast(1),
		),
		NumberField(
			"speed", ActionSetSpeed,
			func(a domain.AudioSettings) float64 { return a.Speed },
			func(a *domain.AudioSettings, v float64) { a.Speed = v },
			Positive,
		),
		IntField(
			"channel", ActionSetChannel,
			func(a domain.AudioSettings) int { return a.Channel },
			func(a *domain.AudioSettings, v int) { a.Channel = v },
			NonNegative,
		),
	}
}

// NewAudioReducer builds the audio reducer rooted at initial.
func NewAudioReducer(initial domain.AudioSettings) *Reducer[domain.AudioSettings] {
	return NewReducer(initial, AudioFields()...)
}

// NewAudioSession starts an audio session rooted at initial.
func NewAudioSession(initial domain.AudioSettings) *Session[domain.AudioSettings] {
	return NewSession(domain.SettingsKindAudio, NewAudioReducer(initial))
}
