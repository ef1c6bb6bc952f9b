package schema

import (
	"errors"
	"fmt"
	"time"

	"annotation-review/internal/domain"
	"annotation-review/internal/settings"
)

// fieldHints are shown next to failed fields in the settings form.
var fieldHints = map[string]string{
	"duration":     "Set the default duration to display, in seconds.",
	"min_freq":     "Frequencies are in Hz and cannot be negative.",
	"max_freq":     "Leave empty to display up to the Nyquist frequency.",
	"samplerate":   "Leave empty to keep the recording's native samplerate.",
	"low_freq":     "Leave empty to disable the high-pass filter.",
	"high_freq":    "Leave empty to disable the low-pass filter.",
	"filter_order": "Use a whole number of at least 1.",
	"speed":        "Playback speed is a positive multiplier.",
	"channel":      "Channels are numbered from 0.",
	"window_size":  "Window size is the STFT window length in seconds.",
	"overlap":      fmt.Sprintf("Choose a fraction between %g and %g.", settings.MinOverlap, settings.MaxOverlap),
	"window":       "Pick one of the listed window functions.",
	"scale":        "Pick amplitude, power, or dB.",
	"cmap":         "Pick one of the listed color maps.",
}

// Checker validates whole settings values before they are committed.
type Checker struct {
	now func() time.Time
	// Samplerate of the recording on display; 0 when unknown.
	Samplerate float64
}

// NewChecker builds a checker using the wall clock.
func NewChecker() *Checker {
	return &Checker{now: time.Now}
}

// NewCheckerForTests creates a checker with an injectable clock.
func NewCheckerForTests(now func() time.Time, samplerate float64) *Checker {
	return &Checker{now: now, Samplerate: samplerate}
}

// WithSamplerate returns a copy of c bounded by samplerate, keeping its clock.
func (c *Checker) WithSamplerate(samplerate float64) *Checker {
	next := *c
	next.Samplerate = samplerate
	return &next
}

// View checks each view field plus the frequency range.
func (c *Checker) View(v domain.ViewSettings) domain.ValidationReport {
	items := checkFields(v, settings.ViewFields())

	item := domain.ValidationItem{ID: "view_freq_range", Field: "max_freq"}
	switch {
	case v.MaxFreq != nil && *v.MaxFreq <= v.MinFreq:
		fail(&item, fmt.Sprintf("Maximum frequency %g Hz must be above minimum %g Hz.", *v.MaxFreq, v.MinFreq),
			"Widen the frequency range.")
	case c.Samplerate > 0 && v.MinFreq > c.Samplerate/2:
		item.Field = "min_freq"
		fail(&item, fmt.Sprintf("Minimum frequency %g Hz is above Nyquist (%g Hz).", v.MinFreq, c.Samplerate/2),
			"Lower the minimum frequency.")
	case c.Samplerate > 0 && v.MaxFreq != nil && *v.MaxFreq > c.Samplerate/2:
		fail(&item, fmt.Sprintf("Maximum frequency %g Hz is above Nyquist (%g Hz).", *v.MaxFreq, c.Samplerate/2),
			"Lower the maximum frequency or leave it empty.")
	default:
		pass(&item, "Frequency range is valid.")
	}
	items = append(items, item)

	return c.report(domain.SettingsKindView, items)
}

// Audio checks each audio field plus the filter band.
func (c *Checker) Audio(a domain.AudioSettings) domain.ValidationReport {
	items := checkFields(a, settings.AudioFields())

	item := domain.ValidationItem{ID: "audio_filter_band", Field: "high_freq"}
	if a.LowFreq != nil && a.HighFreq != nil && *a.HighFreq <= *a.LowFreq {
		fail(&item, fmt.Sprintf("High-pass %g Hz must be below low-pass %g Hz.", *a.LowFreq, *a.HighFreq),
			"Swap or widen the filter band.")
	} else {
		pass(&item, "Filter band is valid.")
	}
	items = append(items, item)

	return c.report(domain.SettingsKindAudio, items)
}

// Spectrogram checks each spectrogram field plus the dB range.
func (c *Checker) Spectrogram(s domain.SpectrogramSettings) domain.ValidationReport {
	items := checkFields(s, settings.SpectrogramFields())

	item := domain.ValidationItem{ID: "spectrogram_db_range", Field: "max_db"}
	if s.MaxDB <= s.MinDB {
		fail(&item, fmt.Sprintf("Maximum %g dB must be above minimum %g dB.", s.MaxDB, s.MinDB),
			"Widen the clamp range.")
	} else {
		pass(&item, "dB range is valid.")
	}
	items = append(items, item)

	return c.report(domain.SettingsKindSpectrogram, items)
}

// ValidateView returns a *domain.ReportError when v fails any check.
func (c *Checker) ValidateView(v domain.ViewSettings) error {
	return c.View(v).Err()
}

// ValidateAudio returns a *domain.ReportError when a fails any check.
func (c *Checker) ValidateAudio(a domain.AudioSettings) error {
	return c.Audio(a).Err()
}

// ValidateSpectrogram returns a *domain.ReportError when s fails any check.
func (c *Checker) ValidateSpectrogram(s domain.SpectrogramSettings) error {
	return c.Spectrogram(s).Err()
}

func (c *Checker) report(kind domain.SettingsKind, items []domain.ValidationItem) domain.ValidationReport {
	hasFailures := false
	for _, item := range items {
		if item.Status == domain.ValidationStatusFail {
			hasFailures = true
			break
		}
	}

	now := time.Now
	if c.now != nil {
		now = c.now
	}
	return domain.ValidationReport{
		Kind:        kind,
		GeneratedAt: now().UTC(),
		HasFailures: hasFailures,
		Items:       items,
	}
}

// checkFields runs every field descriptor against value.
func checkFields[T any](value T, fields []settings.Field[T]) []domain.ValidationItem {
	items := make([]domain.ValidationItem, 0, len(fields)+1)
	for _, field := range fields {
		item := domain.ValidationItem{
			ID:    "field_" + field.Name,
			Field: field.Name,
		}

		err := field.Check(value)
		var verr *settings.ValidationError
		switch {
		case err == nil:
			pass(&item, "Valid.")
		case errors.As(err, &verr):
			fail(&item, verr.Message, fieldHints[field.Name])
		default:
			fail(&item, err.Error(), fieldHints[field.Name])
		}
		items = append(items, item)
	}
	return items
}

func pass(item *domain.ValidationItem, message string) {
	item.Status = domain.ValidationStatusPass
	item.Message = message
}

func fail(item *domain.ValidationItem, message, hint string) {
	item.Status = domain.ValidationStatusFail
	item.Message = message
	item.Hint = hint
}
