package schema

import (
	"errors"
	"testing"
	"time"

	"annotation-review/internal/domain"
)

var fixedNow = time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

func newTestChecker(samplerate float64) *Checker {
	return NewCheckerForTests(func() time.Time { return fixedNow }, samplerate)
}

// findItem returns the report item with the given id.
func findItem(t *testing.T, report domain.ValidationReport, id string) domain.ValidationItem {
	t.Helper()
	for _, item := range report.Items {
		if item.ID == id {
			return item
		}
	}
	t.Fatalf("item %s not found in %+v", id, report.Items)
	return domain.ValidationItem{}
}

// TestViewValid verifies a valid view passes every check.
func TestViewValid(t *testing.T) {
	report := newTestChecker(48000).View(domain.ViewSettings{Duration: 5, MaxFreq: domain.Float(24000)})
	if report.HasFailures {
		t.Fatalf("unexpected failures: %+v", report.Failures())
	}
	if report.Kind != domain.SettingsKindView {
		t.Fatalf("kind = %s, want view", report.Kind)
	}
	if !report.GeneratedAt.Equal(fixedNow) {
		t.Fatalf("generated at = %v, want %v", report.GeneratedAt, fixedNow)
	}
	if err := report.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	// three fields plus the range check
	if len(report.Items) != 4 {
		t.Fatalf("items = %d, want 4", len(report.Items))
	}
}

// TestViewFieldAndRangeFailures checks per-field and cross-field items.
func TestViewFieldAndRangeFailures(t *testing.T) {
	report := newTestChecker(0).View(domain.ViewSettings{Duration: -1, MinFreq: 500, MaxFreq: domain.Float(100)})
	if !report.HasFailures {
		t.Fatal("expected failures")
	}

	duration := findItem(t, report, "field_duration")
	if duration.Status != domain.ValidationStatusFail || duration.Hint == "" {
		t.Fatalf("duration item = %+v", duration)
	}
	if rng := findItem(t, report, "view_freq_range"); rng.Status != domain.ValidationStatusFail {
		t.Fatalf("range item = %+v", rng)
	}

	var reportErr *domain.ReportError
	if !errors.As(report.Err(), &reportErr) {
		t.Fatalf("Err() type = %T, want *domain.ReportError", report.Err())
	}
	if len(reportErr.Report.Failures()) != 2 {
		t.Fatalf("failures = %+v, want 2", reportErr.Report.Failures())
	}
}

// TestViewNyquist checks frequencies against the recording samplerate.
func TestViewNyquist(t *testing.T) {
	c := newTestChecker(16000)
	if err := c.ValidateView(domain.ViewSettings{Duration: 1, MaxFreq: domain.Float(9000)}); err == nil {
		t.Fatal("expected max_freq above nyquist to fail")
	}
	if err := c.ValidateView(domain.ViewSettings{Duration: 1, MinFreq: 8500}); err == nil {
		t.Fatal("expected min_freq above nyquist to fail")
	}
	if err := c.ValidateView(domain.ViewSettings{Duration: 1, MaxFreq: domain.Float(8000)}); err != nil {
		t.Fatalf("ValidateView() = %v", err)
	}
}

// TestAudioFilterBand checks the high-pass/low-pass ordering rule.
func TestAudioFilterBand(t *testing.T) {
	c := newTestChecker(0)
	audio := domain.AudioSettings{FilterOrder: 5, Speed: 1, LowFreq: domain.Float(2000), HighFreq: domain.Float(1000)}

	report := c.Audio(audio)
	if item := findItem(t, report, "audio_filter_band"); item.Status != domain.ValidationStatusFail {
		t.Fatalf("band item = %+v", item)
	}

	audio.HighFreq = domain.Float(4000)
	if err := c.ValidateAudio(audio); err != nil {
		t.Fatalf("ValidateAudio() = %v", err)
	}
}

// TestSpectrogramChecks checks enum fields and the dB range.
func TestSpectrogramChecks(t *testing.T) {
	c := newTestChecker(0)
	s := domain.SpectrogramSettings{
		WindowSize: 0.025,
		Overlap:    0.5,
		Window:     "kaiser",
		Scale:      domain.ScaleDB,
		MinDB:      0,
		MaxDB:      -90,
		ColorMap:   domain.ColorMapGray,
	}

	report := c.Spectrogram(s)
	if item := findItem(t, report, "field_window"); item.Status != domain.ValidationStatusFail {
		t.Fatalf("window item = %+v", item)
	}
	if item := findItem(t, report, "spectrogram_db_range"); item.Status != domain.ValidationStatusFail {
		t.Fatalf("db item = %+v", item)
	}

	s.Window = domain.WindowHann
	s.MinDB, s.MaxDB = -90, 0
	if err := c.ValidateSpectrogram(s); err != nil {
		t.Fatalf("ValidateSpectrogram() = %v", err)
	}
}
