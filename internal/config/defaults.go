package config

import "annotation-review/internal/domain"

// DefaultSettings returns the hardcoded configuration used on first launch.
func DefaultSettings() domain.Settings {
	return domain.Settings{
		View: domain.ViewSettings{
			Duration: 5,
			MinFreq:  0,
			MaxFreq:  nil,
		},
		Audio: domain.AudioSettings{
			Samplerate:  nil,
			Resample:    false,
			LowFreq:     nil,
			HighFreq:    nil,
			FilterOrder: 5,
			Speed:       1,
			Channel:     0,
		},
		Spectrogram: domain.SpectrogramSettings{
			WindowSize: 0.025,
			Overlap:    0.5,
			Window:     domain.WindowHann,
			Scale:      domain.ScaleDB,
			Clamp:      true,
			MinDB:      -90,
			MaxDB:      0,
			Normalize:  true,
			PCEN:       false,
			ColorMap:   domain.ColorMapGray,
		},
	}
}
