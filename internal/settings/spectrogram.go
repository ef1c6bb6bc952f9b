package settings

import "annotation-review/internal/domain"

const (
	ActionSetWindowSize = "setWindowSize"
	ActionSetOverlap    = "setOverlap"
	ActionSetWindow     = "setWindow"
	ActionSetScale      = "setScale"
	ActionSetClamp      = "setClamp"
	ActionSetMinDB      = "setMinDB"
	ActionSetMaxDB      = "setMaxDB"
	ActionSetNormalize  = "setNormalize"
	ActionSetPCEN       = "setPCEN"
	ActionSetColorMap   = "setColorMap"
)

// Overlap is a fraction of the window size shared by consecutive frames.
const (
	MinOverlap = 0.1
	MaxOverlap = 0.95
)

// WindowFunctions lists the accepted STFT windows.
var WindowFunctions = []domain.WindowFunction{
	domain.WindowHann,
	domain.WindowHamming,
	domain.WindowBoxcar,
	domain.WindowTriang,
	domain.WindowBlackman,
	domain.WindowBartlett,
	domain.WindowFlattop,
	domain.WindowParzen,
	domain.WindowBohman,
	domain.WindowBlackmanHarris,
	domain.WindowNuttall,
	domain.WindowBarthann,
}

// Scales lists the accepted magnitude scales.
var Scales = []domain.SpectrogramScale{
	domain.ScaleAmplitude,
	domain.ScalePower,
	domain.ScaleDB,
}

// ColorMaps lists the accepted palettes.
var ColorMaps = []domain.ColorMap{
	domain.ColorMapGray,
	domain.ColorMapViridis,
	domain.ColorMapMagma,
	domain.ColorMapInferno,
	domain.ColorMapPlasma,
	domain.ColorMapCividis,
	domain.ColorMapCool,
	domain.ColorMapCubehelix,
	domain.ColorMapTwilight,
}

// SpectrogramFields lists the settable spectrogram fields.
func SpectrogramFields() []Field[domain.SpectrogramSettings] {
	return []Field[domain.SpectrogramSettings]{
		NumberField(
			"window_size", ActionSetWindowSize,
			func(s domain.SpectrogramSettings) float64 { return s.WindowSize },
			func(s *domain.SpectrogramSettings, v float64) { s.WindowSize = v },
			Positive,
		),
		NumberField(
			"overlap", ActionSetOverlap,
			func(s domain.SpectrogramSettings) float64 { return s.Overlap },
			func(s *domain.SpectrogramSettings, v float64) { s.Overlap = v },
			Between(MinOverlap, MaxOverlap),
		),
		EnumField(
			"window", ActionSetWindow, WindowFunctions,
			func(s domain.SpectrogramSettings) domain.WindowFunction { return s.Window },
			func(s *domain.SpectrogramSettings, v domain.WindowFunction) { s.Window = v },
		),
		EnumField(
			"scale", ActionSetScale, Scales,
			func(s domain.SpectrogramSettings) domain.SpectrogramScale { return s.Scale },
			func(s *domain.SpectrogramSettings, v domain.SpectrogramScale) { s.Scale = v },
		),
		BoolField(
			"clamp", ActionSetClamp,
			func(s *domain.SpectrogramSettings, v bool) { s.Clamp = v },
		),
		NumberField(
			"min_db", ActionSetMinDB,
			func(s domain.SpectrogramSettings) float64 { return s.MinDB },
			func(s *domain.SpectrogramSettings, v float64) { s.MinDB = v },
		),
		NumberField(
			"max_db", ActionSetMaxDB,
			func(s domain.SpectrogramSettings) float64 { return s.MaxDB },
			func(s *domain.SpectrogramSettings, v float64) { s.MaxDB = v },
		),
		BoolField(
			"normalize", ActionSetNormalize,
			func(s *domain.SpectrogramSettings, v bool) { s.Normalize = v },
		),
		BoolField(
			"pcen", ActionSetPCEN,
			func(s *domain.SpectrogramSettings, v bool) { s.PCEN = v },
		),
		EnumField(
			"cmap", ActionSetColorMap, ColorMaps,
			func(s domain.SpectrogramSettings) domain.ColorMap { return s.ColorMap },
			func(s *domain.SpectrogramSettings, v domain.ColorMap) { s.ColorMap = v },
		),
	}
}

// NewSpectrogramReducer builds the spectrogram reducer rooted at initial.
func NewSpectrogramReducer(initial domain.SpectrogramSettings) *Reducer[domain.SpectrogramSettings] {
	return NewReducer(initial, SpectrogramFields()...)
}

// NewSpectrogramSession starts a spectrogram session rooted at initial.
func NewSpectrogramSession(initial domain.SpectrogramSettings) *Session[domain.SpectrogramSettings] {
	return NewSession(domain.SettingsKindSpectrogram, NewSpectrogramReducer(initial))
}
