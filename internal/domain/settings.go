package domain

// ViewSettings controls the default spectrogram viewport.
type ViewSettings struct {
	Duration float64  `json:"duration" yaml:"duration"`
	MinFreq  float64  `json:"min_freq" yaml:"min_freq"`
	MaxFreq  *float64 `json:"max_freq" yaml:"max_freq"` // nil means Nyquist
}

// AudioSettings controls playback and resampling of recordings.
type AudioSettings struct {
	Samplerate  *float64 `json:"samplerate" yaml:"samplerate"` // nil keeps the native rate
	Resample    bool     `json:"resample" yaml:"resample"`
	LowFreq     *float64 `json:"low_freq" yaml:"low_freq"`
	HighFreq    *float64 `json:"high_freq" yaml:"high_freq"`
	FilterOrder int      `json:"filter_order" yaml:"filter_order"`
	Speed       float64  `json:"speed" yaml:"speed"`
	Channel     int      `json:"channel" yaml:"channel"`
}

// WindowFunction names the STFT window.
type WindowFunction string

const (
	WindowHann           WindowFunction = "hann"
	WindowHamming        WindowFunction = "hamming"
	WindowBoxcar         WindowFunction = "boxcar"
	WindowTriang         WindowFunction = "triang"
	WindowBlackman       WindowFunction = "blackman"
	WindowBartlett       WindowFunction = "bartlett"
	WindowFlattop        WindowFunction = "flattop"
	WindowParzen         WindowFunction = "parzen"
	WindowBohman         WindowFunction = "bohman"
	WindowBlackmanHarris WindowFunction = "blackmanharris"
	WindowNuttall        WindowFunction = "nuttall"
	WindowBarthann       WindowFunction = "barthann"
)

// SpectrogramScale is the magnitude scale of computed spectrograms.
type SpectrogramScale string

const (
	ScaleAmplitude SpectrogramScale = "amplitude"
	ScalePower     SpectrogramScale = "power"
	ScaleDB        SpectrogramScale = "dB"
)

// ColorMap names the palette used to render spectrograms.
type ColorMap string

const (
	ColorMapGray      ColorMap = "gray"
	ColorMapViridis   ColorMap = "viridis"
	ColorMapMagma     ColorMap = "magma"
	ColorMapInferno   ColorMap = "inferno"
	ColorMapPlasma    ColorMap = "plasma"
	ColorMapCividis   ColorMap = "cividis"
	ColorMapCool      ColorMap = "cool"
	ColorMapCubehelix ColorMap = "cubehelix"
	ColorMapTwilight  ColorMap = "twilight"
)

// SpectrogramSettings holds STFT and rendering parameters.
type SpectrogramSettings struct {
	WindowSize float64          `json:"window_size" yaml:"window_size"`
	Overlap    float64          `json:"overlap" yaml:"overlap"`
	Window     WindowFunction   `json:"window" yaml:"window"`
	Scale      SpectrogramScale `json:"scale" yaml:"scale"`
	Clamp      bool             `json:"clamp" yaml:"clamp"`
	MinDB      float64          `json:"min_db" yaml:"min_db"`
	MaxDB      float64          `json:"max_db" yaml:"max_db"`
	Normalize  bool             `json:"normalize" yaml:"normalize"`
	PCEN       bool             `json:"pcen" yaml:"pcen"`
	ColorMap   ColorMap         `json:"cmap" yaml:"cmap"`
}

// Settings is the saved configuration of every settings kind.
type Settings struct {
	View        ViewSettings        `json:"view" yaml:"view"`
	Audio       AudioSettings       `json:"audio" yaml:"audio"`
	Spectrogram SpectrogramSettings `json:"spectrogram" yaml:"spectrogram"`
}

// SettingsKind identifies one independently managed settings concern.
type SettingsKind string

const (
	SettingsKindView        SettingsKind = "view"
	SettingsKindAudio       SettingsKind = "audio"
	SettingsKindSpectrogram SettingsKind = "spectrogram"
)

// Clone returns a copy that shares no pointers with v.
func (v ViewSettings) Clone() ViewSettings {
	v.MaxFreq = cloneFloat(v.MaxFreq)
	return v
}

// Clone returns a copy that shares no pointers with a.
func (a AudioSettings) Clone() AudioSettings {
	a.Samplerate = cloneFloat(a.Samplerate)
	a.LowFreq = cloneFloat(a.LowFreq)
	a.HighFreq = cloneFloat(a.HighFreq)
	return a
}

// Clone returns a copy of s; spectrogram settings hold no pointers.
func (s SpectrogramSettings) Clone() SpectrogramSettings {
	return s
}

// Clone returns a deep copy of every settings kind.
func (s Settings) Clone() Settings {
	return Settings{
		View:        s.View.Clone(),
		Audio:       s.Audio.Clone(),
		Spectrogram: s.Spectrogram.Clone(),
	}
}

// Float returns a pointer to a copy of v for nullable settings fields.
func Float(v float64) *float64 {
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
