package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"annotation-review/internal/annotation"
	"annotation-review/internal/config"
	"annotation-review/internal/domain"
	"annotation-review/internal/events"
	"annotation-review/internal/schema"
	"annotation-review/internal/settings"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// eventName is the runtime channel settings events are pushed on.
const eventName = "settings:event"

// App wires the settings store, live settings sessions, form bridges, and
// task status helpers to the Wails frontend.
type App struct {
	Store  settings.Store
	assets fs.FS
	cfg    config.AppConfig
	log    logger.Logger
	events *events.Bus

	mu              sync.Mutex
	checker         *schema.Checker
	view            *settings.Session[domain.ViewSettings]
	audio           *settings.Session[domain.AudioSettings]
	spectrogram     *settings.Session[domain.SpectrogramSettings]
	viewSync        *settings.Bridge[domain.ViewSettings]
	audioSync       *settings.Bridge[domain.AudioSettings]
	spectrogramSync *settings.Bridge[domain.SpectrogramSettings]
	runtimeCtx      context.Context
}

// TaskSearchResult reports a task lookup; a miss is not an error.
type TaskSearchResult struct {
	Found   bool         `json:"found"`
	Task    *domain.Task `json:"task,omitempty"`
	Message string       `json:"message,omitempty"`
}

// New builds the application with persisted settings.
func New() (*App, error) {
	return NewWithAssets(nil)
}

// NewWithAssets builds the application and optionally configures embedded frontend assets.
func NewWithAssets(assets fs.FS) (*App, error) {
	cfg := config.FromEnv()

	file := config.NewFileStore(cfg.SettingsPath)
	saved, err := file.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	app := newApp(settings.NewMemoryStore(saved, file), cfg, newLeveledLogger(logger.NewDefaultLogger(), cfg.LogLevel))
	app.assets = assets
	return app, nil
}

// newApp builds an App around store and opens the first settings sessions.
func newApp(store settings.Store, cfg config.AppConfig, log logger.Logger) *App {
	a := &App{
		Store:   store,
		cfg:     cfg,
		log:     log,
		events:  events.NewBus(cfg.EventBuffer),
		checker: schema.NewChecker(),
	}
	a.OpenSettings()
	return a
}

// Run starts the Wails desktop application and binds backend methods.
func (a *App) Run() error {
	assetOptions := &assetserver.Options{}
	if a.assets != nil {
		assetOptions.Assets = a.assets
	} else {
		assetOptions.Handler = http.FileServer(http.Dir("./frontend"))
	}

	level, err := logger.StringToLogLevel(a.cfg.LogLevel)
	if err != nil {
		level = logger.INFO
	}

	return wails.Run(&options.App{
		Title:       "Annotation Review",
		Width:       1280,
		Height:      820,
		AssetServer: assetOptions,
		Logger:      a.log,
		LogLevel:    level,
		OnStartup:   a.Startup,
		OnShutdown:  a.Shutdown,
		Bind:        []interface{}{a},
	})
}

// Startup stores Wails runtime context for push events.
func (a *App) Startup(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.runtimeCtx = ctx
}

// Shutdown drops pending form edits and the runtime context.
func (a *App) Shutdown(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closeBridgesLocked()
	a.runtimeCtx = nil
}

// OpenSettings starts fresh sessions seeded with the saved settings.
// Pending edits of the previous sessions are dropped.
func (a *App) OpenSettings() domain.Settings {
	saved := a.Store.Saved()

	a.mu.Lock()
	defer a.mu.Unlock()

	a.closeBridgesLocked()
	a.view = settings.NewViewSession(saved.View)
	a.audio = settings.NewAudioSession(saved.Audio)
	a.spectrogram = settings.NewSpectrogramSession(saved.Spectrogram)
	a.viewSync = newBridge(a, a.view, func(v domain.ViewSettings) error {
		return a.currentChecker().ValidateView(v)
	})
	a.audioSync = newBridge(a, a.audio, func(v domain.AudioSettings) error {
		return a.currentChecker().ValidateAudio(v)
	})
	a.spectrogramSync = newBridge(a, a.spectrogram, func(v domain.SpectrogramSettings) error {
		return a.currentChecker().ValidateSpectrogram(v)
	})
	return saved
}

// GetSettings returns the live values of every settings kind.
func (a *App) GetSettings() domain.Settings {
	view, audio, spectrogram := a.sessions()
	return domain.Settings{
		View:        view.Current(),
		Audio:       audio.Current(),
		Spectrogram: spectrogram.Current(),
	}
}

// GetSavedSettings returns the last explicitly saved settings.
func (a *App) GetSavedSettings() domain.Settings {
	return a.Store.Saved()
}

// CheckSettings validates the live values of every settings kind.
func (a *App) CheckSettings() []domain.ValidationReport {
	current := a.GetSettings()
	checker := a.currentChecker()
	return []domain.ValidationReport{
		checker.View(current.View),
		checker.Audio(current.Audio),
		checker.Spectrogram(current.Spectrogram),
	}
}

// SetRecordingSamplerate bounds frequency checks by the displayed recording.
// Zero clears the bound.
func (a *App) SetRecordingSamplerate(samplerate float64) error {
	if samplerate < 0 {
		return fmt.Errorf("samplerate must be non-negative, got %g", samplerate)
	}

	a.mu.Lock()
	a.checker = a.checker.WithSamplerate(samplerate)
	a.mu.Unlock()
	return nil
}

// UpdateViewSettings forwards a form edit through the debounced bridge and
// returns the immediate validation report for field errors.
func (a *App) UpdateViewSettings(v domain.ViewSettings) domain.ValidationReport {
	a.mu.Lock()
	bridge := a.viewSync
	a.mu.Unlock()

	bridge.Push(v)
	return a.currentChecker().View(v)
}

// UpdateAudioSettings forwards a form edit through the debounced bridge.
func (a *App) UpdateAudioSettings(v domain.AudioSettings) domain.ValidationReport {
	a.mu.Lock()
	bridge := a.audioSync
	a.mu.Unlock()

	bridge.Push(v)
	return a.currentChecker().Audio(v)
}

// UpdateSpectrogramSettings forwards a form edit through the debounced bridge.
func (a *App) UpdateSpectrogramSettings(v domain.SpectrogramSettings) domain.ValidationReport {
	a.mu.Lock()
	bridge := a.spectrogramSync
	a.mu.Unlock()

	bridge.Push(v)
	return a.currentChecker().Spectrogram(v)
}

// DispatchView applies one action to the live view settings.
func (a *App) DispatchView(action settings.Action) (domain.ViewSettings, error) {
	view, _, _ := a.sessions()
	return dispatch(a, view, action)
}

// DispatchAudio applies one action to the live audio settings.
func (a *App) DispatchAudio(action settings.Action) (domain.AudioSettings, error) {
	_, audio, _ := a.sessions()
	return dispatch(a, audio, action)
}

// DispatchSpectrogram applies one action to the live spectrogram settings.
func (a *App) DispatchSpectrogram(action settings.Action) (domain.SpectrogramSettings, error) {
	_, _, spectrogram := a.sessions()
	return dispatch(a, spectrogram, action)
}

// SaveSettings commits pending edits and stores the live values of every kind.
func (a *App) SaveSettings() (domain.Settings, error) {
	a.mu.Lock()
	viewSync, audioSync, spectrogramSync := a.viewSync, a.audioSync, a.spectrogramSync
	a.mu.Unlock()

	viewSync.Flush()
	audioSync.Flush()
	spectrogramSync.Flush()

	current := a.GetSettings()
	if err := a.Store.Save(current); err != nil {
		a.log.Error(fmt.Sprintf("save settings: %v", err))
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}

	a.log.Info("Settings saved")
	a.publishEvent(events.Event{Type: events.TypeSaved, Message: "Settings saved", Value: current})
	return current, nil
}

// ResetSettings rolls every kind back to the value its session opened with.
func (a *App) ResetSettings() (domain.Settings, error) {
	view, audio, spectrogram := a.sessions()

	if _, err := dispatch(a, view, settings.Reset()); err != nil {
		return domain.Settings{}, err
	}
	if _, err := dispatch(a, audio, settings.Reset()); err != nil {
		return domain.Settings{}, err
	}
	if _, err := dispatch(a, spectrogram, settings.Reset()); err != nil {
		return domain.Settings{}, err
	}
	return a.GetSettings(), nil
}

// SettingsEvents returns all events with sequence greater than sinceSeq.
func (a *App) SettingsEvents(sinceSeq int64) []events.Event {
	return a.events.Since(sinceSeq)
}

// SettingsEventsCursor returns the sequence of the newest event so a view
// opened mid-session can poll SettingsEvents without replaying history.
func (a *App) SettingsEventsCursor() int64 {
	return a.events.Last()
}

// TaskStatus returns the badge status of one task.
func (a *App) TaskStatus(task domain.Task) domain.CanonicalStatus {
	return annotation.TaskStatus(task)
}

// TaskProgress summarizes progress over tasks.
func (a *App) TaskProgress(tasks []domain.Task) domain.ProgressSummary {
	return annotation.Aggregate(tasks)
}

// TaskBullets returns task map entries; current may be empty.
func (a *App) TaskBullets(tasks []domain.Task, current string) []annotation.Bullet {
	id, err := uuid.Parse(current)
	if err != nil {
		id = uuid.Nil
	}
	return annotation.Bullets(tasks, id)
}

// TaskPosition returns the 1-based position of a task, or 0 when absent.
func (a *App) TaskPosition(tasks []domain.Task, id string) int {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return 0
	}
	pos, _ := annotation.Position(tasks, parsed)
	return pos
}

// FilterTasks keeps tasks whose status is one of statuses.
func (a *App) FilterTasks(tasks []domain.Task, statuses []domain.CanonicalStatus) []domain.Task {
	return annotation.Filter(tasks, statuses...)
}

// FindTask searches tasks by UUID. A miss is reported in the result.
func (a *App) FindTask(tasks []domain.Task, query string) (TaskSearchResult, error) {
	task, err := annotation.Find(tasks, query)
	if errors.Is(err, annotation.ErrTaskNotFound) {
		a.log.Debug(fmt.Sprintf("task search %q: %v", query, err))
		return TaskSearchResult{Message: "Task not found"}, nil
	}
	if err != nil {
		return TaskSearchResult{}, err
	}
	return TaskSearchResult{Found: true, Task: &task}, nil
}

// sessions returns the live sessions as one consistent set.
func (a *App) sessions() (*settings.Session[domain.ViewSettings], *settings.Session[domain.AudioSettings], *settings.Session[domain.SpectrogramSettings]) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view, a.audio, a.spectrogram
}

func (a *App) currentChecker() *schema.Checker {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.checker
}

// closeBridgesLocked must be called with mu held.
func (a *App) closeBridgesLocked() {
	if a.viewSync != nil {
		a.viewSync.Close()
	}
	if a.audioSync != nil {
		a.audioSync.Close()
	}
	if a.spectrogramSync != nil {
		a.spectrogramSync.Close()
	}
}

// publishEvent stores event history and emits runtime push notifications.
func (a *App) publishEvent(event events.Event) {
	published := a.events.Publish(event)

	a.mu.Lock()
	ctx := a.runtimeCtx
	a.mu.Unlock()
	if ctx != nil {
		wailsruntime.EventsEmit(ctx, eventName, published)
	}
}

// dispatch applies action to session and publishes the outcome.
func dispatch[T any](a *App, session *settings.Session[T], action settings.Action) (T, error) {
	next, err := session.Dispatch(action)
	if err != nil {
		a.rejected(session.Kind(), action.Type, err)
		return next, fmt.Errorf("%s %s: %w", session.Kind(), action.Type, err)
	}

	eventType := events.TypeChanged
	if action.Type == settings.ActionReset {
		eventType = events.TypeReset
	}
	a.publishEvent(events.Event{
		Kind:   session.Kind(),
		Type:   eventType,
		Action: action.Type,
		Value:  next,
	})
	return next, nil
}

// newBridge connects a debounced form bridge to session as setAll commits.
func newBridge[T any](a *App, session *settings.Session[T], validate func(T) error) *settings.Bridge[T] {
	commit := func(v T) error {
		_, err := dispatch(a, session, settings.SetAll(v))
		return err
	}
	onError := func(err error) {
		var reportErr *domain.ReportError
		if errors.As(err, &reportErr) {
			a.rejected(session.Kind(), settings.ActionSetAll, err)
		}
	}
	return settings.NewBridge(a.cfg.Debounce, validate, commit, onError)
}

// rejected logs and publishes a refused settings change.
func (a *App) rejected(kind domain.SettingsKind, action string, err error) {
	a.log.Warning(fmt.Sprintf("%s settings %s rejected: %v", kind, action, err))

	event := events.Event{
		Kind:    kind,
		Type:    events.TypeRejected,
		Action:  action,
		Message: err.Error(),
	}
	var reportErr *domain.ReportError
	if errors.As(err, &reportErr) {
		event.Value = reportErr.Report
	}
	a.publishEvent(event)
}
