package app

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/pinmon/internal/config"
	"github.com/five82/pinmon/internal/logging"
	"github.com/five82/pinmon/internal/monitor"
	"github.com/five82/pinmon/internal/prefs"
	"github.com/five82/pinmon/internal/ui"
)

// Options configure the pinmon application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pinmon/prefs.toml
	Overrides  Overrides
}

// Overrides are command-line values. Zero values mean "not given".
type Overrides struct {
	Source       string
	WindowSize   int
	MaxValue     float64
	Categories   []string
	PollInterval time.Duration
	NoWatch      bool
}

// Session is everything resolved before monitoring starts.
type Session struct {
	Config   config.Config
	Prefs    prefs.Prefs
	Settings monitor.Settings
}

// Prepare loads the config file and saved preferences and merges them with
// the overrides.
func Prepare(opts Options) (Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return Session{}, fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return Session{}, fmt.Errorf("load prefs: %w", err)
	}

	settings, err := Resolve(cfg, userPrefs.Session, opts.Overrides)
	if err != nil {
		return Session{}, err
	}
	return Session{Config: cfg, Prefs: userPrefs, Settings: settings}, nil
}

// Resolve merges the sources of monitor settings. Flags win over the config
// file, which wins over the last saved session; defaults fill the rest.
func Resolve(cfg config.Config, last prefs.Session, o Overrides) (monitor.Settings, error) {
	if !last.Empty() {
		cfg = restore(cfg, last)
	}

	if o.Source != "" {
		path, err := config.ExpandPath(o.Source)
		if err != nil {
			return monitor.Settings{}, fmt.Errorf("resolve source: %w", err)
		}
		cfg.Source = path
	}
	if o.WindowSize != 0 {
		cfg.WindowSize = o.WindowSize
	}
	if o.MaxValue > 0 {
		cfg.MaxValue = o.MaxValue
	}
	if len(o.Categories) > 0 {
		cfg.Categories = o.Categories
	}
	if o.PollInterval > 0 {
		cfg.PollInterval = o.PollInterval
	}
	if o.NoWatch {
		cfg.Watch = false
	}

	settings, err := cfg.Settings()
	if err != nil {
		return monitor.Settings{}, fmt.Errorf("resolve categories: %w", err)
	}
	return settings, nil
}

// restore fills config fields the user left unset from the last session.
func restore(cfg config.Config, last prefs.Session) config.Config {
	if cfg.Source == "" {
		cfg.Source = last.Source
	}
	if cfg.WindowSize == 0 {
		cfg.WindowSize = last.WindowSize
	}
	if cfg.MaxValue == 0 {
		cfg.MaxValue = last.MaxValue
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = last.Categories
	}
	return cfg
}

// Run boots the pinmon dashboard until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	sess, err := Prepare(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.NewFileLogger(sess.Config.LogFile, sess.Config.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()

	batches := make(chan monitor.Batch, 1)
	mon := monitor.New(monitor.ChannelNotifier(batches), monitor.WithLogger(logger))
	if err := mon.Configure(sess.Settings); err != nil {
		return fmt.Errorf("configure monitor: %w", err)
	}

	logger.Info("pinmon starting",
		"restored_session", !sess.Prefs.Session.Empty(),
		"source", sess.Settings.SourcePath,
		"window", sess.Settings.WindowSize,
		"poll_interval", sess.Settings.PollInterval,
		"watch", sess.Settings.Watch,
	)

	uiOpts := ui.Options{
		Context:   ctx,
		Monitor:   mon,
		Batches:   batches,
		Prefs:     sess.Prefs,
		PrefsPath: opts.PrefsPath,
		AutoStart: sess.Settings.SourcePath != "",
	}
	runErr := ui.Run(uiOpts)

	mon.Stop()
	mon.Wait()
	logger.Info("pinmon exiting")
	return runErr
}

// Snapshot loads the source once with the resolved settings, without
// starting the poll loop.
func Snapshot(opts Options) (monitor.Batch, error) {
	sess, err := Prepare(opts)
	if err != nil {
		return monitor.Batch{}, err
	}
	return monitor.Load(sess.Settings)
}
