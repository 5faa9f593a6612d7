// Command swordplay is a terminal sandbox for the combat-motion model:
// the mouse steers the cursor, buttons charge and release swings
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/swordplay/audio"
	"github.com/lixenwraith/swordplay/config"
	"github.com/lixenwraith/swordplay/parameter"
)

type options struct {
	configPath string
	logPath    string
	level      string
	schema     bool
	dumpConfig bool
	mute       bool
	volume     float64
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("swordplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "TOML config file (default $"+config.EnvPath+")")
	fs.StringVar(&o.logPath, "log", "swordplay.log", "log file")
	fs.StringVar(&o.level, "level", "info", "log level: debug, info, warn, error")
	fs.BoolVar(&o.schema, "schema", false, "print the config JSON schema and exit")
	fs.BoolVar(&o.dumpConfig, "dump-config", false, "print the effective config as TOML and exit")
	fs.BoolVar(&o.mute, "mute", false, "disable audio")
	fs.Float64Var(&o.volume, "volume", 0.8, "cue volume 0..1")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}

// newLogger writes JSON lines to path; the terminal belongs to the screen
func newLogger(path, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// loadConfig returns the resolved path ("" for defaults) and the config
func loadConfig(flagPath string) (string, config.Config, error) {
	path, err := config.ResolvePath(flagPath)
	if err != nil {
		return "", config.Config{}, err
	}
	if path == "" {
		return "", config.Default(), nil
	}
	cfg, err := config.Load(path)
	return path, cfg, err
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "swordplay: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.schema {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}

	path, cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.dumpConfig {
		return cfg.Encode(stdout)
	}

	keymap, err := cfg.Controls.Keymap()
	if err != nil {
		return fmt.Errorf("controls: %w", err)
	}

	log, err := newLogger(opts.logPath, opts.level)
	if err != nil {
		return err
	}
	defer log.Sync()

	var cues *audio.Cues
	if !opts.mute {
		cues = audio.NewCues(opts.volume, cfg.Weapon.PowerMax, log.Named("audio"))
		if err := cues.Initialize(); err != nil {
			// Non-fatal, the sandbox runs silent
			log.Warn("audio unavailable", zap.Error(err))
		}
		defer cues.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Error("panic", zap.Any("recovered", r), zap.Stack("stack"))
			panic(r)
		}
		screen.Fini()
	}()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	log.Info("started", zap.String("config", path))
	loop(screen, NewSandbox(screen, cfg, keymap, cues, log))
	log.Info("stopped")
	return nil
}

// loop polls events on a goroutine and ticks the sandbox at the frame rate
func loop(screen tcell.Screen, sb *Sandbox) {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / parameter.FrameRate)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !sb.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), parameter.FrameDeltaMax)
			last = now
			sb.Tick(dt)
		}
	}
}
