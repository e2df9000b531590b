package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/game"
	"github.com/pthm-cable/pong/platform"
	"github.com/pthm-cable/pong/platform/headless"
	"github.com/pthm-cable/pong/platform/terminal"
	"github.com/pthm-cable/pong/platform/window"
	"github.com/pthm-cable/pong/telemetry"
)

// Frontends
const (
	frontendWindow   = "window"
	frontendTerminal = "terminal"
	frontendHeadless = "headless"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	frontend := flag.String("frontend", frontendWindow, "Display frontend: window, terminal or headless")
	seed := flag.Int64("seed", 0, "RNG seed for serve direction (0 = time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV match logs and config snapshot (overrides config)")
	maxTicks := flag.Int("max-ticks", 0, "Quit after N play ticks (0 = unlimited, headless needs N > 0)")
	autoplay := flag.Bool("autoplay", false, "Let an AI controller drive the player paddle")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stdout")
	logPerf := flag.Bool("log-perf", false, "Log frame timings via slog")

	flag.Parse()

	closeLog, err := setupLogging(*frontend, *logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(*configPath, *frontend, *seed, *outputDir, *maxTicks, *autoplay, *logPerf); err != nil {
		slog.Error("fatal", "error", err)
		closeLog()
		os.Exit(1)
	}
}

// setupLogging installs a JSON slog handler. The terminal frontend owns
// stdout, so without a log file its logs are discarded.
func setupLogging(frontend, path string) (func(), error) {
	var w io.Writer = os.Stdout
	closeFn := func() {}

	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case frontend == frontendTerminal:
		w = io.Discard
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, nil)))
	return closeFn, nil
}

func run(configPath, frontend string, seed int64, outputDir string, maxTicks int, autoplay, logPerf bool) error {
	if err := checkFrontend(frontend, maxTicks); err != nil {
		return err
	}

	// Initialize config before anything else
	if err := config.Init(configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()

	rngSeed := seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	if outputDir == "" {
		outputDir = cfg.Telemetry.OutputDir
	}
	output, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		return err
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Warn("telemetry_write_failed", "error", err)
	}

	p, err := openPlatform(frontend, cfg, loadSounds(cfg))
	if err != nil {
		return err
	}
	defer p.Close()

	slog.Info("starting",
		"frontend", frontend,
		"seed", rngSeed,
		"max_ticks", maxTicks,
		"autoplay", autoplay,
		"output_dir", output.Dir(),
	)

	g := game.NewGame(cfg, p, game.Options{
		Autoplay: autoplay,
		MaxTicks: int32(maxTicks),
		Seed:     rngSeed,
		Output:   output,
		LogPerf:  logPerf,
	})
	g.Run()

	slog.Info("stopped", "tick", g.State().Tick)
	return nil
}

// checkFrontend rejects flag combinations that cannot end. The headless
// loop is unpaced and has no way to quit on its own.
func checkFrontend(frontend string, maxTicks int) error {
	if maxTicks < 0 {
		return fmt.Errorf("invalid -max-ticks %d", maxTicks)
	}
	if frontend == frontendHeadless && maxTicks == 0 {
		return fmt.Errorf("headless frontend needs -max-ticks > 0")
	}
	return nil
}

// loadSounds synthesizes the cues. A failure disables sound for the session.
func loadSounds(cfg *config.Config) *audio.Bank {
	if !cfg.Audio.Enabled {
		return nil
	}
	bank, err := audio.NewBank(cfg.Audio)
	if err != nil {
		slog.Warn("audio_disabled", "error", err)
		return nil
	}
	return bank
}

func openPlatform(frontend string, cfg *config.Config, bank *audio.Bank) (platform.Platform, error) {
	switch frontend {
	case frontendWindow:
		w, err := window.Open(cfg, bank)
		if err != nil {
			return nil, err
		}
		return w, nil
	case frontendTerminal:
		t, err := terminal.Open(bank)
		if err != nil {
			return nil, err
		}
		return t, nil
	case frontendHeadless:
		// Enter picks the default speed and is ignored during play
		return headless.New(headless.Options{AutoConfirm: true}), nil
	default:
		return nil, fmt.Errorf("unknown frontend %q", frontend)
	}
}
