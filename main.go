package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gravitywell/assets"
	"github.com/milk9111/gravitywell/config"
	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/system"
	"github.com/milk9111/gravitywell/prefabs"
	"github.com/milk9111/gravitywell/scene"
	"github.com/milk9111/gravitywell/telemetry"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a toml config (empty = defaults)")
	debug := flag.Bool("debug", false, "hot reload prefabs from disk and log at debug level")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	outputDir := flag.String("output-dir", "", "directory for sessions.csv (overrides config)")
	headless := flag.Bool("headless", false, "run the simulation without a window")
	maxTicks := flag.Int("max-ticks", 0, "stop a headless run after N ticks (0 = unlimited)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *debug {
		cfg.Debug.HotReload = true
		cfg.Logging.Level = "debug"
	}
	if *outputDir != "" {
		cfg.Telemetry.OutputDir = *outputDir
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		return err
	}

	out, err := telemetry.NewOutput(cfg.Telemetry.OutputDir)
	if err != nil {
		return err
	}
	recorder := telemetry.NewRecorder(out, log.Named("telemetry"))
	defer func() {
		if err := recorder.Close(); err != nil {
			log.Error("close telemetry", zap.Error(err))
		}
	}()

	env := scene.Env{
		World:    ecs.NewWorld(),
		Catalog:  catalog,
		Random:   system.NewRandom(*seed),
		Tuning:   cfg.Tuning(),
		Observer: recorder,
		Log:      log.Named("game"),
	}
	summary := newSwapSummary(log.Named("summary"))
	env.Summary = summary

	var library *assets.Library
	if !*headless {
		library = assets.NewLibrary()
		env.Assets = library
	}

	h, err := newHost(env, summary)
	if err != nil {
		return err
	}
	defer h.close()
	if cfg.Debug.HotReload {
		h.watch()
	}

	log.Info("gravity well starting",
		zap.Bool("headless", *headless),
		zap.Int64("seed", *seed),
		zap.String("telemetry", out.Path()),
	)

	if *headless {
		frame := time.Duration(cfg.Physics.NominalFrameMS * float64(time.Millisecond))
		runHeadless(h, frame, *maxTicks, log)
		return nil
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(cfg.Window.TPS)

	game := NewGame(h, library, cfg.Window.Width, cfg.Window.Height, cfg.Window.TPS)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
