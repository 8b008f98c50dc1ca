package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"flint/app"
	"flint/config"
	"flint/hal"
	"flint/internal/logx"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "Config file path (default ~/.flint/config.toml).")
		logPath  = flag.String("log", "", "Log file path, overriding the config.")
		scale    = flag.Int("scale", 0, "Window scale factor, overriding the config.")
		headless hal.HeadlessConfig
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	if err := run(*cfgPath, *logPath, *scale, headless); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgPath, logPath string, scale int, headless hal.HeadlessConfig) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if logPath != "" {
		cfg.LogPath = logPath
	}
	if scale > 0 {
		cfg.Scale = scale
	}

	closer, err := logx.Setup(cfg.LogPath)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}
	log := logx.Named("console")

	canvas := hal.NewCanvas(cfg.Width, cfg.Height)
	sess, err := app.New(cfg, canvas, hal.SystemClipboard{}, log)
	if err != nil {
		return err
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		log.WithField("hz", headless.Hz).Info("running headless")
		return hal.RunHeadless(ctx, canvas, sess.Tick, headless)
	}

	log.WithField("size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)).Info("opening window")
	return hal.RunWindow(canvas, cfg.Scale, sess.Tick)
}
