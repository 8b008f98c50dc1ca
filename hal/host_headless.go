package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
}

// RunHeadless drives step on a timer without opening a window. The canvas
// receives no key input; a context cancel surfaces as KeyClosing so the
// session shuts down the same way it would in a window.
func RunHeadless(ctx context.Context, c *HostCanvas, step func() (bool, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			c.setClosing()
		case <-t.C:
		}

		cont, err := step()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
		tick++
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
	}
}
