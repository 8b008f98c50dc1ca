// Package app wires config, canvas, clipboard, and the scripting engine
// into a console session.
package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"flint/config"
	"flint/console"
	"flint/hal"
	"flint/internal/buildinfo"
	"flint/script"
)

// New builds a ready-to-tick session over canvas and clip.
func New(cfg config.Config, canvas hal.Canvas, clip hal.Clipboard, log *logrus.Entry) (*console.Session, error) {
	engine := script.NewEngine()

	sess, err := console.NewSession(canvas, clip, engine, console.Options{
		Font:          hal.FontByName(cfg.Font),
		Palette:       console.DefaultPalette(),
		Prompt:        cfg.Prompt,
		ContPrompt:    cfg.ContPrompt,
		CmdPrefix:     cfg.CmdPrefix,
		MaxLines:      cfg.MaxLines,
		MaxDepth:      cfg.MaxDepth,
		InlineMembers: cfg.InlineMembers,
		WheelLines:    cfg.WheelLines,
		Banner:        banner(cfg.CmdPrefix),
		Log:           log,
	})
	if err != nil {
		return nil, fmt.Errorf("console session: %w", err)
	}

	engine.SetPrinter(sess.Print)
	engine.SetAfterEval(func() {
		log.WithField("event", "eval").Debug("evaluation finished")
	})
	return sess, nil
}

func banner(prefix string) string {
	return fmt.Sprintf("flint %s\nType %shelp for commands.", buildinfo.Short(), prefix)
}
