package main

import (
	"os"

	"golang.org/x/term"
)

// uiConfig holds the properties of the session's terminal.
type uiConfig struct {
	interactive bool
	width       int // in fixed-width positions
}

// configFromTerminal checks whether stdin is a terminal, and if so reads the
// width of stdout.
func configFromTerminal() uiConfig {
	ui := uiConfig{width: 80}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		ui.interactive = true
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			ui.width = w
		}
	}
	return ui
}

// valueWidth limits the display width of values in tables, 0 for no limit.
func (ui uiConfig) valueWidth() int {
	if !ui.interactive {
		return 0
	}
	return max(ui.width/2, 16)
}
