package main

import (
	"path/filepath"
	"strings"

	"github.com/xyproto/env/v2"
)

type colorMode int

const (
	colorAuto colorMode = iota
	colorAlways
	colorNever
)

// config holds the defaults read from the environment. Command-line flags
// override them per command.
type config struct {
	Verbose     bool
	Color       colorMode
	HistoryPath string
	Prompt      string
}

func loadConfig() config {
	env.Load()
	cfg := config{
		Verbose:     env.Bool("BLAZE_VERBOSE"),
		Color:       parseColorMode(env.Str("BLAZE_COLOR", "auto")),
		HistoryPath: env.Str("BLAZE_HISTORY", filepath.Join(env.HomeDir(), ".blaze_history")),
		Prompt:      env.Str("BLAZE_PROMPT", "blaze> "),
	}
	// https://no-color.org
	if env.Has("NO_COLOR") {
		cfg.Color = colorNever
	}
	cfg.HistoryPath = env.ExpandUser(cfg.HistoryPath)
	return cfg
}

func parseColorMode(s string) colorMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always", "1", "true", "yes", "on":
		return colorAlways
	case "never", "0", "false", "no", "off":
		return colorNever
	default:
		return colorAuto
	}
}
