package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/slotmenu/internal/app"
	"github.com/atomicstack/slotmenu/internal/config"
	"github.com/atomicstack/slotmenu/internal/logging"
	"github.com/atomicstack/slotmenu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fatal(2, "configuration error: %v", err)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fatal(1, "error: %v", err)
	}
}

func fatal(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tty":    collectTTYDetails(),
	}
	if exe, err := os.Executable(); err != nil {
		payload["executableError"] = err.Error()
	} else {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err != nil {
		payload["cwdError"] = err.Error()
	} else {
		payload["cwd"] = cwd
	}
	return payload
}

type ttyReport struct {
	Detected *ttySize   `json:"detected,omitempty"`
	Probes   []ttyProbe `json:"probes"`
}

type ttySize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects the standard descriptors for terminal support
// and records the first usable size.
func collectTTYDetails() ttyReport {
	report := ttyReport{Probes: []ttyProbe{
		probeTTY("stdin", os.Stdin),
		probeTTY("stdout", os.Stdout),
		probeTTY("stderr", os.Stderr),
	}}
	for _, p := range report.Probes {
		if p.IsTerminal && p.Error == "" {
			report.Detected = &ttySize{Source: p.Name, Width: p.Width, Height: p.Height}
			break
		}
	}
	return report
}

func probeTTY(name string, f *os.File) ttyProbe {
	probe := ttyProbe{Name: name}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return probe
	}
	probe.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}
	probe.Width = width
	probe.Height = height
	return probe
}
