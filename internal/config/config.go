package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/slotmenu/internal/app"
)

// Config captures runtime configuration for the demo application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envRoot         = "SLOTMENU_ROOT"
	envTitle        = "SLOTMENU_TITLE"
	envSize         = "SLOTMENU_SIZE"
	envFeedInterval = "SLOTMENU_FEED_INTERVAL"
	envVerbose      = "SLOTMENU_VERBOSE"
	envTrace        = "SLOTMENU_TRACE"
	envLogFile      = "SLOTMENU_LOG_FILE"
)

const (
	defaultTitle        = "Main Menu"
	defaultSize         = 54
	defaultFeedInterval = 1500 * time.Millisecond
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("slotmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	root := fs.String("root", envOrDefault(env, envRoot, "."), "directory the file catalog menu lists")
	title := fs.String("title", envOrDefault(env, envTitle, defaultTitle), "title of the root menu")
	size := fs.Int("size", envOrInt(env, envSize, defaultSize), "catalog container size in slots (multiple of 9)")
	feedInterval := fs.Duration("feed-interval", envOrDuration(env, envFeedInterval, defaultFeedInterval), "catalog poll interval")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "log successful actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *size <= 0 || *size%9 != 0 {
		return Config{}, fmt.Errorf("size must be a positive multiple of 9 (got %d)", *size)
	}
	if *feedInterval <= 0 {
		return Config{}, fmt.Errorf("feed-interval must be positive (got %s)", *feedInterval)
	}

	cfg := Config{
		App: app.Config{
			Root:         *root,
			Title:        *title,
			Size:         *size,
			FeedInterval: *feedInterval,
			Verbose:      *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"root":         *root,
			"title":        *title,
			"size":         strconv.Itoa(*size),
			"feedInterval": feedInterval.String(),
			"trace":        strconv.FormatBool(*trace),
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.Root == "" {
		return fmt.Errorf("root directory must not be empty")
	}
	return nil
}
