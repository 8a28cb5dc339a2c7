package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kristiankunc/generate-gitignore/internal/app"
	"github.com/kristiankunc/generate-gitignore/internal/catalog"
	"github.com/kristiankunc/generate-gitignore/internal/gitignore"
	"github.com/spf13/pflag"
)

// ErrInvalid marks configuration problems so callers can choose an exit code.
var ErrInvalid = errors.New("invalid configuration")

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Action  Action
	Flags   map[string]string
	Args    []string
}

// Logging selects the log file and whether JSON tracing is on.
type Logging struct {
	FilePath string
	Trace    bool
}

// Action selects what the command does. At most one of List, Search, Use
// and Interactive is set.
type Action struct {
	List        bool
	Long        bool
	Search      string
	Use         string
	Interactive bool
}

const (
	envCatalogURL = "GENERATE_GITIGNORE_CATALOG_URL"
	envCacheDir   = "GENERATE_GITIGNORE_CACHE_DIR"
	envCacheTTL   = "GENERATE_GITIGNORE_CACHE_TTL"
	envOutput     = "GENERATE_GITIGNORE_OUTPUT"
	envVerbose    = "GENERATE_GITIGNORE_VERBOSE"
	envTrace      = "GENERATE_GITIGNORE_TRACE"
	envLogFile    = "GENERATE_GITIGNORE_LOG_FILE"
)

// DefaultCacheTTL bounds how long a cached index or template is reused.
const DefaultCacheTTL = 24 * time.Hour

// Flags holds the parsed values of a flag set built by NewFlags.
type Flags struct {
	set *pflag.FlagSet

	list        *bool
	long        *bool
	search      *string
	use         *string
	interactive *bool

	catalogURL *string
	cacheDir   *string
	cacheTTL   *time.Duration
	refresh    *bool
	output     *string
	force      *bool
	verbose    *bool
	trace      *bool
	logFile    *string
}

// NewFlags declares every command-line flag, taking defaults from environ.
func NewFlags(environ []string) *Flags {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("generate-gitignore", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	f := &Flags{set: fs}
	f.list = fs.BoolP("list", "l", false, "list all available templates")
	f.long = fs.Bool("long", false, "with --list, show download URLs in a table")
	f.search = fs.StringP("search", "s", "", "print the templates closest to `query`")
	f.use = fs.StringP("use", "u", "", "write the template `name` to the output file")
	f.interactive = fs.BoolP("interactive", "i", false, "pick a template with the interactive search")

	f.catalogURL = fs.String("catalog-url", envOrDefault(env, envCatalogURL, catalog.DefaultIndexURL), "URL of the template index")
	f.cacheDir = fs.String("cache-dir", envOrDefault(env, envCacheDir, ""), "cache directory (defaults to the user cache dir)")
	f.cacheTTL = fs.Duration("cache-ttl", envOrDuration(env, envCacheTTL, DefaultCacheTTL), "how long cached templates stay fresh (0 never expires)")
	f.refresh = fs.Bool("refresh", false, "ignore the cache and download templates again")
	f.output = fs.StringP("output", "o", envOrDefault(env, envOutput, gitignore.DefaultPath), "file written by --use and --interactive")
	f.force = fs.BoolP("force", "f", false, "overwrite an existing output file without asking")
	f.verbose = fs.BoolP("verbose", "v", envOrBool(env, envVerbose, false), "print extra detail about written files")
	f.trace = fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	f.logFile = fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	return f
}

// Set exposes the underlying flag set so a command can mount it.
func (f *Flags) Set() *pflag.FlagSet {
	return f.set
}

// Config assembles the configuration from the parsed flags. args are the
// raw command-line arguments recorded for the startup trace.
func (f *Flags) Config(args []string) (Config, error) {
	cfg := Config{
		App: app.Config{
			CatalogURL: *f.catalogURL,
			CacheDir:   *f.cacheDir,
			CacheTTL:   *f.cacheTTL,
			Refresh:    *f.refresh,
			Output:     *f.output,
			Force:      *f.force,
			Verbose:    *f.verbose,
		},
		Logging: Logging{
			FilePath: *f.logFile,
			Trace:    *f.trace,
		},
		Action: Action{
			List:        *f.list,
			Long:        *f.long,
			Search:      *f.search,
			Use:         *f.use,
			Interactive: *f.interactive,
		},
		Flags: map[string]string{
			"catalogURL": *f.catalogURL,
			"cacheDir":   *f.cacheDir,
			"cacheTTL":   f.cacheTTL.String(),
			"refresh":    strconv.FormatBool(*f.refresh),
			"output":     *f.output,
			"force":      strconv.FormatBool(*f.force),
			"verbose":    strconv.FormatBool(*f.verbose),
			"trace":      strconv.FormatBool(*f.trace),
			"logFile":    *f.logFile,
		},
		Args: append([]string(nil), args...),
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	f := NewFlags(environ)
	if err := f.set.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return f.Config(args)
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.CacheTTL < 0 {
		return fmt.Errorf("%w: cache-ttl must be >= 0 (got %s)", ErrInvalid, cfg.App.CacheTTL)
	}
	if strings.TrimSpace(cfg.App.Output) == "" {
		return fmt.Errorf("%w: output path must not be empty", ErrInvalid)
	}
	if strings.TrimSpace(cfg.App.CatalogURL) == "" {
		return fmt.Errorf("%w: catalog-url must not be empty", ErrInvalid)
	}
	actions := 0
	for _, set := range []bool{cfg.Action.List, cfg.Action.Search != "", cfg.Action.Use != "", cfg.Action.Interactive} {
		if set {
			actions++
		}
	}
	if actions > 1 {
		return fmt.Errorf("%w: --list, --search, --use and --interactive are mutually exclusive", ErrInvalid)
	}
	if cfg.Action.Long && !cfg.Action.List {
		return fmt.Errorf("%w: --long requires --list", ErrInvalid)
	}
	return nil
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
