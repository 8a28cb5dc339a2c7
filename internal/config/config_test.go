package config

import (
	"errors"
	"testing"
	"time"

	"github.com/kristiankunc/generate-gitignore/internal/catalog"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if cfg.App.CatalogURL != catalog.DefaultIndexURL {
		t.Fatalf("unexpected catalog url %q", cfg.App.CatalogURL)
	}
	if cfg.App.CacheTTL != DefaultCacheTTL {
		t.Fatalf("unexpected ttl %s", cfg.App.CacheTTL)
	}
	if cfg.App.Output != ".gitignore" {
		t.Fatalf("unexpected output %q", cfg.App.Output)
	}
	if cfg.Action != (Action{}) {
		t.Fatalf("expected no action, got %+v", cfg.Action)
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	env := []string{
		envCatalogURL + "=http://example.test/index.json",
		envCacheDir + "=/tmp/gg",
		envCacheTTL + "=90m",
		envOutput + "=out/.gitignore",
		envVerbose + "=true",
		envTrace + "=1",
		envLogFile + "=/tmp/gg.log",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if cfg.App.CatalogURL != "http://example.test/index.json" || cfg.App.CacheDir != "/tmp/gg" {
		t.Fatalf("environment not applied: %+v", cfg.App)
	}
	if cfg.App.CacheTTL != 90*time.Minute {
		t.Fatalf("unexpected ttl %s", cfg.App.CacheTTL)
	}
	if cfg.App.Output != "out/.gitignore" || !cfg.App.Verbose {
		t.Fatalf("environment not applied: %+v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/gg.log" {
		t.Fatalf("logging not applied: %+v", cfg.Logging)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	env := []string{envOutput + "=env.gitignore", envCacheTTL + "=not-a-duration"}
	cfg, err := LoadArgs([]string{"--output", "flag.gitignore", "--use", "Go", "-f"}, env)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if cfg.App.Output != "flag.gitignore" {
		t.Fatalf("expected flag to win, got %q", cfg.App.Output)
	}
	if cfg.App.CacheTTL != DefaultCacheTTL {
		t.Fatalf("invalid env duration should fall back, got %s", cfg.App.CacheTTL)
	}
	if cfg.Action.Use != "Go" || !cfg.App.Force {
		t.Fatalf("unexpected action %+v force=%v", cfg.Action, cfg.App.Force)
	}
	if cfg.Flags["output"] != "flag.gitignore" {
		t.Fatalf("flags map not populated: %v", cfg.Flags)
	}
	if len(cfg.Args) != 5 {
		t.Fatalf("expected args to be recorded, got %v", cfg.Args)
	}
}

func TestLoadArgsRejectsInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "negative ttl", args: []string{"--cache-ttl", "-1m"}},
		{name: "empty output", args: []string{"--output", " "}},
		{name: "empty catalog", args: []string{"--catalog-url", ""}},
		{name: "two actions", args: []string{"--list", "--search", "py"}},
		{name: "long without list", args: []string{"--long"}},
		{name: "unknown flag", args: []string{"--nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadArgs(tt.args, nil)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParseEnvSkipsMalformedEntries(t *testing.T) {
	env := parseEnv([]string{"", "NOEQUALS", "A=1", "B=x=y"})
	if len(env) != 2 || env["A"] != "1" || env["B"] != "x=y" {
		t.Fatalf("unexpected env map %v", env)
	}
}
