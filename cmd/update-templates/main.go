// Command update-templates regenerates the template index by walking the
// upstream gitignore repository.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/kristiankunc/generate-gitignore/internal/catalog"
	"github.com/kristiankunc/generate-gitignore/internal/logging"
	"github.com/spf13/cobra"
)

const envToken = "GITHUB_TOKEN"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newCommand(os.Getenv(envToken)).ExecuteContext(ctx)
	stop()
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(token string) *cobra.Command {
	var (
		output      string
		root        string
		concurrency int
		interval    time.Duration
		trace       bool
	)
	cmd := &cobra.Command{
		Use:           "update-templates",
		Short:         "Regenerate templates.json from the upstream gitignore repository",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logging.SetTraceEnabled(trace)
			out := cmd.OutOrStdout()

			client := catalog.NewClient("")
			client.Token = token
			walker := &catalog.Walker{Client: client, Concurrency: concurrency, Interval: interval}

			fmt.Fprintf(out, "Fetching .gitignore files from %s...\n", root)
			templates, err := walker.Walk(cmd.Context(), root)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Found %d .gitignore files.\n", len(templates))
			fmt.Fprintf(out, "Dumping data to %s...\n", filepath.Base(output))
			if err := writeIndex(output, templates); err != nil {
				return err
			}
			fmt.Fprintln(out, "Done.")
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "templates.json", "index file to write")
	flags.StringVar(&root, "root", catalog.DefaultContentsURL, "GitHub contents API URL to walk")
	flags.IntVar(&concurrency, "concurrency", 4, "maximum concurrent directory listings")
	flags.DurationVar(&interval, "interval", 100*time.Millisecond, "minimum delay between listing requests")
	flags.BoolVar(&trace, "trace", false, "enable verbose JSON trace logging")
	return cmd
}

func writeIndex(path string, templates []catalog.Template) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".templates-*.json")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := catalog.WriteIndex(tmp, templates); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
