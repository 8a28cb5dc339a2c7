package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kristiankunc/generate-gitignore/internal/cache"
	"github.com/kristiankunc/generate-gitignore/internal/catalog"
	"github.com/kristiankunc/generate-gitignore/internal/format/table"
	"github.com/kristiankunc/generate-gitignore/internal/gitignore"
	"github.com/kristiankunc/generate-gitignore/internal/logging"
	"github.com/kristiankunc/generate-gitignore/internal/logging/events"
	"github.com/kristiankunc/generate-gitignore/internal/prompt"
	"github.com/kristiankunc/generate-gitignore/internal/search"
	"github.com/kristiankunc/generate-gitignore/internal/theme"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

const indexKey = "templates.json"

var (
	// ErrAborted is returned when the user interrupts the interactive search.
	ErrAborted = errors.New("aborted")
	// ErrNotFound is returned when no template has the requested name.
	ErrNotFound = errors.New("template not found")
	// ErrEmptyTemplate is returned when a template downloads without content.
	ErrEmptyTemplate = errors.New("template is empty")
)

// Config describes user-provided application options.
type Config struct {
	CatalogURL string
	CacheDir   string
	CacheTTL   time.Duration
	Refresh    bool
	Output     string
	Force      bool
	Verbose    bool
}

// App runs the list, search, use and interactive actions.
type App struct {
	cfg    Config
	client *catalog.Client
	store  *cache.Store
	styles *theme.Styles
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	keys   func() (search.KeyReader, error)
	width  func() int
}

// Option customises an App.
type Option func(*App)

// WithStreams replaces stdin, stdout and stderr.
func WithStreams(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
		a.errOut = errOut
	}
}

// WithKeyReader replaces the terminal key reader used by Interactive.
func WithKeyReader(open func() (search.KeyReader, error)) Option {
	return func(a *App) {
		a.keys = open
	}
}

// WithStyles replaces the output styles.
func WithStyles(styles *theme.Styles) Option {
	return func(a *App) {
		a.styles = styles
	}
}

// WithWidth fixes the terminal width instead of querying stdout.
func WithWidth(width int) Option {
	return func(a *App) {
		a.width = func() int { return width }
	}
}

// WithClient replaces the catalog client.
func WithClient(client *catalog.Client) Option {
	return func(a *App) {
		a.client = client
	}
}

// New builds an App for cfg.
func New(cfg Config, opts ...Option) (*App, error) {
	if cfg.Output == "" {
		cfg.Output = gitignore.DefaultPath
	}
	store, err := cache.New(cfg.CacheDir)
	if err != nil {
		return nil, err
	}
	a := &App{
		cfg:    cfg,
		client: catalog.NewClient(cfg.CatalogURL),
		store:  store,
		styles: theme.Default(),
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		keys: func() (search.KeyReader, error) {
			return search.NewKeyReader(os.Stdin)
		},
		width: stdoutWidth,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Templates loads the template index from the cache, falling back to the
// network. Refresh skips the cache.
func (a *App) Templates(ctx context.Context) ([]catalog.Template, error) {
	if !a.cfg.Refresh {
		if templates, ok := a.cachedIndex(); ok {
			events.Catalog.Loaded(events.SourceCache, len(templates))
			a.status(a.styles.Success, "✔ Templates successfully loaded from cache")
			return templates, nil
		}
	}

	templates, err := a.client.FetchIndex(ctx)
	if err != nil {
		a.status(a.styles.Error, fmt.Sprintf("✘ Error fetching templates: %v", err))
		return nil, fmt.Errorf("fetch templates: %w", err)
	}
	if len(templates) == 0 {
		return nil, errors.New("template index is empty")
	}
	if data, err := json.Marshal(templates); err == nil {
		if err := a.store.Put(indexKey, data); err != nil {
			logging.Error(err)
		}
	}
	events.Catalog.Loaded(events.SourceRemote, len(templates))
	a.status(a.styles.Success, "✔ Templates successfully loaded from remote")
	return templates, nil
}

func (a *App) cachedIndex() ([]catalog.Template, bool) {
	data, ok, err := a.store.Get(indexKey, a.cfg.CacheTTL)
	if err != nil {
		logging.Error(err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	templates, err := catalog.DecodeIndex(data)
	if err != nil {
		logging.Error(err)
		return nil, false
	}
	return templates, len(templates) > 0
}

// List prints every template name. Long output adds the download URL.
func (a *App) List(ctx context.Context, long bool) error {
	events.App.Action("list", "")
	templates, err := a.Templates(ctx)
	if err != nil {
		return err
	}
	if long {
		tw := tablewriter.NewWriter(a.out)
		tw.SetHeader([]string{"NAME", "URL"})
		tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		tw.SetAlignment(tablewriter.ALIGN_LEFT)
		tw.SetAutoWrapText(false)
		tw.SetHeaderLine(false)
		tw.SetBorder(false)
		tw.SetNoWhiteSpace(true)
		tw.SetTablePadding("    ")
		for _, t := range templates {
			tw.Append([]string{t.Name, t.DownloadURL})
		}
		tw.Render()
		return nil
	}
	for _, line := range table.Columns(catalog.Names(templates), a.width()) {
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// Search prints the names closest to query.
func (a *App) Search(ctx context.Context, query string) error {
	events.App.Action("search", query)
	templates, err := a.Templates(ctx)
	if err != nil {
		return err
	}
	matches := catalog.Closest(query, catalog.Names(templates), catalog.DefaultSuggestions, catalog.DefaultCutoff)
	if len(matches) == 0 {
		fmt.Fprintln(a.out, a.styles.Error.Render("🗙 No match found"))
		return nil
	}
	styled := make([]string, len(matches))
	for i, m := range matches {
		styled[i] = a.styles.Item.Render(m)
	}
	fmt.Fprintf(a.out, "%s %s\n", a.styles.Info.Render("Found the following matches:"), strings.Join(styled, ", "))
	return nil
}

// Use writes the named template to the configured output file.
func (a *App) Use(ctx context.Context, name string) error {
	events.App.Action("use", name)
	templates, err := a.Templates(ctx)
	if err != nil {
		return err
	}
	return a.apply(ctx, templates, name)
}

// Interactive lets the user pick a template with the search screen and
// applies it. ErrAborted is returned when the search is interrupted.
func (a *App) Interactive(ctx context.Context) error {
	events.App.Action("interactive", "")
	templates, err := a.Templates(ctx)
	if err != nil {
		return err
	}
	keys, err := a.keys()
	if err != nil {
		return fmt.Errorf("interactive search: %w", err)
	}
	session := search.NewSession(catalog.Names(templates), keys, a.out,
		search.WithStyles(a.styles),
		search.WithWidth(a.width()),
	)
	res, err := session.Run()
	if err != nil {
		return fmt.Errorf("interactive search: %w", err)
	}
	if res.Outcome == search.Aborted {
		return ErrAborted
	}
	return a.apply(ctx, templates, res.Name)
}

func (a *App) apply(ctx context.Context, templates []catalog.Template, name string) error {
	tmpl, ok := catalog.Find(templates, name)
	if !ok {
		fmt.Fprintln(a.out, a.styles.Error.Render(fmt.Sprintf("Template '%s' not found", name)))
		if suggestions := catalog.Closest(name, catalog.Names(templates), catalog.DefaultSuggestions, catalog.DefaultCutoff); len(suggestions) > 0 {
			fmt.Fprintf(a.out, "%s %s\n", a.styles.Info.Render("Did you mean:"), strings.Join(suggestions, ", "))
		}
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	fmt.Fprintln(a.out, a.styles.Success.Render(fmt.Sprintf("Applying %s...", tmpl.Name)))

	exists, err := gitignore.Exists(a.cfg.Output)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", a.cfg.Output, err)
	}
	if exists && !a.cfg.Force {
		overwrite, err := prompt.Confirm(a.in, a.out, a.styles, fmt.Sprintf("A %s file already exists. Overwrite it?", a.cfg.Output), prompt.DefaultAttempts)
		if err != nil {
			return fmt.Errorf("confirm overwrite: %w", err)
		}
		if !overwrite {
			fmt.Fprintln(a.out, a.styles.Error.Render("✘ Aborting..."))
			return nil
		}
	}

	content, err := a.templateBody(ctx, tmpl)
	if err != nil {
		fmt.Fprintln(a.out, a.styles.Error.Render("✘ Error fetching template"))
		return err
	}
	if err := gitignore.Write(a.cfg.Output, content); err != nil {
		return err
	}
	events.App.Written(a.cfg.Output, tmpl.Name, len(content))
	if a.cfg.Verbose {
		fmt.Fprintln(a.out, a.styles.Info.Render(fmt.Sprintf("Wrote %d bytes from %s to %s", len(content), tmpl.DownloadURL, a.cfg.Output)))
	}
	fmt.Fprintln(a.out, a.styles.Success.Render(fmt.Sprintf("✔ %s file created successfully", a.cfg.Output)))
	return nil
}

func (a *App) templateBody(ctx context.Context, tmpl catalog.Template) ([]byte, error) {
	key := "templates/" + url.PathEscape(strings.ToLower(tmpl.Name)) + ".gitignore"
	if !a.cfg.Refresh {
		data, ok, err := a.store.Get(key, a.cfg.CacheTTL)
		if err != nil {
			logging.Error(err)
		} else if ok {
			return data, nil
		}
	}
	data, err := a.client.FetchTemplate(ctx, tmpl.DownloadURL)
	if err != nil {
		return nil, fmt.Errorf("fetch template %s: %w", tmpl.Name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTemplate, tmpl.Name)
	}
	if err := a.store.Put(key, data); err != nil {
		logging.Error(err)
	}
	return data, nil
}

func (a *App) status(style *lipgloss.Style, msg string) {
	fmt.Fprintln(a.errOut, style.Render(msg))
}

func stdoutWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
