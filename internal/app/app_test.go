package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/kristiankunc/generate-gitignore/internal/app"
	"github.com/kristiankunc/generate-gitignore/internal/catalog"
	"github.com/kristiankunc/generate-gitignore/internal/search"
	"github.com/kristiankunc/generate-gitignore/internal/testutil"
	"github.com/kristiankunc/generate-gitignore/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type templateServer struct {
	*httptest.Server
	indexHits    atomic.Int32
	templateHits atomic.Int32
}

var templateBodies = map[string]string{
	"python": "__pycache__/\n*.pyc",
	"go":     "*.test\n/vendor/\n",
	"node":   "node_modules/\n",
	"empty":  "  \n",
}

func newTemplateServer(t *testing.T) *templateServer {
	t.Helper()
	ts := &templateServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/templates.json", func(w http.ResponseWriter, r *http.Request) {
		ts.indexHits.Add(1)
		var index []catalog.Template
		for _, name := range []string{"python", "go", "node", "empty"} {
			index = append(index, catalog.Template{Name: name, DownloadURL: ts.URL + "/templates/" + name})
		}
		assert.NoError(t, json.NewEncoder(w).Encode(index))
	})
	mux.HandleFunc("/templates/", func(w http.ResponseWriter, r *http.Request) {
		ts.templateHits.Add(1)
		body, ok := templateBodies[strings.TrimPrefix(r.URL.Path, "/templates/")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	})
	ts.Server = httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

type harness struct {
	app    *app.App
	out    bytes.Buffer
	errOut bytes.Buffer
	output string
}

func newHarness(t *testing.T, ts *templateServer, cfg app.Config, input string, keys ...search.Key) *harness {
	t.Helper()
	h := &harness{output: filepath.Join(t.TempDir(), ".gitignore")}
	cfg.CatalogURL = ts.URL + "/templates.json"
	if cfg.CacheDir == "" {
		cfg.CacheDir = t.TempDir()
	}
	cfg.Output = h.output
	a, err := app.New(cfg,
		app.WithStreams(strings.NewReader(input), &h.out, &h.errOut),
		app.WithStyles(theme.Plain()),
		app.WithWidth(0),
		app.WithKeyReader(func() (search.KeyReader, error) {
			return testutil.NewKeyScript(keys...), nil
		}),
	)
	require.NoError(t, err)
	h.app = a
	return h
}

func TestTemplatesUsesCacheAfterFirstLoad(t *testing.T) {
	ts := newTemplateServer(t)
	h := newHarness(t, ts, app.Config{}, "")
	ctx := context.Background()

	first, err := h.app.Templates(ctx)
	require.NoError(t, err)
	second, err := h.app.Templates(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, ts.indexHits.Load())
	assert.Contains(t, h.errOut.String(), "✔ Templates successfully loaded from remote")
	assert.Contains(t, h.errOut.String(), "✔ Templates successfully loaded from cache")
}

func TestTemplatesRefreshSkipsCache(t *testing.T) {
	ts := newTemplateServer(t)
	cacheDir := t.TempDir()
	for i := 0; i < 2; i++ {
		h := newHarness(t, ts, app.Config{CacheDir: cacheDir, Refresh: true}, "")
		_, err := h.app.Templates(context.Background())
		require.NoError(t, err)
	}
	assert.EqualValues(t, 2, ts.indexHits.Load())
}

func TestTemplatesReportsStatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)
	a, err := app.New(app.Config{CatalogURL: srv.URL, CacheDir: t.TempDir()},
		app.WithStreams(strings.NewReader(""), new(bytes.Buffer), new(bytes.Buffer)),
		app.WithStyles(theme.Plain()),
	)
	require.NoError(t, err)

	_, err = a.Templates(context.Background())
	var statusErr *catalog.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestListPrintsNames(t *testing.T) {
	ts := newTemplateServer(t)
	h := newHarness(t, ts, app.Config{}, "")

	require.NoError(t, h.app.List(context.Background(), false))
	assert.Equal(t, "python\ngo\nnode\nempty\n", h.out.String())
}

func TestListLongIncludesURLs(t *testing.T) {
	ts := newTemplateServer(t)
	h := newHarness(t, ts, app.Config{}, "")

	require.NoError(t, h.app.List(context.Background(), true))
	lines := strings.Split(strings.TrimSpace(h.out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[0], "URL")
	assert.Contains(t, lines[1], "python")
	assert.Contains(t, lines[1], ts.URL+"/templates/python")
}

func TestSearch(t *testing.T) {
	ts := newTemplateServer(t)

	h := newHarness(t, ts, app.Config{}, "")
	require.NoError(t, h.app.Search(context.Background(), "pyt"))
	assert.Equal(t, "Found the following matches: python\n", h.out.String())

	h = newHarness(t, ts, app.Config{}, "")
	require.NoError(t, h.app.Search(context.Background(), "zzzz"))
	assert.Equal(t, "🗙 No match found\n", h.out.String())
}

func TestUseWritesTemplate(t *testing.T) {
	ts := newTemplateServer(t)
	h := newHarness(t, ts, app.Config{}, "")

	require.NoError(t, h.app.Use(context.Background(), "Python"))
	data, err := os.ReadFile(h.output)
	require.NoError(t, err)
	assert.Equal(t, "__pycache__/\n*.pyc\n", string(data))
	assert.Contains(t, h.out.String(), "Applying python...")
	assert.Contains(t, h.out.String(), "file created successfully")
}

func TestUseCachesTemplateBodies(t *testing.T) {
	ts := newTemplateServer(t)
	cacheDir := t.TempDir()
	for i := 0; i < 2; i++ {
		h := newHarness(t, ts, app.Config{CacheDir: cacheDir, Force: true}, "")
		require.NoError(t, h.app.Use(context.Background(), "go"))
	}
	assert.EqualValues(t, 1, ts.templateHits.Load())
	assert.EqualValues(t, 1, ts.indexHits.Load())
}

func TestUseSuggestsCloseNames(t *testing.T) {
	ts := newTemplateServer(t)
	h := newHarness(t, ts, app.Config{}, "")

	err := h.app.Use(context.Background(), "pyhton")
	require.ErrorIs(t, err, app.ErrNotFound)
	assert.Contains(t, h.out.String(), "Template 'pyhton' not found")
	assert.Contains(t, h.out.String(), "Did you mean: python")
	_, statErr := os.Stat(h.output)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestUseAsksBeforeOverwriting(t *testing.T) {
	tests := []struct {
		name  string
		input string
		force bool
		want  string
	}{
		{name: "declined", input: "maybe\nn\n", want: "keep me\n"},
		{name: "accepted", input: "YES\n", want: "node_modules/\n"},
		{name: "forced", force: true, want: "node_modules/\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTemplateServer(t)
			h := newHarness(t, ts, app.Config{Force: tt.force}, tt.input)
			require.NoError(t, os.WriteFile(h.output, []byte("keep me\n"), 0o644))

			require.NoError(t, h.app.Use(context.Background(), "node"))
			data, err := os.ReadFile(h.output)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestUseRejectsEmptyTemplate(t *testing.T) {
	ts := newTemplateServer(t)
	h := newHarness(t, ts, app.Config{}, "")

	err := h.app.Use(context.Background(), "empty")
	require.ErrorIs(t, err, app.ErrEmptyTemplate)
	assert.Contains(t, h.out.String(), "✘ Error fetching template")
}

func TestUseVerboseReportsBytes(t *testing.T) {
	ts := newTemplateServer(t)
	h := newHarness(t, ts, app.Config{Verbose: true}, "")

	require.NoError(t, h.app.Use(context.Background(), "node"))
	assert.Contains(t, h.out.String(), "Wrote 14 bytes from "+ts.URL+"/templates/node")
}

func TestInteractiveAppliesSelection(t *testing.T) {
	ts := newTemplateServer(t)
	keys := testutil.Keys(testutil.Type("od"), []search.Key{{Kind: search.KeyEnter}})
	h := newHarness(t, ts, app.Config{}, "", keys...)

	require.NoError(t, h.app.Interactive(context.Background()))
	data, err := os.ReadFile(h.output)
	require.NoError(t, err)
	assert.Equal(t, "node_modules/\n", string(data))
	assert.Contains(t, h.out.String(), "Search: od")
	assert.Contains(t, h.out.String(), "Applying node...")
}

func TestInteractiveAbort(t *testing.T) {
	ts := newTemplateServer(t)
	h := newHarness(t, ts, app.Config{}, "", testutil.Keys(testutil.Type("py"), []search.Key{{Kind: search.KeyInterrupt}})...)

	err := h.app.Interactive(context.Background())
	require.ErrorIs(t, err, app.ErrAborted)
	assert.Contains(t, h.out.String(), "Aborting...")
	_, statErr := os.Stat(h.output)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestInteractiveKeyReaderFailure(t *testing.T) {
	ts := newTemplateServer(t)
	a, err := app.New(app.Config{CatalogURL: ts.URL + "/templates.json", CacheDir: t.TempDir()},
		app.WithStreams(strings.NewReader(""), new(bytes.Buffer), new(bytes.Buffer)),
		app.WithKeyReader(func() (search.KeyReader, error) {
			return nil, search.ErrNotTerminal
		}),
	)
	require.NoError(t, err)

	err = a.Interactive(context.Background())
	require.ErrorIs(t, err, search.ErrNotTerminal)
}
