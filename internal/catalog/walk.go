package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kristiankunc/generate-gitignore/internal/logging/events"
	"golang.org/x/sync/errgroup"
)

// DefaultContentsURL is the GitHub contents API root of the upstream
// template repository.
const DefaultContentsURL = "https://api.github.com/repos/github/gitignore/contents/"

const defaultWalkConcurrency = 4

type contentEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	DownloadURL string `json:"download_url"`
}

// Walker rebuilds the template index from a GitHub contents listing,
// descending into directories.
type Walker struct {
	Client      *Client
	Concurrency int
	// Interval is the minimum delay between two listing requests.
	Interval time.Duration
}

// Walk lists every *.gitignore file below rootURL, sorted by template name.
func (w *Walker) Walk(ctx context.Context, rootURL string) ([]Template, error) {
	limit := w.Concurrency
	if limit <= 0 {
		limit = defaultWalkConcurrency
	}
	sem := make(chan struct{}, limit)
	pace := newThrottle(w.Interval)
	g, ctx := errgroup.WithContext(ctx)

	var (
		mu    sync.Mutex
		found []Template
	)
	var visit func(url string)
	visit = func(url string) {
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			if err := pace.wait(ctx); err != nil {
				<-sem
				return err
			}
			body, err := w.Client.get(ctx, url)
			<-sem
			if err != nil {
				return err
			}
			var entries []contentEntry
			if err := json.Unmarshal(body, &entries); err != nil {
				return fmt.Errorf("decode listing %s: %w", url, err)
			}
			files := 0
			for _, e := range entries {
				switch {
				case e.Type == "file" && strings.HasSuffix(e.Name, ".gitignore"):
					files++
					mu.Lock()
					found = append(found, Template{Name: ParseName(e.Path), DownloadURL: e.DownloadURL})
					mu.Unlock()
				case e.Type == "dir":
					visit(e.URL)
				}
			}
			events.Catalog.Walk(url, files)
			return nil
		})
	}
	visit(rootURL)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Name < found[j].Name
	})
	return found, nil
}

// WriteIndex encodes templates as an indented index document.
func WriteIndex(w io.Writer, templates []Template) error {
	if templates == nil {
		templates = []Template{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(templates)
}
