package events

import "github.com/kristiankunc/generate-gitignore/internal/logging"

type CatalogTracer struct{}

type CacheTracer struct{}

type cacheSource string

const (
	SourceCache  cacheSource = "cache"
	SourceRemote cacheSource = "remote"
)

var (
	Catalog = CatalogTracer{}
	Cache   = CacheTracer{}
)

func (CatalogTracer) Fetch(url string) {
	logging.Trace("catalog.fetch", map[string]interface{}{"url": url})
}

func (CatalogTracer) Loaded(source cacheSource, count int) {
	logging.Trace("catalog.loaded", map[string]interface{}{"source": string(source), "count": count})
}

func (CatalogTracer) Walk(url string, files int) {
	logging.Trace("catalog.walk", map[string]interface{}{"url": url, "files": files})
}

func (CacheTracer) Hit(key string) {
	logging.Trace("cache.hit", map[string]interface{}{"key": key})
}

func (CacheTracer) Miss(key, reason string) {
	logging.Trace("cache.miss", map[string]interface{}{"key": key, "reason": reason})
}

func (CacheTracer) Store(key string, bytes int) {
	logging.Trace("cache.store", map[string]interface{}{"key": key, "bytes": bytes})
}
