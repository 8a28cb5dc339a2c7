package events

import "github.com/kristiankunc/generate-gitignore/internal/logging"

type SearchTracer struct{}

var Search = SearchTracer{}

func (SearchTracer) Start(candidates int) {
	logging.Trace("search.start", map[string]interface{}{"candidates": candidates})
}

func (SearchTracer) Append(query string, matches int) {
	logging.Trace("search.append", map[string]interface{}{"query": query, "matches": matches})
}

func (SearchTracer) Backspace(query string, matches int) {
	logging.Trace("search.backspace", map[string]interface{}{"query": query, "matches": matches})
}

func (SearchTracer) Cursor(cursor int) {
	logging.Trace("search.cursor", map[string]interface{}{"cursor": cursor})
}

func (SearchTracer) NoMatch(query string) {
	logging.Trace("search.nomatch", map[string]interface{}{"query": query})
}

func (SearchTracer) Select(query, name string) {
	logging.Trace("search.select", map[string]interface{}{"query": query, "name": name})
}

func (SearchTracer) Abort(query string) {
	logging.Trace("search.abort", map[string]interface{}{"query": query})
}

func (SearchTracer) InputError(err error) {
	if err == nil {
		return
	}
	logging.Trace("search.input-error", map[string]interface{}{"error": err.Error()})
}
