package catalog

import (
	"strings"
)

// DefaultIndexURL points at the published template index.
const DefaultIndexURL = "https://raw.githubusercontent.com/kristiankunc/generate-gitignore/refs/heads/main/templates.json"

// Template is one entry of the template index.
type Template struct {
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
}

// Names returns the template names in index order with case-insensitive
// duplicates and blank names removed.
func Names(templates []Template) []string {
	seen := make(map[string]struct{}, len(templates))
	names := make([]string, 0, len(templates))
	for _, t := range templates {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Find looks a template up by name, ignoring case.
func Find(templates []Template, name string) (Template, bool) {
	trimmed := strings.TrimSpace(name)
	for _, t := range templates {
		if strings.EqualFold(t.Name, trimmed) {
			return t, true
		}
	}
	return Template{}, false
}

// ParseName turns a repository path such as "Global/macOS.gitignore" into a
// template name ("global-macos").
func ParseName(path string) string {
	name := strings.ToLower(path)
	name = strings.ReplaceAll(name, ".gitignore", "")
	return strings.ReplaceAll(name, "/", "-")
}
