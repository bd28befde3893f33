// Package prompts holds the German prompt fragments sent to the generative model. Each
// file maps a fragment key to its text and may reference variables as {{.Name}}.
package prompts

import (
	"embed"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
)

//go:embed *.json
var files embed.FS

var placeholder = regexp.MustCompile(`\{\{\.(\w+)\}\}`)

// Set is the parsed fragments of one prompt file. It is immutable once loaded.
type Set struct {
	name      string
	fragments map[string]string
}

var (
	mu     sync.Mutex
	loaded = map[string]*Set{}
)

// Load returns the fragments of the named file, e.g. "cvsummary.json". Files are
// parsed on first use.
func Load(name string) (*Set, error) {
	mu.Lock()
	defer mu.Unlock()

	if set, ok := loaded[name]; ok {
		return set, nil
	}

	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unknown prompt file %s: %w", name, err)
	}
	var fragments map[string]string
	if err := json.Unmarshal(data, &fragments); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", name, err)
	}

	set := &Set{name: name, fragments: fragments}
	loaded[name] = set
	return set, nil
}

// Text returns a fragment with its variables substituted. A variable missing from vars
// is an error so that no raw placeholder reaches the model.
func (s *Set) Text(key string, vars map[string]string) (string, error) {
	text, ok := s.fragments[key]
	if !ok {
		return "", fmt.Errorf("prompt %q not found in %s", key, s.name)
	}

	var missing []string
	text = placeholder.ReplaceAllStringFunc(text, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		value, ok := vars[name]
		if !ok {
			missing = append(missing, name)
			return m
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("prompt %q in %s: missing variables %s", key, s.name, strings.Join(missing, ", "))
	}
	return text, nil
}

// Texts resolves several fragments with the same variables.
func (s *Set) Texts(vars map[string]string, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		text, err := s.Text(key, vars)
		if err != nil {
			return nil, err
		}
		out[key] = text
	}
	return out, nil
}

// Keys returns the fragment keys in sorted order.
func (s *Set) Keys() []string {
	return slices.Sorted(maps.Keys(s.fragments))
}
