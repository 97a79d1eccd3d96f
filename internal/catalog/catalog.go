// Package catalog holds the domain keyword vocabularies and the
// user-facing label/category tables, loaded once from embedded YAML.
//
// Reads never fail: unknown domain keys resolve to the default domain.
// The single write operation, AddKeywords, is strict instead and
// rejects unregistered keys.
package catalog

import (
	_ "embed"
	"fmt"
	"math"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/hirelens/resume-scorer/internal/domain"
)

//go:embed domains.yaml
var domainsYAML []byte

type catalogFile struct {
	Default string `yaml:"default"`
	Domains []struct {
		Key      string   `yaml:"key"`
		Name     string   `yaml:"name"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"domains"`
	LegacyAliases []struct {
		Key    string `yaml:"key"`
		Target string `yaml:"target"`
	} `yaml:"legacy_aliases"`
	Labels []struct {
		Label string `yaml:"label"`
		Key   string `yaml:"key"`
	} `yaml:"labels"`
	Categories []string `yaml:"categories"`
}

type entry struct {
	name     string
	keywords []string
}

// Catalog is the loaded keyword table. Safe for concurrent use: reads
// take the read lock, AddKeywords takes the write lock.
type Catalog struct {
	mu         sync.RWMutex
	entries    map[string]*entry // modern and legacy keys; aliases share the entry
	keys       []string          // modern keys, definition order
	legacyKeys []string
	labels     []string
	labelToKey map[string]string
	categories []string
	defaultKey string
}

// Load parses the embedded domain tables into a ready Catalog.
func Load() (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(domainsYAML, &f); err != nil {
		return nil, fmt.Errorf("op=catalog.Load: %w", err)
	}
	if f.Default == "" {
		return nil, fmt.Errorf("op=catalog.Load: %w: missing default domain", domain.ErrInvalidArgument)
	}

	c := &Catalog{
		entries:    make(map[string]*entry, len(f.Domains)+len(f.LegacyAliases)),
		labelToKey: make(map[string]string, len(f.Labels)),
		defaultKey: f.Default,
	}
	for _, d := range f.Domains {
		if _, dup := c.entries[d.Key]; dup {
			return nil, fmt.Errorf("op=catalog.Load: %w: duplicate domain %q", domain.ErrInvalidArgument, d.Key)
		}
		c.entries[d.Key] = &entry{name: d.Name, keywords: append([]string(nil), d.Keywords...)}
		c.keys = append(c.keys, d.Key)
	}
	for _, a := range f.LegacyAliases {
		target, ok := c.entries[a.Target]
		if !ok {
			return nil, fmt.Errorf("op=catalog.Load: %w: alias %q points to unknown domain %q", domain.ErrInvalidArgument, a.Key, a.Target)
		}
		c.entries[a.Key] = target
		c.legacyKeys = append(c.legacyKeys, a.Key)
	}
	if _, ok := c.entries[c.defaultKey]; !ok {
		return nil, fmt.Errorf("op=catalog.Load: %w: default domain %q not defined", domain.ErrInvalidArgument, c.defaultKey)
	}
	for _, l := range f.Labels {
		if _, ok := c.entries[l.Key]; !ok {
			return nil, fmt.Errorf("op=catalog.Load: %w: label %q maps to unknown domain %q", domain.ErrInvalidArgument, l.Label, l.Key)
		}
		c.labels = append(c.labels, l.Label)
		c.labelToKey[l.Label] = l.Key
	}
	c.categories = append(c.categories, f.Categories...)
	return c, nil
}

// DefaultKey returns the fallback domain key for unknown lookups.
func (c *Catalog) DefaultKey() string { return c.defaultKey }

// IsRegistered reports whether key names a domain, legacy keys included.
func (c *Catalog) IsRegistered(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

// Lookup resolves a domain key to its name and keywords. Unknown keys
// fall back to the default domain; Lookup never fails. The returned
// keyword slice is a copy.
func (c *Catalog) Lookup(key string) domain.Domain {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		key = c.defaultKey
		e = c.entries[key]
	}
	return domain.Domain{
		Key:      key,
		Name:     e.name,
		Keywords: append([]string(nil), e.keywords...),
	}
}

// Keys returns the modern domain keys in definition order.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.keys...)
}

// LegacyKeys returns the keys kept only for backward compatibility.
func (c *Catalog) LegacyKeys() []string {
	return append([]string(nil), c.legacyKeys...)
}

// KeywordCount returns the keyword count for key, or 0 when the key is
// not registered (no fallback, matching the strict write-side view).
func (c *Catalog) KeywordCount(key string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return 0
	}
	return len(e.keywords)
}

// Search returns keywords containing query, case-insensitively. With an
// empty key all modern domains are searched; otherwise the key resolves
// like Lookup. Duplicates are removed, first occurrence order kept.
func (c *Catalog) Search(query, key string) []string {
	q := strings.ToLower(query)

	c.mu.RLock()
	defer c.mu.RUnlock()

	var search []string
	if key == "" {
		search = c.keys
	} else {
		if _, ok := c.entries[key]; !ok {
			key = c.defaultKey
		}
		search = []string{key}
	}

	seen := make(map[string]struct{})
	var out []string
	for _, k := range search {
		for _, kw := range c.entries[k].keywords {
			lower := strings.ToLower(kw)
			if !strings.Contains(lower, q) {
				continue
			}
			if _, dup := seen[lower]; dup {
				continue
			}
			seen[lower] = struct{}{}
			out = append(out, kw)
		}
	}
	return out
}

// AddKeywords appends keywords that are not already present in the
// domain (case-insensitive comparison). This is the one operation that
// does not fall back on unknown keys: it returns ErrUnknownDomain.
// It reports the domain's new keyword total.
func (c *Catalog) AddKeywords(key string, keywords []string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownDomain, key)
	}

	existing := make(map[string]struct{}, len(e.keywords))
	for _, kw := range e.keywords {
		existing[strings.ToLower(kw)] = struct{}{}
	}
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		lower := strings.ToLower(kw)
		if _, dup := existing[lower]; dup {
			continue
		}
		existing[lower] = struct{}{}
		e.keywords = append(e.keywords, kw)
	}
	return len(e.keywords), nil
}

// PartitionByPresence tests every keyword of the resolved domain for
// case-insensitive substring presence in text, in definition order.
// Every keyword lands in exactly one of the two output lists.
func (c *Catalog) PartitionByPresence(text, key string) domain.KeywordMatch {
	textLower := strings.ToLower(text)

	c.mu.RLock()
	e, ok := c.entries[key]
	if !ok {
		e = c.entries[c.defaultKey]
	}
	keywords := append([]string(nil), e.keywords...)
	c.mu.RUnlock()

	present := make([]string, 0, len(keywords))
	missing := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if strings.Contains(textLower, strings.ToLower(kw)) {
			present = append(present, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	coverage := 0.0
	if len(keywords) > 0 {
		coverage = math.Round(float64(len(present))/float64(len(keywords))*1000) / 10
	}
	return domain.KeywordMatch{
		Present:      present,
		Missing:      missing,
		PresentCount: len(present),
		MissingCount: len(missing),
		TotalCount:   len(keywords),
		Coverage:     coverage,
	}
}

// AllKeys returns modern keys followed by legacy keys, both in
// definition order, for diagnostics and CLI listings.
func (c *Catalog) AllKeys() []string {
	return append(c.Keys(), c.LegacyKeys()...)
}
