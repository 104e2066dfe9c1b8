package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed data/schemes.yaml
var embeddedSchemes []byte

// Catalog is the read-only scheme catalog. The record set is replaced
// wholesale on reload; individual records are never mutated.
type Catalog struct {
	mu      sync.RWMutex
	schemes []Scheme
	byID    map[string]*Scheme
}

type schemeFile struct {
	Schemes []Scheme `yaml:"schemes"`
}

// Load builds a catalog from the embedded scheme table.
func Load() (*Catalog, error) {
	return parse(embeddedSchemes)
}

// LoadFile builds a catalog from a YAML file on disk. Used when a catalog
// override path is configured.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var file schemeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Schemes) == 0 {
		return nil, fmt.Errorf("catalog contains no schemes")
	}

	byID := make(map[string]*Scheme, len(file.Schemes))
	for i := range file.Schemes {
		s := &file.Schemes[i]
		if err := s.validate(); err != nil {
			return nil, err
		}
		if _, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scheme id %q", s.ID)
		}
		byID[s.ID] = s
	}

	return &Catalog{schemes: file.Schemes, byID: byID}, nil
}

// Replace swaps in a newly loaded record set. Called by the override
// watcher after a successful reload; a failed reload keeps the old set.
func (c *Catalog) Replace(next *Catalog) {
	c.mu.Lock()
	c.schemes = next.schemes
	c.byID = next.byID
	c.mu.Unlock()

	log.Info().Int("schemes", len(next.schemes)).Msg("Catalog replaced")
}

// All returns every scheme in catalog order.
func (c *Catalog) All() []Scheme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Scheme, len(c.schemes))
	copy(out, c.schemes)
	return out
}

// Get returns the scheme with the given id, or false when unknown.
func (c *Catalog) Get(id string) (Scheme, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.byID[id]
	if !ok {
		return Scheme{}, false
	}
	return *s, true
}

// Len returns the number of schemes in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.schemes)
}
