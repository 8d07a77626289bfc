package schema

import (
	"fmt"
	"sync"
)

// Registry holds schemas by the name of their root type, so a document can
// be checked against the schema its root object asks for.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

func NewRegistry() *Registry {
	return &Registry{schemas: map[string]*Schema{}}
}

// Register adds s under its root type, replacing any schema already
// registered for that type.
func (r *Registry) Register(s *Schema) error {
	if s == nil {
		return fmt.Errorf("cannot register nil schema")
	}
	if s.Root == "" {
		return fmt.Errorf("schema must have a root type")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[s.Root] = s
	return nil
}

func (r *Registry) Lookup(root string) *Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schemas[root]
}

// All returns a copy of the registered schemas.
func (r *Registry) All() map[string]*Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make(map[string]*Schema, len(r.schemas))
	for k, v := range r.schemas {
		result[k] = v
	}
	return result
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}
