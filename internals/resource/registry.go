// internals/resource/registry.go
package resource

import (
	"fmt"
	"sort"
)

// Registry memetakan nama resource ke schema-nya. Diisi sekali saat
// startup lewat Register, setelah itu read-only — aman dishare antar
// request tanpa lock.
type Registry struct {
	schemas map[string]*Schema
}

func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

func (r *Registry) Register(s *Schema) {
	if s == nil || s.Resource == "" {
		panic("resource: schema tanpa nama resource")
	}
	if _, dup := r.schemas[s.Resource]; dup {
		panic(fmt.Sprintf("resource: schema %q didaftarkan dua kali", s.Resource))
	}
	r.schemas[s.Resource] = s
}

// Lookup ada di hot path (dipanggil tiap request), jadi harus lookup
// map biasa, bukan discovery.
func (r *Registry) Lookup(name string) (*Schema, error) {
	s, ok := r.schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
	}
	return s, nil
}

// Names mengembalikan daftar resource terdaftar, untuk log startup.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
