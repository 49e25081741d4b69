// Package registry keeps the in-memory category/tracker grouping the browse
// and creation flows work against. The durable store is the source of truth;
// the registry is hydrated from it at startup and mirrors writes.
package registry

import (
	"sort"

	"github.com/drakoger/tracker/internal/models"
)

// Registry is a named, ordered collection of tracker groups. Group names
// are unique; entries keep insertion order. Not safe for concurrent use.
type Registry struct {
	groups []models.TrackerGroup
}

func New() *Registry {
	return &Registry{}
}

// EnsureCategory creates an empty group with the given name if none exists.
// Calling it again with the same name is a no-op.
func (r *Registry) EnsureCategory(name string) {
	if r.indexOf(name) >= 0 {
		return
	}
	r.groups = append(r.groups, models.TrackerGroup{Name: name})
}

// AddEntry appends a tracker to the named group, creating the group on
// demand when no group with that name exists.
func (r *Registry) AddEntry(t models.Tracker, groupName string) {
	if i := r.indexOf(groupName); i >= 0 {
		r.groups[i].Entries = append(r.groups[i].Entries, t)
		return
	}
	r.groups = append(r.groups, models.TrackerGroup{Name: groupName, Entries: []models.Tracker{t}})
}

// FetchAll returns a copy of every group sorted by name ascending, entries
// in insertion order. Mutating the result does not affect the registry.
func (r *Registry) FetchAll() []models.TrackerGroup {
	out := make([]models.TrackerGroup, len(r.groups))
	for i, g := range r.groups {
		entries := make([]models.Tracker, len(g.Entries))
		copy(entries, g.Entries)
		out[i] = models.TrackerGroup{Name: g.Name, Entries: entries}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

func (r *Registry) indexOf(name string) int {
	for i, g := range r.groups {
		if g.Name == name {
			return i
		}
	}
	return -1
}
