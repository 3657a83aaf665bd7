package catalog

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/openheads/headstore/internal/domain"
)

// table is one immutable catalog snapshot. Readers always see a complete
// table; Replace swaps the whole pointer.
type table struct {
	entries    map[string]domain.CatalogEntry
	ordered    []domain.CatalogEntry
	categories []domain.Category
}

// Registry serves catalog lookups from an in-memory snapshot that is
// replaced atomically on reload. Reads never block writers and never
// observe a partially applied reload.
type Registry struct {
	current atomic.Pointer[table]
}

// NewRegistry creates an empty registry. Call Replace to populate it.
func NewRegistry() *Registry {
	r := &Registry{}
	r.current.Store(newTable(nil, nil))
	return r
}

func newTable(entries []domain.CatalogEntry, categoryMeta []domain.Category) *table {
	byID := make(map[string]domain.CatalogEntry, len(entries))
	ordered := make([]domain.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if _, dup := byID[e.ID]; dup {
			continue
		}
		byID[e.ID] = e
		ordered = append(ordered, e)
	}

	// Stable listing order: category, then price ascending, then id
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Category != ordered[j].Category {
			return ordered[i].Category < ordered[j].Category
		}
		if ordered[i].Price != ordered[j].Price {
			return ordered[i].Price < ordered[j].Price
		}
		return ordered[i].ID < ordered[j].ID
	})

	return &table{
		entries:    byID,
		ordered:    ordered,
		categories: buildCategories(ordered, categoryMeta),
	}
}

func buildCategories(entries []domain.CatalogEntry, meta []domain.Category) []domain.Category {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Category]++
	}

	byName := make(map[string]domain.Category, len(meta))
	for _, c := range meta {
		byName[c.Name] = c
	}

	seen := make(map[string]bool)
	var out []domain.Category
	for _, e := range entries {
		if seen[e.Category] {
			continue
		}
		seen[e.Category] = true

		c, ok := byName[e.Category]
		if !ok {
			c = domain.Category{Name: e.Category, DisplayName: e.Category}
		}
		c.EntryCount = counts[e.Category]
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Replace atomically swaps the registry contents.
func (r *Registry) Replace(entries []domain.CatalogEntry, categories []domain.Category) {
	r.current.Store(newTable(entries, categories))
}

// Get returns the entry with the given id.
func (r *Registry) Get(id string) (domain.CatalogEntry, error) {
	entry, ok := r.current.Load().entries[id]
	if !ok {
		return domain.CatalogEntry{}, fmt.Errorf("%w: %s", domain.ErrUnknownEntry, id)
	}
	return entry, nil
}

// List returns entries matching the filter in stable listing order.
func (r *Registry) List(filter domain.CatalogFilter) []domain.CatalogEntry {
	t := r.current.Load()
	out := make([]domain.CatalogEntry, 0, len(t.ordered))
	for _, e := range t.ordered {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Categories returns all categories that currently have entries, sorted
// by name, with display metadata and entry counts.
func (r *Registry) Categories() []domain.Category {
	t := r.current.Load()
	out := make([]domain.Category, len(t.categories))
	copy(out, t.categories)
	return out
}

// Category returns one category by name.
func (r *Registry) Category(name string) (domain.Category, error) {
	for _, c := range r.current.Load().categories {
		if c.Name == name {
			return c, nil
		}
	}
	return domain.Category{}, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, name)
}

// Len returns the number of catalog entries in the current snapshot.
func (r *Registry) Len() int {
	return len(r.current.Load().ordered)
}
