package domain

import "strings"

// CatalogFilter narrows a catalog listing. Zero value matches everything.
type CatalogFilter struct {
	// Category restricts results to a single category when non-empty.
	Category string
	// Search matches entries whose display name contains the term,
	// case-insensitive. The original menu exposes this as a sign-input search box.
	Search string
	// Mode restricts results to entries with the given acquire mode when non-empty.
	Mode AcquireMode
}

// Matches reports whether the entry passes the filter.
func (f CatalogFilter) Matches(e CatalogEntry) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, e.Category) {
		return false
	}
	if f.Mode != "" && f.Mode != e.AcquireMode {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(e.DisplayName), strings.ToLower(f.Search)) {
		return false
	}
	return true
}
