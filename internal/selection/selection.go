// Package selection holds which scanned files are included in an export.
//
// State is a value: Update never mutates its input and returns the next
// state, so the UI only dispatches messages and renders what it gets back.
package selection

import (
	"maps"
	"slices"
	"strings"

	"github.com/chmouel/lazycollect/internal/models"
)

// RecentLimit is the number of recently selected files remembered.
const RecentLimit = 3

// Source is the scan output a selection is built from.
type Source interface {
	Files(category string) []string
	Entry(path string) (models.FileEntry, bool)
}

// Msg is a selection change.
type Msg interface {
	selectionMsg()
}

// ToggleFile flips the included flag of one file.
type ToggleFile struct{ Path string }

// SetCategory sets every file of a category to Value.
type SetCategory struct {
	Category string
	Value    bool
}

// SetAll sets every file to Value.
type SetAll struct{ Value bool }

// SetMatching sets every file matching Query (see Matches) to Value.
type SetMatching struct {
	Query string
	Value bool
}

func (ToggleFile) selectionMsg()  {}
func (SetCategory) selectionMsg() {}
func (SetAll) selectionMsg()      {}
func (SetMatching) selectionMsg() {}

// State is an immutable snapshot of the selection.
type State struct {
	categories []models.Category
	files      map[string][]string
	entries    map[string]models.FileEntry
	included   map[string]bool
	recent     []string
}

// Stats summarises the selected files.
type Stats struct {
	Files    int
	Bytes    int64
	EstLines int64
}

// New builds a state from a scan with every file included.
func New(categories []models.Category, src Source) State {
	s := State{
		categories: slices.Clone(categories),
		files:      make(map[string][]string, len(categories)),
		entries:    make(map[string]models.FileEntry),
		included:   make(map[string]bool),
	}
	for _, c := range categories {
		paths := slices.Clone(src.Files(c.Name))
		s.files[c.Name] = paths
		for _, p := range paths {
			if e, ok := src.Entry(p); ok {
				s.entries[p] = e
			} else {
				s.entries[p] = models.FileEntry{Path: p, Category: c.Name}
			}
			s.included[p] = true
		}
	}
	return s
}

// Carry returns next with the choices made in prev applied to it: files
// deselected in prev stay deselected, and recent selections still present
// are kept. Files new to next stay selected.
func Carry(prev, next State) State {
	out := next
	out.included = maps.Clone(next.included)
	for p, on := range prev.included {
		if _, ok := out.included[p]; ok && !on {
			out.included[p] = false
		}
	}
	out.recent = nil
	for _, p := range prev.recent {
		if out.included[p] {
			out.recent = append(out.recent, p)
		}
	}
	return out
}

// Update applies msg and returns the resulting state.
func Update(s State, msg Msg) State {
	next := s
	next.included = maps.Clone(s.included)
	next.recent = slices.Clone(s.recent)

	switch msg := msg.(type) {
	case ToggleFile:
		cur, ok := next.included[msg.Path]
		if !ok {
			return s
		}
		next.included[msg.Path] = !cur
		if !cur {
			next.pushRecent(msg.Path)
		}
	case SetCategory:
		for _, p := range next.files[msg.Category] {
			next.included[p] = msg.Value
		}
	case SetAll:
		for p := range next.included {
			next.included[p] = msg.Value
		}
	case SetMatching:
		for p := range next.included {
			if Matches(p, msg.Query) {
				next.included[p] = msg.Value
			}
		}
	default:
		return s
	}
	return next
}

func (s *State) pushRecent(path string) {
	s.recent = slices.DeleteFunc(s.recent, func(p string) bool { return p == path })
	s.recent = slices.Insert(s.recent, 0, path)
	if len(s.recent) > RecentLimit {
		s.recent = s.recent[:RecentLimit]
	}
}

// Matches reports whether path contains query, ignoring case.
// An empty query matches everything.
func Matches(path, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(path), query)
}

// Categories returns the categories in display order.
func (s State) Categories() []models.Category {
	return s.categories
}

// Files returns the sorted paths of a category.
func (s State) Files(category string) []string {
	return s.files[category]
}

// Visible returns the paths of a category that match query.
func (s State) Visible(category, query string) []string {
	var out []string
	for _, p := range s.files[category] {
		if Matches(p, query) {
			out = append(out, p)
		}
	}
	return out
}

// Entry returns the scanned entry for path.
func (s State) Entry(path string) (models.FileEntry, bool) {
	e, ok := s.entries[path]
	return e, ok
}

// Included reports whether path is selected.
func (s State) Included(path string) bool {
	return s.included[path]
}

// Count returns the number of selected files.
func (s State) Count() int {
	n := 0
	for _, v := range s.included {
		if v {
			n++
		}
	}
	return n
}

// Total returns the number of scanned files.
func (s State) Total() int {
	return len(s.included)
}

// CountIn returns the number of selected files in a category.
func (s State) CountIn(category string) int {
	n := 0
	for _, p := range s.files[category] {
		if s.included[p] {
			n++
		}
	}
	return n
}

// TotalIn returns the number of files in a category.
func (s State) TotalIn(category string) int {
	return len(s.files[category])
}

// CategoryAll is the "select all" flag of a category: true when the
// category is non-empty and every file in it is selected.
func (s State) CategoryAll(category string) bool {
	total := s.TotalIn(category)
	return total > 0 && s.CountIn(category) == total
}

// Selected returns the selected paths in export order: category order,
// then path order within a category.
func (s State) Selected() []string {
	var out []string
	for _, c := range s.categories {
		for _, p := range s.files[c.Name] {
			if s.included[p] {
				out = append(out, p)
			}
		}
	}
	return out
}

// Stats returns the size summary of the selection. Lines are estimated at
// 30 bytes per line.
func (s State) Stats() Stats {
	var st Stats
	for p, on := range s.included {
		if !on {
			continue
		}
		st.Files++
		st.Bytes += s.entries[p].Size
	}
	st.EstLines = st.Bytes / 30
	return st
}

// Recent returns the most recently selected files, newest first.
func (s State) Recent() []models.FileEntry {
	out := make([]models.FileEntry, 0, len(s.recent))
	for _, p := range s.recent {
		out = append(out, s.entries[p])
	}
	return out
}
