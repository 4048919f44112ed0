package selection

import (
	"testing"

	"github.com/chmouel/lazycollect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	files   map[string][]string
	entries map[string]models.FileEntry
}

func (f fakeSource) Files(category string) []string { return f.files[category] }

func (f fakeSource) Entry(path string) (models.FileEntry, bool) {
	e, ok := f.entries[path]
	return e, ok
}

func newTestState(t *testing.T) State {
	t.Helper()
	src := fakeSource{
		files: map[string][]string{
			"HTML":       {"a.html", "docs/index.html"},
			"CSS":        {"b.css"},
			"JavaScript": {},
		},
		entries: map[string]models.FileEntry{
			"a.html":          {Path: "a.html", Category: "HTML", Size: 300},
			"docs/index.html": {Path: "docs/index.html", Category: "HTML", Size: 600},
			"b.css":           {Path: "b.css", Category: "CSS", Size: 90},
		},
	}
	return New(models.DefaultCategories(), src)
}

func TestNewSelectsEverything(t *testing.T) {
	s := newTestState(t)

	assert.Equal(t, 3, s.Count())
	assert.Equal(t, 3, s.Total())
	assert.True(t, s.CategoryAll("HTML"))
	assert.True(t, s.CategoryAll("CSS"))
	assert.False(t, s.CategoryAll("JavaScript"), "empty category is never all-selected")
	assert.Empty(t, s.Recent())
}

func TestToggleFile(t *testing.T) {
	s := newTestState(t)

	next := Update(s, ToggleFile{Path: "a.html"})
	assert.False(t, next.Included("a.html"))
	assert.Equal(t, 2, next.Count())
	assert.False(t, next.CategoryAll("HTML"))

	assert.True(t, s.Included("a.html"), "input state is not mutated")
	assert.Equal(t, 3, s.Count())

	back := Update(next, ToggleFile{Path: "a.html"})
	assert.True(t, back.Included("a.html"))
	assert.True(t, back.CategoryAll("HTML"))
}

func TestToggleUnknownFileIsNoop(t *testing.T) {
	s := newTestState(t)
	next := Update(s, ToggleFile{Path: "missing.html"})

	assert.Equal(t, s.Count(), next.Count())
	assert.Equal(t, s.Total(), next.Total())
	assert.False(t, next.Included("missing.html"))
}

func TestSetCategory(t *testing.T) {
	s := newTestState(t)

	off := Update(s, SetCategory{Category: "HTML", Value: false})
	assert.Zero(t, off.CountIn("HTML"))
	assert.Equal(t, 1, off.CountIn("CSS"), "other categories are untouched")
	assert.False(t, off.CategoryAll("HTML"))

	on := Update(off, SetCategory{Category: "HTML", Value: true})
	assert.Equal(t, on.TotalIn("HTML"), on.CountIn("HTML"))
	assert.True(t, on.CategoryAll("HTML"))
}

func TestSetCategoryAfterPartialSelection(t *testing.T) {
	s := newTestState(t)
	s = Update(s, ToggleFile{Path: "docs/index.html"})
	require.Equal(t, 1, s.CountIn("HTML"))

	for _, value := range []bool{true, false} {
		next := Update(s, SetCategory{Category: "HTML", Value: value})
		if value {
			assert.Equal(t, next.TotalIn("HTML"), next.CountIn("HTML"))
		} else {
			assert.Zero(t, next.CountIn("HTML"))
		}
	}
}

func TestSetAll(t *testing.T) {
	s := newTestState(t)

	none := Update(s, SetAll{Value: false})
	assert.Zero(t, none.Count())
	assert.Empty(t, none.Selected())

	all := Update(none, SetAll{Value: true})
	assert.Equal(t, all.Total(), all.Count())
}

func TestSetMatching(t *testing.T) {
	s := newTestState(t)

	next := Update(s, SetMatching{Query: "DOCS/", Value: false})
	assert.False(t, next.Included("docs/index.html"))
	assert.True(t, next.Included("a.html"))
	assert.True(t, next.Included("b.css"))

	next = Update(next, SetMatching{Query: "", Value: false})
	assert.Zero(t, next.Count(), "empty query matches every file")
}

func TestSelectedOrder(t *testing.T) {
	s := newTestState(t)
	s = Update(s, ToggleFile{Path: "a.html"})

	assert.Equal(t, []string{"docs/index.html", "b.css"}, s.Selected())
}

func TestVisible(t *testing.T) {
	s := newTestState(t)

	assert.Equal(t, []string{"a.html", "docs/index.html"}, s.Visible("HTML", ""))
	assert.Equal(t, []string{"docs/index.html"}, s.Visible("HTML", "index"))
	assert.Empty(t, s.Visible("CSS", "index"))
}

func TestStats(t *testing.T) {
	s := newTestState(t)

	st := s.Stats()
	assert.Equal(t, 3, st.Files)
	assert.Equal(t, int64(990), st.Bytes)
	assert.Equal(t, int64(33), st.EstLines)

	st = Update(s, SetCategory{Category: "HTML", Value: false}).Stats()
	assert.Equal(t, Stats{Files: 1, Bytes: 90, EstLines: 3}, st)
}

func TestRecent(t *testing.T) {
	s := newTestState(t)
	s = Update(s, SetAll{Value: false})

	s = Update(s, ToggleFile{Path: "a.html"})
	s = Update(s, ToggleFile{Path: "b.css"})
	s = Update(s, ToggleFile{Path: "docs/index.html"})
	s = Update(s, ToggleFile{Path: "b.css"}) // switched off: not recorded
	s = Update(s, ToggleFile{Path: "b.css"})

	paths := make([]string, 0, RecentLimit)
	for _, e := range s.Recent() {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{"b.css", "docs/index.html", "a.html"}, paths)

	s = Update(s, SetAll{Value: false})
	s = Update(s, ToggleFile{Path: "docs/index.html"})
	recent := s.Recent()
	require.Len(t, recent, RecentLimit)
	assert.Equal(t, "docs/index.html", recent[0].Path)
	assert.Equal(t, int64(600), recent[0].Size)
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("src/App.js", "app"))
	assert.True(t, Matches("src/App.js", "  "))
	assert.False(t, Matches("src/App.js", "css"))
}

func TestCarryKeepsChoices(t *testing.T) {
	prev := newTestState(t)
	prev = Update(prev, ToggleFile{Path: "b.css"})
	prev = Update(prev, ToggleFile{Path: "b.css"})
	prev = Update(prev, ToggleFile{Path: "a.html"})

	src := fakeSource{
		files: map[string][]string{
			"HTML": {"a.html", "new.html"},
			"CSS":  {"b.css"},
		},
		entries: map[string]models.FileEntry{
			"a.html":   {Path: "a.html", Category: "HTML", Size: 300},
			"new.html": {Path: "new.html", Category: "HTML", Size: 10},
			"b.css":    {Path: "b.css", Category: "CSS", Size: 90},
		},
	}
	next := Carry(prev, New(models.DefaultCategories(), src))

	assert.False(t, next.Included("a.html"), "deselected file stays deselected")
	assert.True(t, next.Included("new.html"), "new files are selected")
	assert.True(t, next.Included("b.css"))
	assert.False(t, next.Included("docs/index.html"), "removed file is gone")
	assert.Equal(t, 3, next.Total())

	require.Len(t, next.Recent(), 1)
	assert.Equal(t, "b.css", next.Recent()[0].Path)
}
