// Package scanner walks a project tree and classifies source files by category.
package scanner

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"

	"github.com/chmouel/lazycollect/internal/config"
	"github.com/chmouel/lazycollect/internal/log"
	"github.com/chmouel/lazycollect/internal/models"
)

// Options controls a single scan.
type Options struct {
	Root             string
	IgnoreDirs       []string
	Categories       []models.Category
	// OutputFile is the output file relative to Root, slash separated.
	// Empty when the output is written outside the project.
	OutputFile       string
	Exclude          []string
	SkipHidden       bool
	RespectGitignore bool
	MaxFileSize      int64

	// Progress, when set, is called with the running count of collected files.
	Progress func(found int)
}

// OptionsFromConfig builds scan options from the application configuration.
func OptionsFromConfig(cfg *config.AppConfig) Options {
	outputFile, _ := cfg.OutputRel()
	return Options{
		Root:             cfg.Root,
		IgnoreDirs:       cfg.IgnoreDirs,
		Categories:       cfg.Categories,
		OutputFile:       outputFile,
		Exclude:          cfg.Exclude,
		SkipHidden:       cfg.SkipHidden,
		RespectGitignore: cfg.RespectGitignore,
		MaxFileSize:      cfg.MaxFileSize,
	}
}

// Result is the outcome of a scan: every collected file grouped by category.
type Result struct {
	Root       string
	Categories []models.Category
	byCategory map[string][]string
	entries    map[string]models.FileEntry
}

func newResult(root string, categories []models.Category) *Result {
	r := &Result{
		Root:       root,
		Categories: categories,
		byCategory: make(map[string][]string, len(categories)),
		entries:    make(map[string]models.FileEntry),
	}
	for _, c := range categories {
		r.byCategory[c.Name] = []string{}
	}
	return r
}

// Files returns the sorted relative paths collected for a category.
func (r *Result) Files(category string) []string {
	return r.byCategory[category]
}

// Entry returns the file entry for a relative path.
func (r *Result) Entry(path string) (models.FileEntry, bool) {
	e, ok := r.entries[path]
	return e, ok
}

// Total returns the number of collected files across all categories.
func (r *Result) Total() int {
	return len(r.entries)
}

// Classify returns the first category whose extensions match name.
func Classify(name string, categories []models.Category) (string, bool) {
	for _, c := range categories {
		if c.Matches(name) {
			return c.Name, true
		}
	}
	return "", false
}

type walker struct {
	opts      Options
	ignore    map[string]bool
	gitIgnore gitignore.GitIgnore
	result    *Result
}

// Scan walks opts.Root once. An unreadable root yields an empty result.
// The only error returned is the context error when the scan is cancelled.
func Scan(ctx context.Context, opts Options) (*Result, error) {
	w := &walker{
		opts:   opts,
		ignore: make(map[string]bool, len(opts.IgnoreDirs)),
		result: newResult(opts.Root, opts.Categories),
	}
	for _, name := range opts.IgnoreDirs {
		w.ignore[name] = true
	}
	if opts.RespectGitignore {
		w.gitIgnore = loadGitIgnore(opts.Root)
	}

	err := filepath.WalkDir(opts.Root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return w.visit(path, d, err)
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Printf("scan: cancelled after %d files", w.result.Total())
			return nil, err
		}
		log.Printf("scan: walk of %s stopped: %v", opts.Root, err)
	}

	for name := range w.result.byCategory {
		sort.Strings(w.result.byCategory[name])
	}
	log.Printf("scan: %s collected %d files", opts.Root, w.result.Total())
	return w.result, nil
}

func (w *walker) visit(path string, d fs.DirEntry, err error) error {
	if err != nil {
		if path == w.opts.Root {
			log.Printf("scan: cannot read root %s: %v", path, err)
			return filepath.SkipAll
		}
		log.Printf("scan: skipping %s: %v", path, err)
		if d != nil && d.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}
	if path == w.opts.Root {
		return nil
	}

	rel, relErr := filepath.Rel(w.opts.Root, path)
	if relErr != nil {
		return nil
	}
	rel = filepath.ToSlash(rel)
	name := d.Name()

	if d.IsDir() {
		if w.ignore[name] || w.skipHidden(name) || w.excluded(rel, true) {
			return filepath.SkipDir
		}
		return nil
	}

	if rel == w.opts.OutputFile || w.skipHidden(name) || w.excluded(rel, false) {
		return nil
	}

	category, ok := Classify(name, w.opts.Categories)
	if !ok {
		return nil
	}

	size, ok := w.fileSize(path, d)
	if !ok {
		return nil
	}
	if w.opts.MaxFileSize > 0 && size > w.opts.MaxFileSize {
		log.Printf("scan: skipping %s: %d bytes exceeds limit", rel, size)
		return nil
	}

	if _, dup := w.result.entries[rel]; dup {
		return nil
	}
	w.result.entries[rel] = models.FileEntry{Path: rel, Category: category, Size: size}
	w.result.byCategory[category] = append(w.result.byCategory[category], rel)
	if w.opts.Progress != nil {
		w.opts.Progress(w.result.Total())
	}
	return nil
}

func (w *walker) skipHidden(name string) bool {
	return w.opts.SkipHidden && strings.HasPrefix(name, ".") && name != ".env"
}

func (w *walker) excluded(rel string, isDir bool) bool {
	for _, pattern := range w.opts.Exclude {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	if w.gitIgnore != nil {
		if match := w.gitIgnore.Relative(rel, isDir); match != nil && match.Ignore() {
			return true
		}
	}
	return false
}

// fileSize reports the size of regular files and of symlinks pointing at one.
func (w *walker) fileSize(path string, d fs.DirEntry) (int64, bool) {
	if d.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return 0, false
		}
		return info.Size(), true
	}
	if !d.Type().IsRegular() {
		return 0, false
	}
	info, err := d.Info()
	if err != nil {
		return 0, false
	}
	return info.Size(), true
}

func loadGitIgnore(root string) gitignore.GitIgnore {
	f, err := os.Open(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	defer f.Close()

	return gitignore.New(f, root, nil)
}
