// Package models defines the data objects shared across lazycollect packages.
package models

import (
	"path"
	"strings"
)

// Category groups the file extensions collected as one kind of source.
type Category struct {
	Name       string
	Extensions []string // lower-case, with leading dot (".html", ".blade.php")
	Color      string   // hex colour used for the section header; empty uses the theme accent
}

// Matches reports whether the file name ends with one of the category extensions.
// Matching is case-insensitive so compound extensions like ".blade.php" work.
func (c Category) Matches(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range c.Extensions {
		if ext != "" && strings.HasSuffix(lower, ext) && len(lower) > len(ext) {
			return true
		}
	}
	return false
}

// FileEntry is a scanned file belonging to exactly one category.
type FileEntry struct {
	Path     string // relative to the project root, slash separated
	Category string
	Size     int64
}

// Name returns the base name of the entry.
func (f FileEntry) Name() string {
	return path.Base(f.Path)
}

// Extension returns the lower-case extension without the leading dot,
// keeping compound template extensions intact.
func (f FileEntry) Extension() string {
	name := strings.ToLower(f.Name())
	if strings.HasSuffix(name, ".blade.php") {
		return "blade.php"
	}
	ext := path.Ext(name)
	return strings.TrimPrefix(ext, ".")
}

// DefaultCategories returns the built-in category set.
func DefaultCategories() []Category {
	return []Category{
		{Name: "HTML", Extensions: []string{".html"}, Color: "#e34c26"},
		{Name: "CSS", Extensions: []string{".css"}, Color: "#264de4"},
		{Name: "JavaScript", Extensions: []string{".js"}, Color: "#f0db4f"},
	}
}

// DefaultIgnoreDirs lists directory names never descended into.
func DefaultIgnoreDirs() []string {
	return []string{".git", ".vscode", "node_modules", "__pycache__", ".idea"}
}

// DefaultOutputFilename is the file the collected content is written to.
const DefaultOutputFilename = "full_code.txt"
