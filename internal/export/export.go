// Package export turns a selection of files into the delimited text blob and
// delivers it to a file, the clipboard or a directory of copies.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/chmouel/lazycollect/internal/log"
)

// ErrNoSelection is returned when there is nothing to export.
var ErrNoSelection = errors.New("no files selected")

// ErrNotText marks a file skipped because it is binary or not valid UTF-8.
var ErrNotText = errors.New("not a UTF-8 text file")

// Separator frames the FILE label of every block.
var Separator = strings.Repeat("=", 50)

// FileLabel prefixes the path line of every block.
const FileLabel = "FILE: "

// sniffLen is how many leading bytes are checked for NUL.
const sniffLen = 512

// SkipError describes a selected file left out of the export.
type SkipError struct {
	Path string
	Err  error
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("skipped %s: %v", e.Path, e.Err)
}

func (e *SkipError) Unwrap() error { return e.Err }

// Block formats one file for the export.
func Block(path, content string) string {
	var b strings.Builder
	b.Grow(len(content) + len(path) + 2*len(Separator) + 16)
	b.WriteString(Separator)
	b.WriteByte('\n')
	b.WriteString(FileLabel)
	b.WriteString(path)
	b.WriteByte('\n')
	b.WriteString(Separator)
	b.WriteByte('\n')
	b.WriteString(content)
	b.WriteString("\n\n")
	return b.String()
}

// Build concatenates the blocks of paths, relative to root, in order.
//
// Files that cannot be read or are not text are skipped; one *SkipError per
// skipped file is returned alongside the blob. An empty selection, or one where
// every file was skipped, yields ErrNoSelection.
func Build(root string, paths []string) (string, []error, error) {
	if len(paths) == 0 {
		return "", nil, ErrNoSelection
	}

	var (
		out      strings.Builder
		skipped  []error
		exported int
	)
	for _, rel := range paths {
		content, err := readText(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			log.Printf("export: skipping %s: %v", rel, err)
			skipped = append(skipped, &SkipError{Path: rel, Err: err})
			continue
		}
		out.WriteString(Block(rel, content))
		exported++
	}

	if exported == 0 {
		return "", skipped, ErrNoSelection
	}
	log.Printf("export: built %d blocks (%d bytes), %d skipped", exported, out.Len(), len(skipped))
	return out.String(), skipped, nil
}

func readText(path string) (string, error) {
	// #nosec G304 -- paths come from a scan of the project root
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !isText(data) {
		return "", ErrNotText
	}
	return string(data), nil
}

func isText(data []byte) bool {
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return false
	}
	return utf8.Valid(data)
}

// WriteFile writes blob to path, replacing any existing file.
func WriteFile(path, blob string) error {
	if blob == "" {
		return ErrNoSelection
	}
	if err := os.WriteFile(path, []byte(blob), 0o644); err != nil { //nolint:gosec // the export is meant to be readable
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Printf("export: wrote %s", path)
	return nil
}
