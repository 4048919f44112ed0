package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chmouel/lazycollect/internal/log"
)

// CopyTree copies the selected files under target, keeping their paths
// relative to root. It returns how many files were copied and one *SkipError
// per file that failed. Nothing to copy yields ErrNoSelection.
func CopyTree(root string, paths []string, target string) (int, []error, error) {
	if len(paths) == 0 {
		return 0, nil, ErrNoSelection
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return 0, nil, err
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return 0, nil, err
	}
	if SameDir(absRoot, absTarget) {
		return 0, nil, fmt.Errorf("export directory %s is the project root", target)
	}
	if err := os.MkdirAll(absTarget, 0o750); err != nil {
		return 0, nil, fmt.Errorf("create %s: %w", target, err)
	}

	var (
		copied  int
		skipped []error
	)
	for _, rel := range paths {
		src := filepath.Join(absRoot, filepath.FromSlash(rel))
		dst := filepath.Join(absTarget, filepath.FromSlash(rel))
		if err := copyFile(src, dst); err != nil {
			log.Printf("export: skipping %s: %v", rel, err)
			skipped = append(skipped, &SkipError{Path: rel, Err: err})
			continue
		}
		copied++
	}

	if copied == 0 {
		return 0, skipped, ErrNoSelection
	}
	log.Printf("export: copied %d files to %s, %d skipped", copied, absTarget, len(skipped))
	return copied, skipped, nil
}

// errSameFile guards against truncating a source through a target that
// aliases the project, such as a symlink into it.
var errSameFile = errors.New("target is the source file")

// SameDir reports whether a and b name the same directory once symlinks are
// resolved. Missing trailing components are compared as written.
func SameDir(a, b string) bool {
	ra, rb := resolvePath(a), resolvePath(b)
	if ra == rb {
		return true
	}
	ia, errA := os.Stat(ra)
	ib, errB := os.Stat(rb)
	return errA == nil && errB == nil && os.SameFile(ia, ib)
}

// resolvePath evaluates symlinks in the longest existing prefix of path.
func resolvePath(path string) string {
	path = filepath.Clean(path)
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	parent := filepath.Dir(path)
	if parent == path {
		return path
	}
	return filepath.Join(resolvePath(parent), filepath.Base(path))
}

func copyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return errSameFile
	}

	// #nosec G304 -- src comes from a scan of the project root
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}
	out, err := os.Create(dst) // #nosec G304
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
