package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	urfavecli "github.com/urfave/cli/v3"

	"github.com/chmouel/lazycollect/internal/config"
	"github.com/chmouel/lazycollect/internal/export"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = writer

	fn()

	_ = writer.Close()
	os.Stdout = orig

	out, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return string(out)
}

// captureStreams swaps the export output streams for buffers.
func captureStreams(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	origOut, origErr := stdout, stderr
	stdout, stderr = &out, &errOut
	t.Cleanup(func() { stdout, stderr = origOut, origErr })
	return &out, &errOut
}

func newProject(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := t.TempDir()
	files := map[string]string{
		"a.html":            "<h1>a</h1>\n",
		"b.css":             "body {}\n",
		"node_modules/x.js": "ignored\n",
		"c.py":              "print(1)\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestApplyThemeConfig(t *testing.T) {
	tests := []struct {
		name        string
		themeName   string
		want        string
		expectError bool
	}{
		{name: "valid theme", themeName: "dracula", want: "dracula"},
		{name: "valid theme uppercase", themeName: "NORD", want: "nord"},
		{name: "invalid theme", themeName: "nonexistent-theme", expectError: true},
		{name: "empty theme", themeName: "", want: config.DefaultConfig().Theme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			err := applyThemeConfig(cfg, tt.themeName)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Theme)
		})
	}
}

func TestApplyRootConfig(t *testing.T) {
	t.Run("defaults to working directory", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		cfg := config.DefaultConfig()
		require.NoError(t, applyRootConfig(cfg, ""))
		assert.Equal(t, wd, cfg.Root)
	})

	t.Run("explicit directory", func(t *testing.T) {
		dir := t.TempDir()
		cfg := config.DefaultConfig()
		require.NoError(t, applyRootConfig(cfg, dir))
		assert.Equal(t, dir, cfg.Root)
	})

	t.Run("missing directory", func(t *testing.T) {
		cfg := config.DefaultConfig()
		assert.Error(t, applyRootConfig(cfg, filepath.Join(t.TempDir(), "missing")))
	})

	t.Run("file instead of directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "f.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
		cfg := config.DefaultConfig()
		err := applyRootConfig(cfg, file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a directory")
	})
}

func TestLoadCLIConfigFlags(t *testing.T) {
	root := newProject(t)

	var cfg *config.AppConfig
	cmd := &urfavecli.Command{
		Name:  "lazycollect",
		Flags: globalFlags(),
		Action: func(_ context.Context, c *urfavecli.Command) error {
			var err error
			cfg, err = loadCLIConfig(c)
			return err
		},
	}
	err := cmd.Run(context.Background(), []string{
		"lazycollect", "-d", root, "-o", "bundle.txt", "--no-icons",
		"--config", "skip_hidden=true", "-t", "nord",
	})
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, "bundle.txt", cfg.OutputFilename)
	assert.Equal(t, filepath.Join(root, "bundle.txt"), cfg.OutputPath())
	assert.False(t, cfg.ShowIcons)
	assert.True(t, cfg.SkipHidden)
	assert.Equal(t, "nord", cfg.Theme)
}

func TestLoadCLIConfigRejectsBadOverride(t *testing.T) {
	root := newProject(t)

	cmd := &urfavecli.Command{
		Name:  "lazycollect",
		Flags: globalFlags(),
		Action: func(_ context.Context, c *urfavecli.Command) error {
			_, err := loadCLIConfig(c)
			return err
		},
	}
	err := cmd.Run(context.Background(), []string{"lazycollect", "-d", root, "--config", "nope=1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error applying config overrides")
}

func TestExportWritesOutputFile(t *testing.T) {
	root := newProject(t)
	_, errOut := captureStreams(t)

	require.NoError(t, Run(context.Background(), []string{"lazycollect", "--dir", root, "export"}))

	data, err := os.ReadFile(filepath.Join(root, "full_code.txt"))
	require.NoError(t, err)
	out := string(data)
	assert.Equal(t, 2, strings.Count(out, export.FileLabel))
	assert.Less(t, strings.Index(out, "FILE: a.html"), strings.Index(out, "FILE: b.css"))
	assert.NotContains(t, out, "node_modules")
	assert.Contains(t, errOut.String(), "Wrote 2 files")
}

func TestExportCategoryToStdout(t *testing.T) {
	root := newProject(t)
	out, _ := captureStreams(t)

	err := Run(context.Background(), []string{"lazycollect", "--dir", root, "export", "--stdout", "--category", "css"})
	require.NoError(t, err)

	assert.Equal(t, export.Block("b.css", "body {}\n"), out.String())
	assert.NoFileExists(t, filepath.Join(root, "full_code.txt"))
}

func TestExportUnknownCategory(t *testing.T) {
	root := newProject(t)
	captureStreams(t)

	err := Run(context.Background(), []string{"lazycollect", "--dir", root, "export", "--category", "rust"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "rust"`)
	assert.Contains(t, err.Error(), "HTML, CSS, JavaScript")
}

func TestExportEmptyProjectFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := t.TempDir()
	captureStreams(t)

	err := Run(context.Background(), []string{"lazycollect", "--dir", root, "export"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, export.ErrNoSelection))
	assert.NoFileExists(t, filepath.Join(root, "full_code.txt"))
}

func TestExportCopyAndStdoutExclusive(t *testing.T) {
	root := newProject(t)
	captureStreams(t)

	err := Run(context.Background(), []string{"lazycollect", "--dir", root, "export", "--copy", "--stdout"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestTUIRequiresTerminal(t *testing.T) {
	root := newProject(t)
	orig := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	err := Run(context.Background(), []string{"lazycollect", "--dir", root})
	assert.ErrorIs(t, err, errNotTerminal)
}

func TestVersionFlag(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, Run(context.Background(), []string{"lazycollect", "--version"}))
	})
	assert.Contains(t, out, "lazycollect version")
}
