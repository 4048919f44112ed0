package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/chmouel/lazycollect/internal/config"
	"github.com/chmouel/lazycollect/internal/export"
	"github.com/chmouel/lazycollect/internal/models"
	"github.com/chmouel/lazycollect/internal/scanner"
	"github.com/chmouel/lazycollect/internal/selection"
)

// Output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func exportCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "export",
		Usage: "Scan the project and export every matching file without the UI",
		Flags: exportFlags(),
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			defer closeLog()
			cfg, err := loadCLIConfig(cmd)
			if err != nil {
				return err
			}
			return runExport(ctx, cfg, exportOptions{
				copy:       cmd.Bool("copy"),
				stdout:     cmd.Bool("stdout"),
				categories: cmd.StringSlice("category"),
			})
		},
	}
}

type exportOptions struct {
	copy       bool
	stdout     bool
	categories []string
}

// runExport scans cfg.Root, selects everything (or only the requested
// categories) and sends the blob to the chosen sink.
func runExport(ctx context.Context, cfg *config.AppConfig, opts exportOptions) error {
	if opts.copy && opts.stdout {
		return errors.New("--copy and --stdout are mutually exclusive")
	}

	res, err := scanner.Scan(ctx, scanner.OptionsFromConfig(cfg))
	if err != nil {
		return fmt.Errorf("scan %s: %w", cfg.Root, err)
	}

	state := selection.New(res.Categories, res)
	if len(opts.categories) > 0 {
		names, err := resolveCategories(res.Categories, opts.categories)
		if err != nil {
			return err
		}
		state = selection.Update(state, selection.SetAll{Value: false})
		for _, name := range names {
			state = selection.Update(state, selection.SetCategory{Category: name, Value: true})
		}
	}

	paths := state.Selected()
	blob, skipped, err := export.Build(cfg.Root, paths)
	for _, skip := range skipped {
		fmt.Fprintf(stderr, "Skipped %v\n", skip)
	}
	if err != nil {
		return fmt.Errorf("no files selected: %w", err)
	}
	files := len(paths) - len(skipped)

	switch {
	case opts.stdout:
		_, err = io.WriteString(stdout, blob)
		return err
	case opts.copy:
		method, err := export.NewClipboard(os.Stderr).Copy(blob)
		if err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintf(stderr, "Copied %d files to the clipboard via %s\n", files, method)
		return nil
	default:
		target := cfg.OutputPath()
		if err := export.WriteFile(target, blob); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Wrote %d files to %s\n", files, target)
		return nil
	}
}

// resolveCategories maps the requested names onto configured categories,
// ignoring case.
func resolveCategories(categories []models.Category, requested []string) ([]string, error) {
	known := make([]string, 0, len(categories))
	names := make([]string, 0, len(requested))
	for _, want := range requested {
		found := ""
		for _, cat := range categories {
			if strings.EqualFold(cat.Name, strings.TrimSpace(want)) {
				found = cat.Name
				break
			}
		}
		if found == "" {
			for _, cat := range categories {
				known = append(known, cat.Name)
			}
			return nil, fmt.Errorf("unknown category %q (known: %s)", want, strings.Join(known, ", "))
		}
		names = append(names, found)
	}
	return names, nil
}
