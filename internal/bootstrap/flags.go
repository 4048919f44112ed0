// Package bootstrap wires the lazycollect command line to the UI and the
// headless exporter.
package bootstrap

import (
	urfavecli "github.com/urfave/cli/v3"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via Command.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "Project directory to scan (default: current directory)",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI theme",
		},
		&urfavecli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file name, relative to the project directory",
		},
		&urfavecli.BoolFlag{
			Name:  "no-icons",
			Usage: "Disable file icons",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=key=value",
		},
	}
}

func exportFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.BoolFlag{
			Name:    "copy",
			Aliases: []string{"c"},
			Usage:   "Copy the result to the clipboard instead of writing the output file",
		},
		&urfavecli.BoolFlag{
			Name:  "stdout",
			Usage: "Print the result instead of writing the output file",
		},
		&urfavecli.StringSliceFlag{
			Name:  "category",
			Usage: "Only export these categories (repeatable)",
		},
	}
}
