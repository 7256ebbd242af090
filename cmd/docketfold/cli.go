package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/docketfold/docketfold/internal/config"
	"github.com/docketfold/docketfold/internal/errors"
	"github.com/docketfold/docketfold/internal/naming"
	"github.com/docketfold/docketfold/internal/ops"
	"github.com/docketfold/docketfold/internal/ui"
)

// newApp creates the CLI application with all commands.
func newApp() *cli.App {
	app := &cli.App{
		Name:    "docketfold",
		Usage:   "Normalize, dedupe, and index legal case folders",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-color", Usage: "Disable colored output"},
			&cli.StringFlag{Name: "config", Usage: "Explicit path to " + config.ConfigFileName},
		},
		Before: func(c *cli.Context) error {
			ui.Init(c.Bool("no-color"))
			return nil
		},
		Commands: []*cli.Command{
			runCmd(),
			listCmd(),
			nameCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// loadConfig resolves configuration for a command: explicit --config path,
// else the nearest .docketfold.json above the working directory, overlaid
// with per-command root flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path := c.String("config"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		var wd string
		wd, err = os.Getwd()
		if err == nil {
			cfg, err = config.Load(wd)
		}
	}
	if err != nil {
		return nil, err
	}

	if root := c.String("cases-root"); root != "" {
		cfg.CasesRoot = root
	}
	if root := c.String("content-root"); root != "" {
		cfg.ContentRoot = root
	}
	return cfg, nil
}

// runCmd creates the run command.
func runCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Repair case folders: canonical layout, normalized filings, fresh manifests",
		ArgsUsage: "[slug...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "cases-root", Usage: "Directory holding one folder per case"},
			&cli.StringFlag{Name: "content-root", Usage: "Directory holding per-case content pages"},
			&cli.BoolFlag{Name: "fail-fast", Usage: "Abort on the first case failure"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			ui.Logger.Debug("starting run",
				"cases_root", cfg.CasesRoot, "content_root", cfg.ContentRoot)

			result, err := ops.Run(cfg, ops.RunInput{
				Slugs:    c.Args().Slice(),
				Now:      time.Now(),
				FailFast: c.Bool("fail-fast"),
			})
			if err != nil {
				return err
			}

			ui.RunHeader(result.RunID)
			for _, warning := range result.Warnings {
				ui.Warn(warning)
			}
			for _, report := range result.Reports {
				for _, warning := range report.Warnings {
					ui.Warn(warning)
				}
				ui.CaseLine(report.Summary())
			}
			for _, failure := range result.Failures {
				ui.FailLine(failure.Slug, failure.Err)
			}
			if result.Failed() {
				return fmt.Errorf("%d of %d case(s) failed", len(result.Failures),
					len(result.Failures)+len(result.Reports))
			}
			return nil
		},
	}
}

// listCmd creates the list command.
func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List discovered case folders and their filing counts",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "cases-root", Usage: "Directory holding one folder per case"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			slugs, err := ops.DiscoverCases(cfg.CasesRoot)
			if err != nil {
				return err
			}
			for _, slug := range slugs {
				count := 0
				entries, err := os.ReadDir(filepath.Join(cfg.CasesRoot, slug, ops.FilingsDir))
				if err == nil {
					count = len(entries)
				}
				fmt.Fprintf(c.App.Writer, "%s  (%d filings)\n", slug, count)
			}
			return nil
		},
	}
}

// nameCmd creates the name command, a dry helper that shows what the
// normalizer would do without touching disk.
func nameCmd() *cli.Command {
	return &cli.Command{
		Name:      "name",
		Usage:     "Print the canonical filename for each argument",
		ArgsUsage: "<filename...>",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.NewInvalidRequest("name requires at least one filename")
			}
			for _, arg := range c.Args().Slice() {
				fmt.Fprintln(c.App.Writer, naming.CanonicalFilename(filepath.Base(arg)))
			}
			return nil
		},
	}
}
