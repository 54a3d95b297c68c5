// Package cli implements the coordemo command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/coordinator/internal/demo"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/catalog"
)

type options struct {
	catalogPath  string
	messagePaths []string
	lang         string
	logLevel     string
	logPath      string
}

// RootCommand builds the coordemo command tree.
func RootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "coordemo",
		Short:        "coordemo drives sample coordinator flows",
		Long:         `coordemo attaches a home flow, presents nested foo flows and dismisses them, showing the presentation chain after each transition.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.logPath != "" {
				coordinator.SetLogPath(opts.logPath)
			}
			coordinator.SetLogOutput(cmd.ErrOrStderr())
			coordinator.SetRawLogLevel(opts.logLevel)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.catalogPath, "catalog", "", "screen catalog TOML file (default: built-in)")
	flags.StringSliceVar(&opts.messagePaths, "messages", nil, "go-i18n message files for screen titles")
	flags.StringVar(&opts.lang, "lang", "en", "language for screen titles")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logPath, "log-path", "", "also write logs to this file")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newSDLCmd(opts))

	return root
}

// Execute runs the command tree.
func Execute(ctx context.Context) error {
	defer coordinator.CloseLog()
	return RootCommand().ExecuteContext(ctx)
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the present/dismiss scenario headless",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			return demo.RunScenario(cmd.OutOrStdout(), cat)
		},
	}
}

func (o *options) loadCatalog() (*catalog.Catalog, error) {
	var (
		cat *catalog.Catalog
		err error
	)

	if o.catalogPath == "" {
		cat, err = demo.DefaultCatalog()
	} else {
		cat, err = catalog.Load(o.catalogPath)
	}
	if err != nil {
		return nil, err
	}

	if err := cat.LoadMessages(o.messagePaths...); err != nil {
		return nil, err
	}
	if err := cat.SetLanguage(o.lang); err != nil {
		return nil, err
	}

	coordinator.GetLogger().Debug("Loaded catalog",
		"groups", cat.Groups(),
		"language", cat.Language().String(),
	)
	return cat, nil
}
