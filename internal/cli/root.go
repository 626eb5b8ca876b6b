package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/mdview/internal/config"
	"github.com/mithrel/mdview/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// Execute is the entrypoint: it builds the root cobra.Command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
// The root itself is the viewer; subcommands cover config generation,
// completions, and the hidden cleanup child.
func NewRootCmd() *cobra.Command {
	var cfgPath string
	var opts viewOptions

	cmd := &cobra.Command{
		Use:           "mdview [flags] <file.md> [file.md ...]",
		Short:         "View Markdown files as HTML in the browser or a native window",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config with Viper.
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			// Wire up the app and stash it in context for subcommands.
			app, err := wire.BuildApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), appKey, app)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (toml)")
	cmd.Flags().BoolVarP(&opts.gui, "gui", "g", false, "display in a native window instead of the browser")
	cmd.Flags().BoolVarP(&opts.keep, "keep", "k", false, "keep the generated HTML file(s) in the current directory")
	cmd.Flags().BoolVarP(&opts.readme, "readme", "r", false, "show the built-in documentation")
	cmd.Flags().BoolVarP(&opts.tty, "tty", "t", false, "render to the terminal instead of generating HTML")
	cmd.Flags().StringVar(&opts.style, "style", "", "terminal style for --tty (auto, dark, light, notty, ...)")

	cmd.AddCommand(newSweepCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}
