// Package cli provides the tautui command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/steipete/tautui"
	"github.com/steipete/tautui/internal/cli/commands"
	"github.com/steipete/tautui/internal/config"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "tautui",
		Short: "TauTUI - terminal UI framework toolkit",
		Long: `tautui inspects the terminal and measures text the way the TauTUI
framework does: capability detection, visible width, truncation and wrapping
of ANSI-styled text.`,
		Version: tautui.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			if err := tautui.Configure(tautui.LogOptions{
				Level:    cfg.LogLevel,
				Format:   cfg.LogFormat,
				Output:   cmd.ErrOrStderr(),
				DebugLog: cfg.DebugLog,
			}); err != nil {
				return err
			}
			if cfg.File != "" {
				tautui.Logger().Debug("using config file", "path", cfg.File)
			}

			cmd.SetContext(config.WithConfig(cmd.Context(), cfg))
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return tautui.DisableDebugLog()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./tautui.yaml)")
	pf.String("log-level", "", "Log level (debug|info|warn|error)")
	pf.String("log-format", "", "Log format (text|json)")
	pf.String("debug-log", "", "Append debug logs to this file")
	pf.Bool("no-color", false, "Report no color support regardless of detection")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(tautui.Version))
	rootCmd.AddCommand(commands.NewCapsCommand())
	rootCmd.AddCommand(commands.NewWidthCommand())
	rootCmd.AddCommand(commands.NewStripCommand())
	rootCmd.AddCommand(commands.NewTruncateCommand())
	rootCmd.AddCommand(commands.NewWrapCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
