package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sha1gen/sha1gen/internal/cli/config"
	"github.com/sha1gen/sha1gen/internal/cli/ui"
	"github.com/sha1gen/sha1gen/internal/generator"
	"github.com/sha1gen/sha1gen/internal/watch"
)

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	var (
		verbose bool
		suffix  string
	)

	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Regenerate digest constants when source files change",
		Long: `Watch Go source trees and rerun generation whenever a Go file
changes, keeping generated digest constants up to date during development.

Examples:
  sha1gen watch
  sha1gen watch ./internal --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			paths := args
			if len(paths) == 0 {
				paths = cfg.Generate.Paths
			}
			if suffix == "" {
				suffix = cfg.Generate.Suffix
			}

			logger := zap.NewNop()
			if verbose {
				logger, err = zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("failed to create logger: %w", err)
				}
				defer logger.Sync()
			}

			out := cmd.OutOrStdout()
			regenerate := func() {
				result, err := generator.Run(paths, generator.Options{
					Suffix: suffix,
					Logger: logger,
				})
				if err != nil {
					ui.WriteError(out, ui.ErrorOptions{
						Level:   ui.ErrorLevelError,
						Context: "GENERATE FAILED",
						Problem: err.Error(),
					})
					return
				}
				if len(result.Written) > 0 {
					ui.WriteSuccess(out, fmt.Sprintf("regenerated %d file(s)", len(result.Written)), false)
				}
			}

			// Initial pass before watching.
			regenerate()

			w, err := watch.New(paths, suffix, logger, func(files []string) error {
				logger.Debug("source changed", zap.Strings("files", files))
				regenerate()
				return nil
			})
			if err != nil {
				return err
			}
			w.Start()
			defer w.Stop()

			fmt.Fprint(out, ui.Info(fmt.Sprintf("watching %v for changes (Ctrl+C to stop)", paths), false))

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log watched directories and events")
	cmd.Flags().StringVar(&suffix, "suffix", "", "generated file suffix (default from config, _sha1gen)")

	return cmd
}
