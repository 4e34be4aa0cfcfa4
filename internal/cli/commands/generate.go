package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sha1gen/sha1gen/internal/cli/config"
	"github.com/sha1gen/sha1gen/internal/cli/ui"
	"github.com/sha1gen/sha1gen/internal/generator"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	var (
		check   bool
		verbose bool
		suffix  string
	)

	cmd := &cobra.Command{
		Use:     "generate [paths...]",
		Aliases: []string{"g"},
		Short:   "Scan for //sha1: directives and write generated files",
		Long: `Scan Go source for //sha1: directives and write the generated files
containing the precomputed digest constants.

Each source file with directives gets a sibling generated file
(app.go -> app_sha1gen.go). Paths default to generate.paths from
sha1gen.yml, or the current directory.

Directive forms:
  //sha1:hex    ConfigHash "this is a test"
  //sha1:base64 TokenHash  ` + "`raw bytes`" + `
  //sha1:bytes  BlobDigest b"\x01\x02\x03"

Examples:
  sha1gen generate
  sha1gen generate ./internal ./cmd
  sha1gen generate --check   # CI: fail if generated files are stale`,
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

			result, err := generator.Run(paths, generator.Options{
				Suffix: suffix,
				Check:  check,
				Logger: logger,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if check {
				if len(result.Stale) > 0 {
					ui.WriteError(out, ui.ErrorOptions{
						Level:        ui.ErrorLevelError,
						Context:      "STALE GENERATED FILES",
						Problem:      fmt.Sprintf("%d generated file(s) are out of date: %v", len(result.Stale), result.Stale),
						HelpCommands: []string{"Regenerate: sha1gen generate"},
					})
					return fmt.Errorf("%d generated file(s) out of date", len(result.Stale))
				}
				ui.WriteSuccess(out, fmt.Sprintf("%d directive(s), all generated files up to date", result.Directives), false)
				return nil
			}

			if result.Directives == 0 {
				fmt.Fprint(out, ui.FormatError(ui.ErrorOptions{
					Level:   ui.ErrorLevelWarning,
					Problem: "no //sha1: directives found",
				}))
				return nil
			}

			ui.WriteSuccess(out, fmt.Sprintf("%d directive(s): wrote %d file(s), %d unchanged",
				result.Directives, len(result.Written), len(result.Unchanged)), false)
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "verify generated files are up to date without writing")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log scanned files and written output")
	cmd.Flags().StringVar(&suffix, "suffix", "", "generated file suffix (default from config, _sha1gen)")

	return cmd
}
