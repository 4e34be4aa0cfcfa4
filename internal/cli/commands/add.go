package commands

import (
	"fmt"
	"go/token"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/sha1gen/sha1gen/directive/literal"
	"github.com/sha1gen/sha1gen/directive/scanner"
	"github.com/sha1gen/sha1gen/internal/cli/ui"
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	var (
		encoding string
		name     string
		lit      string
	)

	cmd := &cobra.Command{
		Use:   "add [file]",
		Short: "Append a //sha1: directive to a Go file",
		Long: `Append a well-formed //sha1: directive to a Go source file.

Missing pieces are prompted for interactively; flags allow scripted use.

Examples:
  sha1gen add hashes.go
  sha1gen add hashes.go --encoding hex --name ConfigHash --literal '"this is a test"'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) > 0 {
				file = args[0]
			} else {
				prompt := &survey.Input{Message: "Go file to add the directive to:"}
				if err := survey.AskOne(prompt, &file, survey.WithValidator(survey.Required)); err != nil {
					return err
				}
			}
			if !strings.HasSuffix(file, ".go") {
				return fmt.Errorf("%s is not a Go source file", file)
			}
			if _, err := os.Stat(file); err != nil {
				return fmt.Errorf("cannot open %s: %w", file, err)
			}

			if encoding == "" {
				prompt := &survey.Select{
					Message: "Digest encoding:",
					Options: []string{"hex", "base64", "bytes"},
					Default: "hex",
				}
				if err := survey.AskOne(prompt, &encoding); err != nil {
					return err
				}
			}
			if _, err := scanner.ParseEncoding(encoding); err != nil {
				if similar := ui.FindSimilar(encoding, []string{"hex", "base64", "bytes"}); len(similar) > 0 {
					return fmt.Errorf("%v, did you mean %q?", err, similar[0])
				}
				return err
			}

			if name == "" {
				prompt := &survey.Input{Message: "Constant name (Go identifier):"}
				if err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required)); err != nil {
					return err
				}
			}
			if !token.IsIdentifier(name) {
				return fmt.Errorf("%q is not a valid Go identifier", name)
			}

			if lit == "" {
				prompt := &survey.Input{
					Message: `Literal ("...", ` + "`...`" + `, or b"..."):`,
				}
				if err := survey.AskOne(prompt, &lit, survey.WithValidator(survey.Required)); err != nil {
					return err
				}
			}
			if _, err := literal.Parse(lit, file, 1, 1); err != nil {
				return err
			}

			f, err := os.OpenFile(file, os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("cannot open %s: %w", file, err)
			}
			defer f.Close()

			directive := fmt.Sprintf("\n//sha1:%s %s %s\n", encoding, name, lit)
			if _, err := f.WriteString(directive); err != nil {
				return fmt.Errorf("failed to write directive: %w", err)
			}

			out := cmd.OutOrStdout()
			ui.WriteSuccess(out, fmt.Sprintf("added //sha1:%s %s to %s", encoding, name, file), false)
			fmt.Fprint(out, ui.Info("run 'sha1gen generate' to produce the constant", false))
			return nil
		},
	}

	cmd.Flags().StringVarP(&encoding, "encoding", "e", "", "digest encoding: hex, base64, or bytes")
	cmd.Flags().StringVarP(&name, "name", "n", "", "constant name")
	cmd.Flags().StringVarP(&lit, "literal", "l", "", "literal to hash")

	return cmd
}
