// Package commands implements the sha1gen command line interface.
package commands

import (
	stderrors "errors"
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sha1gen/sha1gen/directive/errors"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sha1gen",
		Short: "Precompute SHA-1 digests as Go source constants",
		Long: color.CyanString(`sha1gen - build-time SHA-1 literals for Go

sha1gen scans Go source for //sha1: directives and generates files whose
constants hold the precomputed digests, so the hashes exist as plain
source-level literals with no runtime hashing.

Directive forms:
  //sha1:hex    ConfigHash "this is a test"
  //sha1:base64 TokenHash  ` + "`raw bytes`" + `
  //sha1:bytes  BlobDigest b"\x01\x02\x03"

Wire it up with go:generate:
  //go:generate sha1gen generate`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewGenerateCommand())
	rootCmd.AddCommand(NewHashCommand())
	rootCmd.AddCommand(NewAddCommand())
	rootCmd.AddCommand(NewWatchCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the sha1gen version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			// Set GoVersion to actual runtime if not set at build time
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)

			titleColor.Print("sha1gen version: ")
			valueColor.Println(Version)

			titleColor.Print("Git commit: ")
			valueColor.Println(GitCommit)

			titleColor.Print("Build date: ")
			valueColor.Println(BuildDate)

			titleColor.Print("Go version: ")
			valueColor.Println(goVer)
		},
	}
}

// Execute runs the root command. Positional directive errors get the
// file:line:col terminal rendering; everything else gets a plain red line.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		var derr errors.DirectiveError
		if stderrors.As(err, &derr) {
			fmt.Fprint(rootCmd.ErrOrStderr(), derr.FormatForTerminal())
		} else {
			errorColor := color.New(color.FgRed, color.Bold)
			errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return err
	}
	return nil
}
