package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sha1gen/sha1gen/directive/literal"
	"github.com/sha1gen/sha1gen/directive/scanner"
	"github.com/sha1gen/sha1gen/internal/cli/config"
	"github.com/sha1gen/sha1gen/internal/cli/ui"
	"github.com/sha1gen/sha1gen/sha1"
)

// NewHashCommand creates the hash command
func NewHashCommand() *cobra.Command {
	var (
		encoding string
		useStdin bool
	)

	cmd := &cobra.Command{
		Use:   "hash [literal]",
		Short: "Compute the SHA-1 digest of a literal",
		Long: `Compute the SHA-1 digest of a single literal argument and print it.

The argument uses the same forms as directives: "...", ` + "`...`" + `, or
b"...". Remember your shell's own quoting:

  sha1gen hash '"this is a test"'
  sha1gen hash --encoding base64 '"this is a test"'
  sha1gen hash 'b"\x01\x02\x03"' --encoding bytes
  cat blob.bin | sha1gen hash --stdin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if encoding == "" {
				encoding = cfg.Hash.Encoding
			}
			enc, err := scanner.ParseEncoding(encoding)
			if err != nil {
				if similar := ui.FindSimilar(encoding, []string{"hex", "base64", "bytes"}); len(similar) > 0 {
					return fmt.Errorf("%v, did you mean %q?", err, similar[0])
				}
				return err
			}

			var data []byte
			switch {
			case useStdin:
				if len(args) != 0 {
					return fmt.Errorf("--stdin and a literal argument are mutually exclusive")
				}
				data, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
			case len(args) == 1:
				val, perr := literal.Parse(args[0], "<arg>", 1, 1)
				if perr != nil {
					return perr
				}
				data = val.Data
			default:
				return fmt.Errorf(`expected a string or byte literal argument ("...", ` + "`...`" + `, or b"...") or --stdin`)
			}

			sum := sha1.Sum(data)
			out := cmd.OutOrStdout()

			switch enc {
			case scanner.EncodingHex:
				fmt.Fprintln(out, sha1.EncodeHex(sum))
			case scanner.EncodingBase64:
				fmt.Fprintln(out, sha1.EncodeBase64(sum))
			case scanner.EncodingBytes:
				fmt.Fprintf(out, "[%d]byte{%s}\n", sha1.Size, formatBytes(sum))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&encoding, "encoding", "e", "", "output encoding: hex, base64, or bytes (default from config, hex)")
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "hash raw bytes from stdin instead of a literal argument")

	return cmd
}

func formatBytes(sum [sha1.Size]byte) string {
	parts := make([]string, len(sum))
	for i, b := range sum {
		parts[i] = fmt.Sprintf("0x%02x", b)
	}
	return strings.Join(parts, ", ")
}
