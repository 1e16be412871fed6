package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/seqscan/internal/sequence"
)

// NewParseCommand creates the parse command, which exercises the
// Pattern Parser standalone against a user-supplied pattern string.
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <pattern>",
		Short: "Parse a sequence pattern into prefix/padding/suffix",
		Long: `Parse recognizes the pattern forms "name.###.ext",
"name.@@@.ext", "name.%04d.ext", and "name.0001.ext" (optionally
"name.-0001.ext" with --negative), printing the recovered prefix,
padding width, strict-padding flag, and suffix.`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}

	cmd.Flags().Bool("negative", false, "Accept a signed frame-literal form (e.g. name.-0001.ext)")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	negative, _ := cmd.Flags().GetBool("negative")

	pp, err := sequence.ParsePattern(args[0], sequence.ParsePatternOptions{Negative: negative})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "prefix:  %q\n", pp.Prefix)
	fmt.Fprintf(out, "padding: %d\n", pp.Padding)
	fmt.Fprintf(out, "strict:  %v\n", pp.StrictPadding)
	fmt.Fprintf(out, "suffix:  %q\n", pp.Suffix)
	return nil
}
