package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

const wrongArgsMessage = "Incorrect number of arguments. Please provide a file to read from"

// RunFunc analyzes the log file at path.
type RunFunc func(ctx context.Context, path string) error

// NewRootCommand builds the analyzer command. It takes exactly one positional
// argument; any other count prints usage and succeeds without calling run.
func NewRootCommand(run RunFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "analyzer <file>",
		Short: "Summarize an access log by day and status class",
		Long: `Reads an access log in a single pass and prints, per day and overall,
the number of requests in each status class (2xx, 3xx, 4xx, 5xx) and the
error rate (4xx + 5xx over all requests).

Gzip-compressed logs are decompressed transparently.

Example:
  analyzer /var/log/nginx/access.log`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, wrongArgsMessage)
				fmt.Fprintf(out, "Usage: %s\n", cmd.UseLine())
				return nil
			}
			return run(cmd.Context(), args[0])
		},
	}
}
