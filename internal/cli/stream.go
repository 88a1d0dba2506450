package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rutkit/pkg/rutfn"
)

// newStreamCommand constructs the `stream` command.
func newStreamCommand(a *app) *cobra.Command {
	var (
		opName     string
		jsonLines  bool
		skipErrors bool
	)
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Apply an operation to every line of stdin",
		Long: "Reads one value per line from stdin and writes one result per line to stdout.\n" +
			"Operations: " + strings.Join(rutfn.Operations(), ", ") + ".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			op, err := rutfn.Lookup(opName)
			if err != nil {
				return err
			}
			opts := []rutfn.Option{rutfn.WithLogger(a.log)}
			if jsonLines {
				opts = append(opts, rutfn.WithJSONLines())
			}
			if skipErrors {
				opts = append(opts, rutfn.WithSkipErrors())
			}
			_, err = rutfn.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), op, opts...)
			return err
		},
	}
	cmd.Flags().StringVar(&opName, "op", "dots", "Operation: "+strings.Join(rutfn.Operations(), "|"))
	cmd.Flags().BoolVar(&jsonLines, "json", false, "Read and write JSON strings, one per line")
	cmd.Flags().BoolVar(&skipErrors, "skip-errors", false, "Drop values a map operation cannot transform")
	return cmd
}
