package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rutkit/pkg/rut"
	"github.com/dmitrymomot/rutkit/pkg/validator"
)

type parseRecord struct {
	Input string `json:"input" yaml:"input"`
	Valid bool   `json:"valid" yaml:"valid"`
	Bare  string `json:"bare,omitempty" yaml:"bare,omitempty"`
	Dash  string `json:"dash,omitempty" yaml:"dash,omitempty"`
	Dots  string `json:"dots,omitempty" yaml:"dots,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func parseAll(inputs []string) []parseRecord {
	records := make([]parseRecord, 0, len(inputs))
	for _, input := range inputs {
		rec := parseRecord{Input: input}
		if r, err := rut.Parse(input); err != nil {
			rec.Error = err.Error()
		} else {
			rec.Valid = true
			rec.Bare, rec.Dash, rec.Dots = r.Format(rut.Bare), r.Format(rut.Dash), r.Format(rut.Dots)
		}
		records = append(records, rec)
	}
	return records
}

// newParseCommand constructs the `parse` command.
func newParseCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "parse <rut>...",
		Short: "Parse RUTs and print every notation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.Apply(validator.InList("output", output, outputs)); err != nil {
				return err
			}
			records := parseAll(args)
			if output != outputText {
				return encode(cmd.OutOrStdout(), output, records)
			}
			w := cmd.OutOrStdout()
			for _, rec := range records {
				if rec.Valid {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.Input, rec.Bare, rec.Dash, rec.Dots)
				} else {
					fmt.Fprintf(w, "%s\terror: %s\n", rec.Input, rec.Error)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output: text|json|yaml")
	return cmd
}

// newFormatCommand constructs the `format` command.
func newFormatCommand() *cobra.Command {
	var notation string
	cmd := &cobra.Command{
		Use:   "format <rut>...",
		Short: "Render RUTs in one notation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.Apply(validator.ValidNotation("notation", notation)); err != nil {
				return err
			}
			n, _ := rut.ParseNotation(notation)

			failed := false
			for _, input := range args {
				r, err := rut.Parse(input)
				if err != nil {
					failed = true
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", input, err)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), r.Format(n))
			}
			if failed {
				return ErrInvalidInput
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&notation, "notation", "n", rut.Dots.String(), "Notation: bare|dash|dots")
	return cmd
}

// newValidateCommand constructs the `validate` command.
func newValidateCommand() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "validate <rut>...",
		Short: "Check RUTs; exits 1 if any is invalid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, rec := range parseAll(args) {
				if !rec.Valid {
					invalid++
				}
				if quiet {
					continue
				}
				if rec.Valid {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", rec.Input)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: invalid (%s)\n", rec.Input, rec.Error)
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidInput, invalid, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print nothing; report through the exit status only")
	return cmd
}
