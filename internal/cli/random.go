package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rutkit/pkg/rut"
	"github.com/dmitrymomot/rutkit/pkg/rutgen"
	"github.com/dmitrymomot/rutkit/pkg/validator"
)

const maxCount = 1_000_000

type randomOptions struct {
	min, max   uint32
	count      int
	unique     bool
	seed       uint64
	output     string
	notation   string
	maxAttempt int
}

type randomRecord struct {
	RUT       rut.RUT `json:"rut" yaml:"rut"`
	Formatted string  `json:"formatted" yaml:"formatted"`
}

func (o randomOptions) validate() error {
	return validator.Apply(
		validator.BodyInRange("min", o.min),
		validator.BodyInRange("max", o.max),
		validator.BodyOrder("min", o.min, o.max),
		validator.MinNum("count", o.count, 1),
		validator.MaxNum("count", o.count, maxCount),
		validator.InList("output", o.output, outputs),
		validator.ValidNotation("notation", o.notation),
		validator.MinNum("max-attempts", o.maxAttempt, 1),
	)
}

// newRandomCommand constructs the `random` command.
func newRandomCommand() *cobra.Command {
	o := randomOptions{}
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random RUTs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.validate(); err != nil {
				return err
			}
			n, _ := rut.ParseNotation(o.notation)

			next := o.source(cmd)
			records := make([]randomRecord, 0, o.count)
			for range o.count {
				r, err := next()
				if err != nil {
					return err
				}
				records = append(records, randomRecord{RUT: r, Formatted: r.Format(n)})
			}

			if o.output != outputText {
				return encode(cmd.OutOrStdout(), o.output, records)
			}
			for _, rec := range records {
				fmt.Fprintln(cmd.OutOrStdout(), rec.Formatted)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Uint32Var(&o.min, "min", rut.MinBody, "Smallest body")
	f.Uint32Var(&o.max, "max", rut.MaxBody, "Largest body")
	f.IntVarP(&o.count, "count", "c", 1, "How many RUTs to generate")
	f.BoolVarP(&o.unique, "unique", "u", false, "Never repeat a RUT within this run")
	f.Uint64Var(&o.seed, "seed", 0, "Seed for a reproducible sequence (0 = random)")
	f.StringVarP(&o.output, "output", "o", outputText, "Output: text|json|yaml")
	f.StringVarP(&o.notation, "notation", "n", rut.Dots.String(), "Notation: bare|dash|dots")
	f.IntVar(&o.maxAttempt, "max-attempts", rutgen.DefaultMaxAttempts, "Draws per RUT before giving up with --unique")
	return cmd
}

// source returns the draw function selected by the flags.
func (o randomOptions) source(cmd *cobra.Command) func() (rut.RUT, error) {
	var src rand.Source
	if o.seed != 0 {
		src = rand.NewPCG(o.seed, o.seed)
	}

	if o.unique {
		gen := rutgen.New(rutgen.NewMemoryStore(),
			rutgen.WithRange(o.min, o.max),
			rutgen.WithMaxAttempts(o.maxAttempt),
			rutgen.WithSource(src),
		)
		return func() (rut.RUT, error) { return gen.Next(cmd.Context()) }
	}

	if src != nil {
		gen := rut.NewGenerator(src)
		return func() (rut.RUT, error) { return gen.RandomInRange(o.min, o.max) }
	}
	return func() (rut.RUT, error) { return rut.RandomInRange(o.min, o.max) }
}
