package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bounded/pkg/trig"
)

var trigFuncs = map[string]func(degrees float64, terms uint) float64{
	"sin": trig.Sin,
	"cos": trig.Cos,
	"tan": trig.Tan,
	"cot": trig.Cot,
}

// trigResult is the JSON shape of the trig command. Value is a string so
// that +Inf survives encoding.
type trigResult struct {
	Func    string  `json:"func"`
	Degrees float64 `json:"degrees"`
	Terms   uint    `json:"terms"`
	Value   string  `json:"value"`
}

func newTrigCmd(a *app) *cobra.Command {
	var terms uint

	cmd := &cobra.Command{
		Use:       "trig <sin|cos|tan|cot> <degrees>",
		Short:     "Evaluate a Taylor-series trigonometric function",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"sin", "cos", "tan", "cot"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := trigFuncs[args[0]]
			if !ok {
				return userError(fmt.Errorf("unknown function %q (want sin, cos, tan or cot)", args[0]))
			}
			degrees, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return userError(fmt.Errorf("invalid degrees %q: %w", args[1], err))
			}
			if !cmd.Flags().Changed("terms") {
				terms = uint(a.cfg.Terms)
			}

			res := trigResult{
				Func:    args[0],
				Degrees: degrees,
				Terms:   terms,
				Value:   formatFloat(fn(degrees, terms)),
			}
			return a.emit(cmd, res, func(w io.Writer) {
				fmt.Fprintln(w, res.Value)
			})
		},
	}

	cmd.Flags().UintVar(&terms, "terms", 0, "series terms (default: config terms)")
	return cmd
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
