package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bounded/pkg/vector"
)

type vecOptions struct {
	add    int
	slice  string
	resize int
}

// vecResult is the JSON shape of the vec command.
type vecResult struct {
	Values []int `json:"values"`
	Len    int   `json:"len"`
	Cap    int   `json:"cap"`
}

func newVecCmd(a *app) *cobra.Command {
	var opts vecOptions

	cmd := &cobra.Command{
		Use:   "vec [flags] <ints...>",
		Short: "Build a bounded integer vector and transform it",
		Long: "vec copies the arguments into a vector of the configured capacity, dropping\n" +
			"values past capacity, then applies --add, --slice and --resize in that order.",
		Example: "  boundctl vec --capacity 8 --add 1 18 12 0 9 3\n" +
			"  boundctl vec --slice 1:3 --resize 16 5 6 7 8",
		RunE: func(cmd *cobra.Command, args []string) error {
			return guard(func() error {
				return a.runVec(cmd, opts, args)
			})
		},
	}

	cmd.Flags().IntVar(&opts.add, "add", 0, "add n to every element in place")
	cmd.Flags().StringVar(&opts.slice, "slice", "", "keep elements in [a, b), given as a:b")
	cmd.Flags().IntVar(&opts.resize, "resize", 0, "copy into a vector with capacity n")
	return cmd
}

func (a *app) runVec(cmd *cobra.Command, opts vecOptions, args []string) error {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return userError(fmt.Errorf("invalid element %q: %w", arg, err))
		}
		values = append(values, n)
	}

	v := vector.FromSlice(a.cfg.Capacity, values)
	if opts.add != 0 {
		for i, x := range v.All() {
			v.Set(i, x+opts.add)
		}
	}
	if opts.slice != "" {
		start, end, err := parseSliceFlag(opts.slice)
		if err != nil {
			return userError(err)
		}
		v = v.Slice(start, end)
	}
	if cmd.Flags().Changed("resize") {
		v = v.Resize(opts.resize)
	}

	res := vecResult{Values: append([]int{}, v.AsSlice()...), Len: v.Len(), Cap: v.Cap()}
	return a.emit(cmd, res, func(w io.Writer) {
		fmt.Fprintf(w, "%v\nlen %d cap %d\n", v, res.Len, res.Cap)
	})
}

// parseSliceFlag parses "a:b".
func parseSliceFlag(s string) (int, int, error) {
	startArg, endArg, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("--slice %q: expected start:end", s)
	}
	return parseRange(startArg, endArg)
}
