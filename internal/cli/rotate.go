package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bounded/pkg/rotate"
)

// rotateResult is the JSON shape of the rotate command.
type rotateResult struct {
	X string  `json:"x"`
	Y string  `json:"y"`
	Z *string `json:"z,omitempty"`
}

func newRotateCmd(a *app) *cobra.Command {
	var z, pz float64

	cmd := &cobra.Command{
		Use:   "rotate <x> <y> <px> <py> <degrees>",
		Short: "Rotate a point about a pivot in the XY plane",
		Long:  "rotate turns (x, y) counter-clockwise about (px, py). With --z the point is\nthree-dimensional and Z is carried through unchanged.",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums := make([]float64, len(args))
			for i, arg := range args {
				f, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return userError(fmt.Errorf("invalid number %q: %w", arg, err))
				}
				nums[i] = f
			}
			degrees := nums[4]

			var res rotateResult
			if cmd.Flags().Changed("z") {
				p := rotate.Rotate3D(
					rotate.Point3D{X: nums[0], Y: nums[1], Z: z},
					rotate.Point3D{X: nums[2], Y: nums[3], Z: pz},
					degrees)
				zs := formatFloat(p.Z)
				res = rotateResult{X: formatFloat(p.X), Y: formatFloat(p.Y), Z: &zs}
			} else {
				p := rotate.Rotate2D(
					rotate.Point2D{X: nums[0], Y: nums[1]},
					rotate.Point2D{X: nums[2], Y: nums[3]},
					degrees)
				res = rotateResult{X: formatFloat(p.X), Y: formatFloat(p.Y)}
			}

			return a.emit(cmd, res, func(w io.Writer) {
				if res.Z != nil {
					fmt.Fprintf(w, "%s %s %s\n", res.X, res.Y, *res.Z)
					return
				}
				fmt.Fprintf(w, "%s %s\n", res.X, res.Y)
			})
		},
	}

	cmd.Flags().Float64Var(&z, "z", 0, "z coordinate of the point")
	cmd.Flags().Float64Var(&pz, "pz", 0, "z coordinate of the pivot")
	return cmd
}
