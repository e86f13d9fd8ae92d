package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"exactgeo/src/analysis"
	"exactgeo/src/config"
	"exactgeo/src/math/geometry"
	"exactgeo/src/math/rational"
	"exactgeo/src/render"
)

var intersectFormat string

var intersectCmd = &cobra.Command{
	Use:   "intersect <a1,b1,c1> <a2,b2,c2>",
	Short: "Intersect two lines",
	Long: `Print the intersection point of two lines, or report that they have none.
Each line is given as its three coefficients separated by commas; every
coefficient is an integer or a fraction n/d. Put "--" before the lines when a
coefficient list starts with a minus sign.`,
	Example: `  exactgeo intersect 1,-1,-3 1,2,-5
  exactgeo intersect -- -1/2,1,0 1,1,-3`,
	Args: cobra.ExactArgs(2),
	RunE: runIntersect,
}

func init() {
	intersectCmd.Flags().StringVar(&intersectFormat, "format", config.FormatText, "Output format: text, json")
}

func runIntersect(cmd *cobra.Command, args []string) error {
	first, err := parseLine(args[0])
	if err != nil {
		return fmt.Errorf("first line: %w", err)
	}
	second, err := parseLine(args[1])
	if err != nil {
		return fmt.Errorf("second line: %w", err)
	}

	r, err := render.New(intersectFormat, false)
	if err != nil {
		return err
	}
	pair := analysis.New(logger).Pair(
		config.NamedLine{Name: first.String(), Line: first},
		config.NamedLine{Name: second.String(), Line: second},
	)
	return r.RenderPair(cmd.OutOrStdout(), pair)
}

// parseLine reads "a,b,c" into a line.
func parseLine(s string) (geometry.Line, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geometry.Line{}, fmt.Errorf("expected three comma-separated coefficients, got %q", s)
	}
	var coef [3]rational.Fraction
	for i, p := range parts {
		f, err := rational.Parse(p)
		if err != nil {
			return geometry.Line{}, err
		}
		coef[i] = f
	}
	return geometry.NewLine(coef[0], coef[1], coef[2]), nil
}
