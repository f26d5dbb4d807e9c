// Package commands contains the CLI command definitions.
package commands

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/soypat/foil"
	"github.com/soypat/foil/internal/prompts"
	"github.com/soypat/foil/render"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	code           string
	normal         string
	chord          float64
	chordSet       bool
	points         int
	output         string
	plotPath       string
	noShow         bool
	noSavePlot     bool
	nonInteractive bool
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "foilgen [code]",
		Short: "Generate NACA 4-digit airfoil coordinates",
		Long: `Generate the surface coordinates of a NACA 4-digit airfoil, export
them as x y z rows to a text file, and save a plot of the section.
The 2D profile is embedded in the coordinate plane normal to the
chosen axis; that axis is held at zero.

Missing inputs (code, normal axis, chord) are prompted for unless
--non-interactive is set.`,
		Example: `  # Interactive mode
  foilgen

  # Non-interactive
  foilgen 2412 --normal Z --chord 1.5 --output wing --no-show`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.code = args[0]
			}
			opts.chordSet = cmd.Flags().Changed("chord")
			return runGenerate(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.normal, "normal", "n", "", "Axis the profile is normal to (X, Y or Z); that output column is zero")
	cmd.Flags().Float64VarP(&opts.chord, "chord", "c", 1.0, "Chord length used to scale the profile")
	cmd.Flags().IntVarP(&opts.points, "points", "p", 50, "Total number of output points (combined upper+lower surface)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "naca_airfoil", "Output base filename; coordinates go to <output>.txt")
	cmd.Flags().StringVar(&opts.plotPath, "plot", "", "Plot PNG filename (default <output>.png)")
	cmd.Flags().BoolVar(&opts.noShow, "no-show", false, "Do not open the saved plot in the image viewer")
	cmd.Flags().BoolVar(&opts.noSavePlot, "no-save-plot", false, "Do not save the plot PNG next to the coordinates")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Fail on missing inputs instead of prompting")

	return cmd
}

func runGenerate(opts *generateOptions) error {
	if opts.nonInteractive {
		if opts.code == "" || opts.normal == "" {
			return errors.New("non-interactive mode requires a code argument and --normal")
		}
	} else if opts.code == "" || opts.normal == "" || !opts.chordSet {
		chordStr := ""
		if opts.chordSet {
			chordStr = strconv.FormatFloat(opts.chord, 'g', -1, 64)
		}
		if err := prompts.RunGenerateForm(&opts.code, &opts.normal, &chordStr); err != nil {
			return err
		}
		if chordStr = strings.TrimSpace(chordStr); chordStr != "" {
			chord, err := strconv.ParseFloat(chordStr, 64)
			if err != nil {
				return fmt.Errorf("invalid chord length %q", chordStr)
			}
			opts.chord = chord
		}
	}

	naca, err := foil.ParseNACA4(strings.TrimSpace(opts.code))
	if err != nil {
		return err
	}
	axis, err := foil.ParseAxis(strings.TrimSpace(opts.normal))
	if err != nil {
		return err
	}
	stations := stationsPerSurface(opts.points)
	contour, err := foil.Contour(naca, opts.chord, stations)
	if err != nil {
		return err
	}
	points, err := foil.Embed(contour, axis)
	if err != nil {
		return err
	}
	if err := foil.Validate(points); err != nil {
		return err
	}

	txtPath := opts.output + ".txt"
	if err := render.CreateXYZ(txtPath, points); err != nil {
		return fmt.Errorf("failed to write coordinates: %w", err)
	}

	fields := []prompts.ResultField{
		{Label: "Profile", Value: fmt.Sprintf("%v (m=%.2f p=%.2f t=%.2f)", naca, naca.M, naca.P, naca.T)},
		{Label: "Normal axis", Value: axis.String()},
		{Label: "Chord", Value: strconv.FormatFloat(opts.chord, 'g', -1, 64)},
		{Label: "Points", Value: fmt.Sprintf("%d (%d stations per surface)", len(points), stations)},
		{Label: "Coordinates", Value: txtPath},
	}

	// Plot failures warn and continue; the coordinate file is already
	// on disk and is the primary output.
	if !opts.noSavePlot {
		pngPath := opts.plotPath
		if pngPath == "" {
			pngPath = opts.output + ".png"
		}
		p, err := render.Plot(contour, naca.String(), opts.chord)
		if err == nil {
			err = render.CreatePNG(pngPath, p)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: plotting failed: %v\n", err)
		} else {
			fields = append(fields, prompts.ResultField{Label: "Plot", Value: pngPath})
			if !opts.noShow {
				if err := openViewer(pngPath); err != nil {
					fmt.Fprintf(os.Stderr, "warning: could not open %s: %v\n", pngPath, err)
				}
			}
		}
	}

	prompts.PrintResult(fields, fmt.Sprintf("Saved %d points to %s", len(points), txtPath))
	return nil
}

// stationsPerSurface maps the requested total output point count to
// cosine stations per surface. The combined contour drops the shared
// leading-edge point, so it holds 2n-1 points for n stations.
func stationsPerSurface(total int) int {
	n := (total + 2) / 2
	if n < 3 {
		n = 3
	}
	return n
}
