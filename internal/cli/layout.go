package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tableplan/tableplan/pkg/chart"
	"github.com/tableplan/tableplan/pkg/pipeline"
)

// layoutCommand creates the layout command for computing seating layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		room    string
		noCache bool
	)
	opts := c.newOptions()

	cmd := &cobra.Command{
		Use:   "layout [chart.json]",
		Short: "Compute seat positions for a seating chart",
		Long: `Compute seat positions for a seating chart.

The layout command takes a chart.json file and computes every seat position,
the world bounds of the room, and a viewport transform that frames it. The
output is a layout.json file that can be rendered to SVG using the 'render'
command or fed to external tools.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Room = room
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVarP(&room, "room", "r", "", "room name within a multi-room document")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Layout flags
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "viewport width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "viewport height")
	cmd.Flags().Float64Var(&opts.Padding, "padding", opts.Padding, "fit-to-bounds padding")
	cmd.Flags().BoolVar(&opts.SnapGrid, "snap", opts.SnapGrid, "snap table positions to the grid")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")

	return cmd
}

// runLayout loads the chart, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	target, err := loadRoom(input, opts.Room)
	if err != nil {
		return fmt.Errorf("load chart %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	layout, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, *target, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := chart.WriteLayoutFile(layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(layout.Tables), layout.SeatTotal(), cacheHit)
	printNewline()
	printNextStep("Render", "tableplan render "+outputPath)

	return nil
}
