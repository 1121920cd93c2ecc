package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tableplan/tableplan/pkg/chart"
	"github.com/tableplan/tableplan/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path (or base path for multiple formats)
	room    string // room name within a multi-room document
	noCache bool   // disable caching
}

// renderCommand creates the render command for generating floor plans.
// It accepts either a chart.json (full pipeline) or a layout.json produced
// by 'tableplan layout' (render only).
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	flags := renderOpts{}
	opts := c.newOptions()

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a seating chart as a floor plan",
		Long: `Render a seating chart as a floor plan.

Accepts a chart.json file (computes the layout first) or a layout.json file
from a previous 'tableplan layout' run (renders directly). Output formats are
svg and json; multiple formats produce one file each.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Room = flags.room
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, &flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&flags.room, "room", "r", "", "room name within a multi-room document")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")

	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "visual style: simple (default), blueprint")
	cmd.Flags().BoolVar(&opts.ShowGrid, "grid", opts.ShowGrid, "draw the background grid")
	cmd.Flags().BoolVar(&opts.SeatNumbers, "seat-numbers", opts.SeatNumbers, "label each seat with its number")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "viewport width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "viewport height")
	cmd.Flags().Float64Var(&opts.Padding, "padding", opts.Padding, "fit-to-bounds padding")
	cmd.Flags().BoolVar(&opts.SnapGrid, "snap", opts.SnapGrid, "snap table positions to the grid")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// runRender dispatches between the full pipeline and layout-only rendering.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, flags *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)
	track := newProgress(logger)

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = logger

	var (
		artifacts map[string][]byte
		cacheHit  bool
		tables    int
		seats     int
	)

	if strings.HasSuffix(input, ".layout.json") {
		layout, err := chart.ReadLayoutFile(input)
		if err != nil {
			return fmt.Errorf("load layout %s: %w", input, err)
		}
		tables, seats = len(layout.Tables), layout.SeatTotal()
		artifacts, cacheHit, err = runner.RenderWithCacheInfo(ctx, layout, opts)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
	} else {
		target, err := loadRoom(input, opts.Room)
		if err != nil {
			return fmt.Errorf("load chart %s: %w", input, err)
		}
		result, err := runner.Execute(ctx, *target, opts)
		if err != nil {
			return err
		}
		artifacts = result.Artifacts
		cacheHit = result.CacheInfo.RenderHit
		tables, seats = result.Stats.TableCount, result.Stats.SeatCount
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := writeArtifacts(input, flags.output, opts.Formats, artifacts); err != nil {
		return err
	}

	track.done(fmt.Sprintf("Placed %d seats", seats))
	printStats(tables, seats, cacheHit)
	return nil
}

// writeArtifacts writes each rendered format to its output file. A single
// format honors --output directly; multiple formats treat it as a base path.
func writeArtifacts(input, output string, formats []string, artifacts map[string][]byte) error {
	base := basePath(output, input)

	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}

		path := output
		if path == "" || len(formats) > 1 {
			path = base + "." + format
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printSuccess("Generated %s", path)
	}
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output carries
// a format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		return strings.TrimSuffix(base, ".layout")
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
