package pipeline

import (
	"github.com/tableplan/tableplan/pkg/chart"
	"github.com/tableplan/tableplan/pkg/errors"
	"github.com/tableplan/tableplan/pkg/seating"
	"github.com/tableplan/tableplan/pkg/viewport"
)

// BuildLayout computes the full layout for a room: seat positions translated
// to world space, per-table and chart bounds, and a fit-to-bounds transform
// framing the room in the requested viewport.
func BuildLayout(c chart.Chart, opts Options) (chart.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return chart.Layout{}, err
	}
	if len(c.Tables) == 0 {
		return chart.Layout{}, errors.New(errors.ErrCodeInvalidChart, "room %q has no tables", c.Name)
	}

	tables := make([]chart.Table, len(c.Tables))
	copy(tables, c.Tables)
	if opts.SnapGrid {
		for i := range tables {
			tables[i].Position = seating.SnapToGrid(tables[i].Position)
		}
	}

	layouts := make([]chart.TableLayout, 0, len(tables))
	for _, t := range tables {
		seats, err := seating.Positions(t)
		if err != nil {
			return chart.Layout{}, errors.Wrap(errors.GetCode(err), err, "table %q", t.ID)
		}

		placed := make([]chart.Seat, len(seats))
		for i, s := range seats {
			placed[i] = chart.Seat{
				Position: s.Position.Add(t.Position),
				Angle:    s.Angle,
				Number:   s.Number,
			}
		}

		min, max := seating.TableBounds(t)
		layouts = append(layouts, chart.TableLayout{
			Table:  t,
			Bounds: chart.Rect{Min: min, Max: max},
			Seats:  placed,
		})
	}

	min, max, _ := seating.ChartBounds(tables)
	vp := viewport.Viewport{Width: opts.Width, Height: opts.Height}
	tr := viewport.FitTransform(min, max, vp, opts.Padding)

	return chart.Layout{
		Name:      c.Name,
		Width:     opts.Width,
		Height:    opts.Height,
		Bounds:    chart.Rect{Min: min, Max: max},
		Transform: tr,
		Tables:    layouts,
	}, nil
}
