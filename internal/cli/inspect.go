package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tableplan/tableplan/pkg/chart"
	"github.com/tableplan/tableplan/pkg/seating"
)

// inspectCommand creates the inspect command for summarizing chart files.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [chart.json]",
		Short: "Summarize a seating chart file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

func runInspect(input string) error {
	doc, err := chart.ReadDocumentFile(input)
	if err != nil {
		return fmt.Errorf("load chart %s: %w", input, err)
	}

	fmt.Println(StyleTitle.Render("Chart: " + input))
	printNewline()

	totalTables, totalSeats := 0, 0
	for _, room := range doc.Rooms {
		name := room.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Println(StyleHighlight.Render(name))

		seats := 0
		shapes := map[chart.Shape]int{}
		for _, t := range room.Tables {
			seats += t.SeatCount
			shapes[t.Shape]++
		}
		totalTables += len(room.Tables)
		totalSeats += seats

		printKeyValue("tables", fmt.Sprintf("%d", len(room.Tables)))
		printKeyValue("seats", fmt.Sprintf("%d", seats))
		if min, max, ok := seating.ChartBounds(room.Tables); ok {
			printKeyValue("bounds", fmt.Sprintf("(%g, %g) – (%g, %g)", min.X, min.Y, max.X, max.Y))
		}
		for _, shape := range []chart.Shape{chart.ShapeRound, chart.ShapeRect, chart.ShapeSquare} {
			if n := shapes[shape]; n > 0 {
				printDetail("%d %s", n, shape)
			}
		}
		printNewline()
	}

	if len(doc.Rooms) > 1 {
		printInfo("%d rooms · %d tables · %d seats", len(doc.Rooms), totalTables, totalSeats)
	}
	printNextStep("Layout", "tableplan layout "+input)
	return nil
}
