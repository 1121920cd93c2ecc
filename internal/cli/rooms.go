package cli

import (
	"os"

	"github.com/tableplan/tableplan/pkg/chart"
)

// loadRoom reads a chart document and resolves the target room. A document
// with multiple rooms needs --room, or an interactive picker when stdin is a
// terminal.
func loadRoom(path, room string) (*chart.Chart, error) {
	doc, err := chart.ReadDocumentFile(path)
	if err != nil {
		return nil, err
	}

	c, err := doc.Room(room)
	if err == nil {
		return c, nil
	}
	if room == "" && len(doc.Rooms) > 1 && stdinIsTerminal() {
		return pickRoom(doc.Rooms)
	}
	return nil, err
}

// stdinIsTerminal reports whether stdin is attached to a terminal, gating
// the interactive picker so piped invocations fail fast instead of hanging.
func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
