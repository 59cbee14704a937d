package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/term"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/route"
)

// defaultWidth is used when stdout is not a terminal.
const defaultWidth = 80

// Map glyphs. Each cell is drawn two columns wide.
const (
	glyphFree     = ". "
	glyphBlocked  = "# "
	glyphVisited  = "o "
	glyphPath     = "* "
	glyphStart    = "S "
	glyphGoal     = "G "
	glyphWaypoint = "W "
)

var (
	colorBlocked  = color.Style{color.FgGray, color.OpBold}
	colorFree     = color.Style{color.FgGray}
	colorVisited  = color.Style{color.FgBlue}
	colorPath     = color.Style{color.FgGreen, color.OpBold}
	colorEndpoint = color.Style{color.FgYellow, color.BgBlack, color.OpBold}
	colorWaypoint = color.Style{color.FgMagenta, color.OpBold}
	colorDenied   = color.Style{color.FgRed, color.OpBold}
)

// terminalWidth returns the width of stdout, or defaultWidth if it cannot
// be determined.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// overlay is what gets drawn on top of the occupancy map.
type overlay struct {
	start, goal gridgraph.Cell
	path        route.Path
	visited     mapset.Set[gridgraph.Cell]
	waypoints   []gridgraph.Cell
}

// fits reports whether an n×n map can be drawn in width columns.
func fits(n, width int) bool {
	return 2*n <= width
}

// render draws g with ov to w, one text row per grid row.
// Precedence: endpoints, waypoints, path, visited, obstacle, free.
func render(w io.Writer, g *gridgraph.Grid, ov overlay) error {
	onPath := mapset.New[gridgraph.Cell]()
	for _, c := range ov.path {
		onPath.Put(c)
	}
	waypoints := mapset.Of(ov.waypoints...)

	var sb strings.Builder
	n := g.Dimension()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			sb.WriteString(glyph(g, gridgraph.Cell{Row: r, Col: c}, ov, onPath, waypoints))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func glyph(g *gridgraph.Grid, c gridgraph.Cell, ov overlay, onPath, waypoints mapset.Set[gridgraph.Cell]) string {
	switch {
	case c == ov.start:
		return colorEndpoint.Sprint(glyphStart)
	case c == ov.goal:
		return colorEndpoint.Sprint(glyphGoal)
	case waypoints.Has(c):
		return colorWaypoint.Sprint(glyphWaypoint)
	case onPath.Has(c):
		return colorPath.Sprint(glyphPath)
	case ov.visited.Has(c):
		return colorVisited.Sprint(glyphVisited)
	case g.Blocked(c):
		return colorBlocked.Sprint(glyphBlocked)
	default:
		return colorFree.Sprint(glyphFree)
	}
}

// legend is printed below the map.
func legend() string {
	return fmt.Sprintf("%s start/goal  %s path  %s waypoint  %s explored  %s obstacle",
		colorEndpoint.Sprint("S/G"), colorPath.Sprint("*"), colorWaypoint.Sprint("W"),
		colorVisited.Sprint("o"), colorBlocked.Sprint("#"))
}
