// Command gridroute generates (or loads) an occupancy grid, finds a
// shortest route with BFS or A*, optionally derives alternate routes
// through random waypoints, and draws the result in the terminal.
//
// Usage:
//
//	gridroute [flags]
//
// Examples:
//
//	gridroute -n 30 -density 0.3 -seed 7 -algo astar -alternates 2
//	gridroute -map level.txt -start 0,0 -goal 9,9 -compare
//	gridroute -n 40 -csv path.csv -waypoints turns.csv -obstacles obstacles.csv
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/pathio"
	"github.com/katalvlaran/gridroute/planner"
	"github.com/katalvlaran/gridroute/route"
	"github.com/katalvlaran/gridroute/session"
)

type config struct {
	n          int
	density    float64
	seed       int64
	mapFile    string
	start      string
	goal       string
	algo       string
	alternates int
	attempts   int
	csvFile    string
	waypoints  string
	obstacles  string
	compare    bool
	noRender   bool
	verbose    bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.n, "n", 20, "Grid dimension N (N×N)")
	flag.Float64Var(&cfg.density, "density", 0.25, "Obstacle probability per cell, in [0,1]")
	flag.Int64Var(&cfg.seed, "seed", 0, "Random seed for map and waypoints (0 = fixed default)")
	flag.StringVar(&cfg.mapFile, "map", "", "Load the grid from a text file ('#' obstacle, '.' free) instead of generating it")
	flag.StringVar(&cfg.start, "start", "0,0", "Start cell as row,col (0-indexed)")
	flag.StringVar(&cfg.goal, "goal", "", "Goal cell as row,col (default: opposite corner)")
	flag.StringVar(&cfg.algo, "algo", "astar", "Search strategy: 'bfs' or 'astar'")
	flag.IntVar(&cfg.alternates, "alternates", 0, "Number of waypoint-constrained alternate routes to plan")
	flag.IntVar(&cfg.attempts, "attempts", planner.DefaultMaxAttempts, "Waypoint sampling bound per alternate")
	flag.StringVar(&cfg.csvFile, "csv", "", "Write the primary path to this CSV file (x,y rows)")
	flag.StringVar(&cfg.waypoints, "waypoints", "", "Write the primary path's turning points to this CSV file")
	flag.StringVar(&cfg.obstacles, "obstacles", "", "Block every cell listed in this CSV obstacle log before searching")
	flag.BoolVar(&cfg.compare, "compare", false, "Run BFS and A* side by side and report exploration sizes")
	flag.BoolVar(&cfg.noRender, "no-render", false, "Do not draw the map")
	flag.BoolVar(&cfg.verbose, "v", false, "Debug logging to stderr")
	flag.Parse()

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, colorDenied.Sprint("error:"), err)
		os.Exit(1)
	}
}

func run(cfg config, out io.Writer) error {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("component", "gridroute"))

	strategy, err := session.ParseStrategy(cfg.algo)
	if err != nil {
		return err
	}

	grid, err := loadGrid(cfg)
	if err != nil {
		return err
	}
	start, err := parseCell(cfg.start)
	if err != nil {
		return fmt.Errorf("-start: %w", err)
	}
	goal := gridgraph.Cell{Row: grid.Dimension() - 1, Col: grid.Dimension() - 1}
	if cfg.goal != "" {
		if goal, err = parseCell(cfg.goal); err != nil {
			return fmt.Errorf("-goal: %w", err)
		}
	}
	// generated maps keep the endpoints open
	if cfg.mapFile == "" {
		grid = grid.WithObstacles([]gridgraph.Cell{start, goal}, false)
	}

	sess, err := session.New(grid,
		session.WithLogger(logger),
		session.WithSeed(cfg.seed),
		session.WithPlannerOptions(planner.WithMaxAttempts(cfg.attempts)),
	)
	if err != nil {
		return err
	}

	if cfg.obstacles != "" {
		cells, err := pathio.LoadObstacles(cfg.obstacles)
		if err != nil {
			return err
		}
		if err = sess.SetObstacles(cells, true); err != nil {
			return err
		}
		fmt.Fprintf(out, "loaded %d obstacles from %s\n", len(cells), cfg.obstacles)
	}

	primary, err := sess.Search(strategy, start, goal)
	switch {
	case errors.Is(err, route.ErrNoPathFound):
		reportUnreachable(out, sess.Grid(), start, goal)
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "#%d %s: %d steps, %d cells explored\n",
			primary.Index, strategy, primary.Result.Path.Steps(), primary.Result.Explored())
	}

	var waypoints []gridgraph.Cell
	if primary.Result.Found {
		for i := 0; i < cfg.alternates; i++ {
			alt, err := sess.Alternate(strategy, start, goal)
			if err != nil {
				fmt.Fprintf(out, "alternate %d: %v\n", i+1, err)
				continue
			}
			waypoints = append(waypoints, alt.Plan.Waypoint)
			fmt.Fprintf(out, "#%d alternate via %v: %d steps (%d samples)\n",
				alt.Index, alt.Plan.Waypoint, alt.Plan.Path.Steps(), alt.Plan.Attempts)
		}
	}

	if cfg.compare {
		cmp, err := sess.Compare(start, goal)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "compare: bfs explored %d, astar explored %d, path %d cells, agree=%t\n",
			cmp.BFS.Explored(), cmp.AStar.Explored(), cmp.AStar.Path.Len(), cmp.SameLength())
	}

	if !cfg.noRender {
		if err = draw(out, sess.Grid(), overlay{
			start:     start,
			goal:      goal,
			path:      primary.Result.Path,
			visited:   primary.Result.Visited,
			waypoints: waypoints,
		}); err != nil {
			return err
		}
	}

	return export(out, cfg, primary.Result.Path)
}

// loadGrid reads -map or generates a random grid.
func loadGrid(cfg config) (*gridgraph.Grid, error) {
	if cfg.mapFile == "" {
		return gridgraph.Random(cfg.n, gridgraph.RandomOptions{Density: cfg.density, Seed: cfg.seed})
	}
	data, err := os.ReadFile(cfg.mapFile)
	if err != nil {
		return nil, err
	}
	return gridgraph.Parse(string(data))
}

// draw renders the map if it fits the terminal.
func draw(out io.Writer, g *gridgraph.Grid, ov overlay) error {
	if width := terminalWidth(); !fits(g.Dimension(), width) {
		fmt.Fprintf(out, "map is %d columns wide, terminal has %d: skipping render\n", 2*g.Dimension(), width)
		return nil
	}
	if err := render(out, g, ov); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, legend())
	return err
}

// reportUnreachable explains a failed search with the fewest obstacles
// that would have to be removed.
func reportUnreachable(out io.Writer, g *gridgraph.Grid, start, goal gridgraph.Cell) {
	fmt.Fprintf(out, "%s %v is unreachable from %v\n", colorDenied.Sprint("no path:"), goal, start)
	path, cost, err := g.MinClearance(start, goal)
	if err != nil {
		return
	}
	var walls []string
	for _, c := range path {
		if g.Blocked(c) {
			walls = append(walls, c.String())
		}
	}
	fmt.Fprintf(out, "clearing %d obstacle(s) would connect them: %s\n", cost, strings.Join(walls, " "))
}

// export writes the CSV outputs requested on the command line.
func export(out io.Writer, cfg config, p route.Path) error {
	if len(p) == 0 {
		return nil
	}
	if cfg.csvFile != "" {
		if err := pathio.SavePath(cfg.csvFile, p); err != nil {
			return err
		}
		fmt.Fprintf(out, "path written to %s\n", cfg.csvFile)
	}
	if cfg.waypoints != "" {
		f, err := os.Create(cfg.waypoints)
		if err != nil {
			return err
		}
		if err = pathio.WriteWaypoints(f, p); err != nil {
			f.Close()
			return err
		}
		if err = f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(out, "turning points written to %s\n", cfg.waypoints)
	}
	return nil
}

// parseCell parses "row,col".
func parseCell(s string) (gridgraph.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("want row,col, got %q", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("row: %w", err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("col: %w", err)
	}
	return gridgraph.Cell{Row: r, Col: c}, nil
}
