// Package pathio exports and imports routes and obstacle logs as CSV.
//
// Every record is one cell written as "x,y" where x is the column and y is
// the row, the layout downstream trajectory tools read. On input, records
// with fewer than two fields are skipped and integral float values such as
// "3.0" are accepted.
package pathio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/route"
)

// Sentinel errors for CSV decoding.
var (
	// ErrBadRecord is returned for a field that is not an integral coordinate.
	ErrBadRecord = errors.New("pathio: malformed record")
)

// WritePath writes p as x,y records in path order.
func WritePath(w io.Writer, p route.Path) error {
	cw := csv.NewWriter(w)
	for _, c := range p {
		if err := cw.Write(record(c)); err != nil {
			return fmt.Errorf("pathio: write %v: %w", c, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteWaypoints writes only the turning points of p: start, every cell
// where the direction changes, and goal.
func WriteWaypoints(w io.Writer, p route.Path) error {
	return WritePath(w, p.TurningPoints())
}

// ReadPath decodes x,y records into a path. The result is not validated
// against any grid; use route.Path.Validate for that.
func ReadPath(r io.Reader) (route.Path, error) {
	cells, err := readCells(r)
	if err != nil {
		return nil, err
	}
	return route.Path(cells), nil
}

// ReadObstacles decodes x,y records into a list of cells to block.
func ReadObstacles(r io.Reader) ([]gridgraph.Cell, error) {
	return readCells(r)
}

// SavePath writes p to name, truncating any existing file.
func SavePath(name string, p route.Path) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("pathio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("pathio: %w", cerr)
		}
	}()
	return WritePath(f, p)
}

// LoadPath reads a path previously written by SavePath.
func LoadPath(name string) (route.Path, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("pathio: %w", err)
	}
	defer f.Close()
	return ReadPath(f)
}

// AppendObstacle appends one x,y record to the obstacle log at name,
// creating the file if needed.
func AppendObstacle(name string, c gridgraph.Cell) (err error) {
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("pathio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("pathio: %w", cerr)
		}
	}()
	cw := csv.NewWriter(f)
	if err = cw.Write(record(c)); err != nil {
		return fmt.Errorf("pathio: append %v: %w", c, err)
	}
	cw.Flush()
	return cw.Error()
}

// LoadObstacles reads the obstacle log at name. A missing file is an
// empty log.
func LoadObstacles(name string) ([]gridgraph.Cell, error) {
	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pathio: %w", err)
	}
	defer f.Close()
	return ReadObstacles(f)
}

func record(c gridgraph.Cell) []string {
	return []string{strconv.Itoa(c.Col), strconv.Itoa(c.Row)}
}

func readCells(r io.Reader) ([]gridgraph.Cell, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []gridgraph.Cell
	for n := 1; ; n++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("pathio: %w", err)
		}
		if len(rec) < 2 {
			continue
		}
		x, err := coord(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: record %d x: %v", ErrBadRecord, n, err)
		}
		y, err := coord(rec[1])
		if err != nil {
			return nil, fmt.Errorf("%w: record %d y: %v", ErrBadRecord, n, err)
		}
		out = append(out, gridgraph.Cell{Row: y, Col: x})
	}
}

// coord parses an integer, or a float with no fractional part.
func coord(s string) (int, error) {
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return int(f), nil
}
