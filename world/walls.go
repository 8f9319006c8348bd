package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/pthm-cable/wallgrid/geom"
)

// ReadWalls parses whitespace-separated floats, four per wall
// (p.x p.y q.x q.y). Like scanf's %f, a token with a numeric prefix yields that
// number and ends the data at the first character that is not part of it.
// Reading stops silently at the first value that does not parse, or at a
// token too long to buffer; the walls read so far are returned. Only I/O
// errors are reported.
func ReadWalls(r io.Reader) ([]geom.Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var walls []geom.Line
	var fields [4]float64
	for {
		for i := range fields {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil && !errors.Is(err, bufio.ErrTooLong) {
					return walls, err
				}
				return walls, nil
			}
			v, rest, ok := parseFloatPrefix(scanner.Text())
			if !ok {
				return walls, nil
			}
			fields[i] = v
			if rest {
				if i == len(fields)-1 {
					walls = append(walls, wallFrom(fields))
				}
				return walls, nil
			}
		}
		walls = append(walls, wallFrom(fields))
	}
}

func wallFrom(f [4]float64) geom.Line {
	return geom.Line{
		P: geom.Vec{X: f[0], Y: f[1]},
		Q: geom.Vec{X: f[2], Y: f[3]},
	}
}

// parseFloatPrefix parses the longest leading part of tok that is a number.
// rest reports whether characters follow it.
func parseFloatPrefix(tok string) (v float64, rest bool, ok bool) {
	if v, ok := parseFloat(tok); ok {
		return v, false, true
	}
	n := 0
	for n < len(tok) && strings.IndexByte("0123456789+-.eE", tok[n]) >= 0 {
		n++
	}
	for ; n > 0; n-- {
		if v, ok := parseFloat(tok[:n]); ok {
			return v, true, true
		}
	}
	return 0, false, false
}

// parseFloat accepts out-of-range values as ±Inf or 0, as scanf does.
func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil || errors.Is(err, strconv.ErrRange)
}

// WriteWalls writes one wall per line in the format ReadWalls accepts.
func WriteWalls(w io.Writer, walls []geom.Line) error {
	bw := bufio.NewWriter(w)
	for _, wall := range walls {
		if _, err := fmt.Fprintf(bw, "%f %f %f %f\n", wall.P.X, wall.P.Y, wall.Q.X, wall.Q.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadWalls reads walls from path. A missing file yields no walls and no error.
func LoadWalls(path string) ([]geom.Line, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open walls: %w", err)
	}
	defer f.Close()

	walls, err := ReadWalls(f)
	if err != nil {
		return walls, fmt.Errorf("read walls: %w", err)
	}
	return walls, nil
}

// SaveWalls overwrites path with the given walls.
func SaveWalls(path string, walls []geom.Line) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create walls: %w", err)
	}
	if err := WriteWalls(f, walls); err != nil {
		f.Close()
		return fmt.Errorf("write walls: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close walls: %w", err)
	}
	return nil
}

// Load appends the walls stored at path. Returns the number of walls added.
func (w *World) Load(path string) (int, error) {
	walls, err := LoadWalls(path)
	w.walls = append(w.walls, walls...)
	return len(walls), err
}

// Save writes the committed walls to path. The in-progress wall is not saved.
func (w *World) Save(path string) error {
	return SaveWalls(path, w.walls)
}
