package world

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/wallgrid/config"
	"github.com/pthm-cable/wallgrid/geom"
)

const eps = 1e-6

func sampleWalls() []geom.Line {
	return []geom.Line{
		{P: geom.Vec{X: 3, Y: 5}, Q: geom.Vec{X: 6, Y: 5}},
		{P: geom.Vec{X: 0, Y: 0}, Q: geom.Vec{X: 0, Y: 0}},
		{P: geom.Vec{X: 1.25, Y: -2.5}, Q: geom.Vec{X: 39.9, Y: 0.1}},
		{P: geom.Vec{X: 3, Y: 5}, Q: geom.Vec{X: 6, Y: 5}},
	}
}

func equalWalls(t *testing.T, got, want []geom.Line) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d walls, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].ApproxEqual(want[i], eps) {
			t.Errorf("wall %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walls.txt")

	if err := SaveWalls(path, sampleWalls()); err != nil {
		t.Fatalf("SaveWalls: %v", err)
	}
	loaded, err := LoadWalls(path)
	if err != nil {
		t.Fatalf("LoadWalls: %v", err)
	}
	equalWalls(t, loaded, sampleWalls())
}

func TestLoadSaveLoadIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walls.txt")
	if err := os.WriteFile(path, []byte("1 2 3 4\n0.5 0.25 7 8.125\n"), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := LoadWalls(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveWalls(path, first); err != nil {
		t.Fatal(err)
	}
	second, err := LoadWalls(path)
	if err != nil {
		t.Fatal(err)
	}
	equalWalls(t, second, first)
}

func TestLoadMissingFile(t *testing.T) {
	walls, err := LoadWalls(filepath.Join(t.TempDir(), "absent.txt"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if len(walls) != 0 {
		t.Errorf("expected no walls, got %d", len(walls))
	}
}

func TestReadWallsStopsAtMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"clean", "1 2 3 4\n5 6 7 8\n", 2},
		{"bad token", "1 2 3 4\n5 x 7 8\n9 10 11 12\n", 1},
		{"short last line", "1 2 3 4\n5 6 7\n", 1},
		{"garbage first", "walls\n1 2 3 4\n", 0},
		{"extra whitespace", "  1\t2   3 4\n\n5 6 7 8", 2},
		{"numeric prefix ends last value", "1 2 3 4\n5 6 7 8abc\n9 10 11 12\n", 2},
		{"numeric prefix mid wall", "1 2 3 4\n5 6x 7 8\n", 1},
		{"token too long", "1 2 3 4\n" + strings.Repeat("9", 70000) + " 1 2 3\n", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			walls, err := ReadWalls(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(walls) != tc.want {
				t.Errorf("expected %d walls, got %d", tc.want, len(walls))
			}
		})
	}
}

func TestReadWallsNumericPrefix(t *testing.T) {
	walls, err := ReadWalls(strings.NewReader("1 2 3 4abc 5 6 7 8"))
	if err != nil {
		t.Fatal(err)
	}
	equalWalls(t, walls, []geom.Line{{P: geom.Vec{X: 1, Y: 2}, Q: geom.Vec{X: 3, Y: 4}}})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReadWallsReportsIOError(t *testing.T) {
	if _, err := ReadWalls(failingReader{}); err == nil {
		t.Error("expected the read error to be reported")
	}
}

func TestWriteWallsFormat(t *testing.T) {
	var buf bytes.Buffer
	walls := []geom.Line{{P: geom.Vec{X: 3, Y: 5}, Q: geom.Vec{X: 6, Y: 5}}}
	if err := WriteWalls(&buf, walls); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "3.000000 5.000000 6.000000 5.000000\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestFirstSaveAfterEmptyStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walls.txt")
	w := New(config.WorldConfig{Width: 10, Height: 10, Spacing: 1})

	n, err := w.Load(path)
	if err != nil || n != 0 || w.WallCount() != 0 {
		t.Fatalf("expected empty start, got n=%d err=%v", n, err)
	}

	w.BeginWall(geom.Vec{X: 1, Y: 1})
	w.CommitWall(geom.Vec{X: 2, Y: 1})
	if err := w.Save(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 1 {
		t.Errorf("expected one line, got %d: %q", len(lines), data)
	}
}

func TestSaveExcludesInProgressWall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walls.txt")
	w := New(config.WorldConfig{Width: 10, Height: 10, Spacing: 1})
	w.AddWall(geom.Line{P: geom.Vec{X: 1, Y: 1}, Q: geom.Vec{X: 2, Y: 2}})
	w.BeginWall(geom.Vec{X: 5, Y: 5})

	if err := w.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadWalls(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 {
		t.Errorf("expected 1 saved wall, got %d", len(loaded))
	}
}
