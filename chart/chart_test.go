package chart

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shreekarashastry/doublespend/simulation"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestRenderWritesPNG(t *testing.T) {
	seed := int64(42)
	traj, err := simulation.NewSimulation(nil).Run(0.55, 200, &seed)
	if err != nil {
		t.Fatal(err)
	}
	if len(traj.Events) == 0 {
		t.Fatal("expected the sample run to contain reorgs")
	}

	path := filepath.Join(t.TempDir(), DefaultPath)
	if err := New(path).Render(traj); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("output is not a PNG image")
	}
}

func TestRenderNoPath(t *testing.T) {
	if err := New("").Render(&simulation.Trajectory{}); !errors.Is(err, ErrNoPath) {
		t.Errorf("expected ErrNoPath, got %v", err)
	}
}

func TestRenderUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "out.png")
	traj := &simulation.Trajectory{Snapshots: []simulation.RaceState{{Attacker: 0, Honest: 1}}}
	if err := New(path).Render(traj); err == nil {
		t.Error("expected an error writing into a missing directory")
	}
}

func TestPlotEmptyTrajectory(t *testing.T) {
	p, err := New(DefaultPath).Plot(&simulation.Trajectory{})
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Min != 0 || p.X.Max != 1 {
		t.Errorf("unexpected x range [%v, %v]", p.X.Min, p.X.Max)
	}
}
