// Package chart draws sample race trajectories as PNG images.
package chart

import (
	"errors"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/shreekarashastry/doublespend/simulation"
)

const (
	DefaultPath  = "sample_evolution.png"
	c_labelShift = 0.3
)

var ErrNoPath = errors.New("chart output path is empty")

// Chart renders a trajectory to an image file. The format follows the file
// extension of Path.
type Chart struct {
	Path   string
	Width  vg.Length
	Height vg.Length
	Title  string
}

func New(path string) *Chart {
	return &Chart{
		Path:   path,
		Width:  10 * vg.Inch,
		Height: 4 * vg.Inch,
		Title:  "Sample evolution - attacker vs honest",
	}
}

// Render draws traj and writes it to c.Path.
func (c *Chart) Render(traj *simulation.Trajectory) error {
	if c.Path == "" {
		return ErrNoPath
	}
	p, err := c.Plot(traj)
	if err != nil {
		return err
	}
	return p.Save(c.Width, c.Height, c.Path)
}

// Plot builds the figure: one curve per chain and a dashed marker with a
// "reorg" label at every reorg step.
func (c *Chart) Plot(traj *simulation.Trajectory) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = "step"
	p.Y.Label.Text = "chain length (relative)"
	p.Legend.Top = true
	p.Legend.Left = true

	if traj == nil || traj.Len() == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
		return p, nil
	}

	attacker := make(plotter.XYs, traj.Len())
	honest := make(plotter.XYs, traj.Len())
	top := 0.0
	for i, s := range traj.Snapshots {
		attacker[i].X, attacker[i].Y = float64(i), float64(s.Attacker)
		honest[i].X, honest[i].Y = float64(i), float64(s.Honest)
		top = math.Max(top, float64(s.Honest))
	}

	attLine, err := plotter.NewLine(attacker)
	if err != nil {
		return nil, err
	}
	attLine.LineStyle.Color = plotutil.Color(0)
	honLine, err := plotter.NewLine(honest)
	if err != nil {
		return nil, err
	}
	honLine.LineStyle.Color = plotutil.Color(1)
	p.Add(attLine, honLine)
	p.Legend.Add("attacker_private_len", attLine)
	p.Legend.Add("honest_public_len", honLine)

	if len(traj.Events) == 0 {
		return p, nil
	}

	marks := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(traj.Events)),
		Labels: make([]string, len(traj.Events)),
	}
	for i, ev := range traj.Events {
		x := float64(ev.Step)
		marker, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: top + 1}})
		if err != nil {
			return nil, err
		}
		marker.LineStyle.Width = vg.Points(0.7)
		marker.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		marker.LineStyle.Color = plotutil.Color(2)
		p.Add(marker)

		s := traj.Snapshots[ev.Step]
		marks.XYs[i].X = x
		marks.XYs[i].Y = math.Max(float64(s.Honest), float64(s.Attacker)) + c_labelShift
		marks.Labels[i] = "reorg"
	}
	labels, err := plotter.NewLabels(marks)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Rotation = math.Pi / 2
		labels.TextStyle[i].Font.Size = vg.Points(8)
	}
	p.Add(labels)
	return p, nil
}
