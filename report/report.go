// Package report formats estimator results for the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/sugawarayuuta/sonnet"
)

// Batch is the outcome of one estimator run next to the closed-form bound.
type Batch struct {
	Model       string  `json:"model"`
	P           float64 `json:"p"`
	K           int     `json:"k"`
	Trials      int     `json:"trials"`
	Seed        *int64  `json:"seed,omitempty"`
	Simulated   float64 `json:"simulated"`
	Theoretical float64 `json:"theoretical"`
	Sweep       []Row   `json:"sweep,omitempty"`
}

// Row is one confirmation depth of a sweep.
type Row struct {
	K           int     `json:"k"`
	Simulated   float64 `json:"simulated"`
	Theoretical float64 `json:"theoretical"`
}

// WriteText prints the batch in the layout of the command line tool.
func (b *Batch) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\nModel: %s\n"+
		"Simulation    p=%.3f, k=%d, trials=%d: %.4f\n"+
		"Theoretical   p=%.3f, k=%d: %.4f\n\n",
		b.Model,
		b.P, b.K, b.Trials, b.Simulated,
		b.P, b.K, b.Theoretical)
	if err != nil || len(b.Sweep) == 0 {
		return err
	}

	if _, err := fmt.Fprintf(w, "%-6s %-12s %-12s\n", "k", "simulated", "theoretical"); err != nil {
		return err
	}
	for _, row := range b.Sweep {
		if _, err := fmt.Fprintf(w, "%-6d %-12.4f %-12.4f\n", row.K, row.Simulated, row.Theoretical); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}

// WriteJSON prints the batch as a single JSON document.
func (b *Batch) WriteJSON(w io.Writer) error {
	data, err := sonnet.Marshal(b)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
