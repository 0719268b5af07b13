package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
)

// ExportData is the JSON export shape: metadata plus flattened frames.
type ExportData struct {
	Meta   RunMetadata   `json:"meta"`
	Times  []float64     `json:"times"`
	States [][][]float64 `json:"states"`
}

// ExportJSON writes a run as indented JSON. Each state entry is
// [x, y, vx, vy] per particle, per frame.
func ExportJSON(w io.Writer, meta *RunMetadata, frames []Frame) error {
	data := ExportData{
		Meta:   *meta,
		Times:  make([]float64, len(frames)),
		States: make([][][]float64, len(frames)),
	}
	for i, f := range frames {
		data.Times[i] = f.T
		data.States[i] = make([][]float64, len(f.Particles))
		for j, p := range f.Particles {
			data.States[i][j] = []float64{p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes a run's frames in the on-disk CSV layout.
func ExportCSV(w io.Writer, frames []Frame) error {
	if len(frames) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(frameHeader(len(frames[0].Particles))); err != nil {
		return err
	}
	for _, f := range frames {
		if err := cw.Write(frameRow(f)); err != nil {
			return err
		}
	}
	return nil
}
