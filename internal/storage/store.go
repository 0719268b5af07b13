package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/gravlab/internal/physics"
	"github.com/san-kum/gravlab/internal/vec"
)

// Frame is one recorded snapshot of the particle population.
type Frame struct {
	T         float64
	Particles []physics.Particle
}

// Store persists recorded runs under a base directory, one subdirectory
// per run holding metadata.json and frames.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Particles  int                `json:"particles"`
	G          float64            `json:"g"`
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Seed       int64              `json:"seed"`
	Iterations int                `json:"iterations"`
	Speed      float64            `json:"speed"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes one run to disk and returns its generated ID.
func (s *Store) Save(meta RunMetadata, frames []Frame) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(frames) == 0 {
		return runID, nil
	}

	if err := w.Write(frameHeader(len(frames[0].Particles))); err != nil {
		return "", err
	}
	for _, f := range frames {
		if err := w.Write(frameRow(f)); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func frameHeader(n int) []string {
	header := []string{"time"}
	for i := 0; i < n; i++ {
		header = append(header,
			fmt.Sprintf("p%d_x", i), fmt.Sprintf("p%d_y", i),
			fmt.Sprintf("p%d_vx", i), fmt.Sprintf("p%d_vy", i))
	}
	return header
}

func frameRow(f Frame) []string {
	row := []string{strconv.FormatFloat(f.T, 'f', 6, 64)}
	for _, p := range f.Particles {
		row = append(row,
			strconv.FormatFloat(p.Pos.X, 'f', 6, 64),
			strconv.FormatFloat(p.Pos.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Vel.X, 'f', 6, 64),
			strconv.FormatFloat(p.Vel.Y, 'f', 6, 64))
	}
	return row
}

// List returns metadata for every stored run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

// Load reads one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadFrames reads one run's recorded frames back from CSV.
func (s *Store) LoadFrames(runID string) ([]Frame, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return []Frame{}, nil
	}

	n := (len(records[0]) - 1) / 4
	frames := make([]Frame, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != 1+n*4 {
			return nil, fmt.Errorf("run %s: malformed frame row", runID)
		}
		frame := Frame{Particles: make([]physics.Particle, n)}
		if frame.T, err = strconv.ParseFloat(rec[0], 64); err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			vals := [4]float64{}
			for k := 0; k < 4; k++ {
				if vals[k], err = strconv.ParseFloat(rec[1+i*4+k], 64); err != nil {
					return nil, err
				}
			}
			frame.Particles[i] = physics.NewParticle(
				vec.Vec2{X: vals[0], Y: vals[1]},
				vec.Vec2{X: vals[2], Y: vals[3]},
			)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}
