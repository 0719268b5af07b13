package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravlab/internal/analysis"
	"github.com/san-kum/gravlab/internal/config"
	"github.com/san-kum/gravlab/internal/export"
	"github.com/san-kum/gravlab/internal/metrics"
	"github.com/san-kum/gravlab/internal/sim"
	"github.com/san-kum/gravlab/internal/storage"
	"github.com/san-kum/gravlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	dt        float64
	duration  float64
	particles int
	gconst    float64
	width     float64
	height    float64
	bounce    float64
	iters     int
	speed     float64
	workers   int
	seed      int64
	sample    int
	frameRate int

	// plot flags
	particleIdx int
	axis        string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravlab",
		Short: "gravitational particle sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravlab", "data directory")

	simFlags := func(cmd *cobra.Command) {
		cmd.Flags().Float64Var(&dt, "dt", 1.0/60.0, "timestep")
		cmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "particle count")
		cmd.Flags().Float64Var(&gconst, "g", config.DefaultG, "gravitational constant")
		cmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "domain width")
		cmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "domain height")
		cmd.Flags().Float64Var(&bounce, "bounciness", config.DefaultBounciness, "wall bounciness")
		cmd.Flags().IntVar(&iters, "iterations", config.DefaultIterations, "sub-iterations per step")
		cmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "time-scale multiplier")
		cmd.Flags().IntVar(&workers, "workers", 1, "force accumulation workers")
		cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a recorded simulation",
		RunE:  runSimulation,
	}
	simFlags(runCmd)
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "simulated duration")
	runCmd.Flags().IntVar(&sample, "sample", 1, "record every Nth step")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	simFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded particle trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&particleIdx, "particle", 0, "particle index")
	plotCmd.Flags().StringVar(&axis, "axis", "x", "axis to plot (x or y)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run frames to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export particle trails to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a particle coordinate",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&particleIdx, "particle", 0, "particle index")
	analyzeCmd.Flags().StringVar(&axis, "axis", "x", "axis to analyze (x or y)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark step rate",
		RunE:  benchSteps,
	}
	benchCmd.Flags().IntVar(&workers, "workers", 1, "force accumulation workers")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd,
		exportSVGCmd, analyzeCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves precedence: defaults < preset < config file < flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("particles") {
		cfg.Particles = particles
	}
	if cmd.Flags().Changed("g") {
		cfg.G = gconst
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("bounciness") {
		cfg.Bounciness = bounce
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Iterations = iters
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cfg.Seed == 0 || cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if sample < 1 {
		sample = 1
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	s := sim.NewRandom(cfg.SimConfig(), cfg.Particles, rng)

	ms := []metrics.Metric{
		metrics.NewEnergy(cfg.G),
		metrics.NewDrift(cfg.G),
		metrics.NewMomentum(),
		metrics.NewWallContact(cfg.Width, cfg.Height),
	}

	steps := int(duration / dt)
	frames := make([]storage.Frame, 0, steps/sample+1)

	record := func(t float64) {
		snap := s.Snapshot()
		for _, m := range ms {
			m.Observe(snap, t)
		}
		frames = append(frames, storage.Frame{T: t, Particles: snap})
	}

	fmt.Printf("running %d particles for %.1fs (dt=%.4f)...\n", cfg.Particles, duration, dt)
	start := time.Now()

	record(0)
	for i := 1; i <= steps; i++ {
		s.Step(dt)
		if i%sample == 0 {
			record(float64(i) * dt)
		}
	}

	elapsed := time.Since(start)

	meta := storage.RunMetadata{
		Particles:  cfg.Particles,
		G:          cfg.G,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Dt:         dt,
		Duration:   duration,
		Seed:       cfg.Seed,
		Iterations: cfg.Iterations,
		Speed:      cfg.Speed,
		Metrics:    metrics.Collect(ms),
	}

	runID, err := st.Save(meta, frames)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(frames))
	fmt.Println("\nmetrics:")
	for name, val := range meta.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if frameRate <= 0 {
		frameRate = 60
	}
	// the bare root command registers no sim flags
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	return viz.Run(cfg.SimConfig(), cfg.Particles, cfg.Seed, dt, frameRate)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tPARTICLES\tDURATION\tDT\tG\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2fs\t%.4fs\t%.0f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Particles,
			run.Duration,
			run.Dt,
			run.G,
			run.Seed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}
	if particleIdx < 0 || particleIdx >= meta.Particles {
		return fmt.Errorf("particle index %d out of range [0,%d)", particleIdx, meta.Particles)
	}
	if axis != "x" && axis != "y" {
		return fmt.Errorf("axis must be x or y, got %q", axis)
	}

	data := make([]float64, len(frames))
	for i, f := range frames {
		if axis == "x" {
			data[i] = f.Particles[particleIdx].Pos.X
		} else {
			data[i] = f.Particles[particleIdx].Pos.Y
		}
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d\n\n", len(frames))

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("particle %d %s-position", particleIdx, axis)),
	)
	fmt.Println(graph)

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, frames)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, frames)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	svg := export.TrailsSVG(meta, frames)
	if svg == "" {
		return fmt.Errorf("no frames to render")
	}
	_, err = fmt.Print(svg)
	return err
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) < 2 {
		return fmt.Errorf("not enough data to analyze")
	}
	if particleIdx < 0 || particleIdx >= meta.Particles {
		return fmt.Errorf("particle index %d out of range [0,%d)", particleIdx, meta.Particles)
	}
	if axis != "x" && axis != "y" {
		return fmt.Errorf("axis must be x or y, got %q", axis)
	}

	data := make([]float64, len(frames))
	for i, f := range frames {
		if axis == "x" {
			data[i] = f.Particles[particleIdx].Pos.X
		} else {
			data[i] = f.Particles[particleIdx].Pos.Y
		}
	}

	fmt.Printf("frequency analysis: %s (particle %d, %s-axis)\n\n", meta.ID, particleIdx, axis)

	ps := analysis.PowerSpectrum(data)
	plotData := ps[:len(ps)/4+1]

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	sampleDt := frames[1].T - frames[0].T
	freq, power := analysis.DominantFrequency(data, sampleDt)
	if power == 0 {
		fmt.Println("no dominant frequency")
		return nil
	}
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	fmt.Printf("period: %.3f s\n", 1.0/freq)

	return nil
}

func benchSteps(cmd *cobra.Command, args []string) error {
	counts := []int{30, 60, 120, 240, 480}
	const benchDt = 1.0 / 60.0
	const totalSteps = 300

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLES\tWORKERS\tSTEPS\tTIME\tSTEPS/SEC")

	for _, n := range counts {
		cfg := sim.DefaultConfig()
		cfg.Workers = workers

		rng := rand.New(rand.NewSource(42))
		s := sim.NewRandom(cfg, n, rng)

		start := time.Now()
		for i := 0; i < totalSteps; i++ {
			s.Step(benchDt)
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\n",
			n, cfg.Workers, totalSteps, elapsed,
			float64(totalSteps)/elapsed.Seconds())
	}

	return w.Flush()
}
