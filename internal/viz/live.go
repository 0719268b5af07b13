package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravlab/internal/metrics"
	"github.com/san-kum/gravlab/internal/sim"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives the live view. It owns the simulation, steps it on
// every tick while running, and redraws every tick whether paused
// or not.
type Model struct {
	s             *sim.Simulation
	seed          int64
	count         int
	t             float64
	dt            float64
	fps           int
	running       bool
	canvas        *Canvas
	energyHistory []float64
	steps         int
}

// NewModel seeds a simulation from cfg and prepares the view.
func NewModel(cfg sim.Config, count int, seed int64, dt float64, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	rng := rand.New(rand.NewSource(seed))
	return Model{
		s:             sim.NewRandom(cfg, count, rng),
		seed:          seed,
		count:         count,
		dt:            dt,
		fps:           fps,
		running:       true,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running {
			m.s.Step(m.dt)
			m.t += m.dt
			m.steps++

			energy := metrics.Total(m.s.Snapshot(), m.s.Config().G)
			m.energyHistory = append(m.energyHistory, energy)
			if len(m.energyHistory) > historyCapacity {
				m.energyHistory = m.energyHistory[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// reset reseeds the simulation with the original seed.
func (m *Model) reset() {
	rng := rand.New(rand.NewSource(m.seed))
	m.s = sim.NewRandom(m.s.Config(), m.count, rng)
	m.t = 0
	m.steps = 0
	m.energyHistory = m.energyHistory[:0]
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("GRAVLAB") + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	cfg := m.s.Config()
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d", m.steps)) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", m.s.Len())) + "\n")
	s.WriteString(labelStyle.Render("G") + valueStyle.Render(fmt.Sprintf("%.0f", cfg.G)) + "\n")
	s.WriteString(labelStyle.Render("Domain") + valueStyle.Render(fmt.Sprintf("%.0f×%.0f", cfg.Width, cfg.Height)) + "\n")
	if len(m.energyHistory) > 0 {
		s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.2f", m.energyHistory[len(m.energyHistory)-1])) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause  R:Reset  Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// draw maps the domain onto the canvas sub-pixel grid.
func (m *Model) draw() {
	m.canvas.Clear()
	m.canvas.Border()

	cfg := m.s.Config()
	sx := float64(canvasWidth*2-2) / cfg.Width
	sy := float64(canvasHeight*4-2) / cfg.Height

	for _, p := range m.s.Snapshot() {
		m.canvas.Dot(1+int(p.Pos.X*sx), 1+int(p.Pos.Y*sy))
	}
}

// Run starts the live view and blocks until the user quits.
func Run(cfg sim.Config, count int, seed int64, dt float64, fps int) error {
	p := tea.NewProgram(NewModel(cfg, count, seed, dt, fps))
	_, err := p.Run()
	return err
}
