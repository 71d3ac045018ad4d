package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/hmclab/internal/chain"
	"github.com/san-kum/hmclab/internal/hmc"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
)

type TickMsg time.Time

// Model runs a chain in batches and redraws the growing scatter plot.
// All batches share one Chain, each starting from the previous batch's
// last sample, so the whole session is a single logical chain with one
// continuous random stream.
type Model struct {
	ch        *chain.Chain
	cur       hmc.Point
	samples   []hmc.Point
	accepted  int
	total     int
	maxTotal  int
	batch     int
	frameRate int
	running   bool
	err       error
	canvas    *Canvas
}

func NewModel(ch *chain.Chain, start hmc.Point, maxTotal, batch, frameRate int) Model {
	return Model{
		ch:        ch,
		cur:       start,
		samples:   make([]hmc.Point, 0, maxTotal),
		maxTotal:  maxTotal,
		batch:     batch,
		frameRate: frameRate,
		running:   true,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
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
		}
	case TickMsg:
		if m.running && m.total < m.maxTotal && m.err == nil {
			n := m.batch
			if rest := m.maxTotal - m.total; rest < n {
				n = rest
			}
			res, err := m.ch.Run(m.cur, n)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.samples = append(m.samples, res.Samples...)
			m.accepted += res.Accepted
			m.total += n
			m.cur = res.Samples[len(res.Samples)-1]
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	b := SampleBounds(m.samples)
	m.canvas.Scatter(m.samples, b)
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.ch.Target().Name())) + "\n")
	status := "SAMPLING"
	if !m.running {
		status = "PAUSED"
	}
	if m.total >= m.maxTotal {
		status = "DONE"
	}
	if m.err != nil {
		status = "ERROR: " + m.err.Error()
	}
	s.WriteString(status + "\n\n")

	rate := 0.0
	if m.total > 0 {
		rate = float64(m.accepted) / float64(m.total)
	}
	s.WriteString(labelStyle.Render("Samples") + valueStyle.Render(fmt.Sprintf("%d / %d", m.total, m.maxTotal)) + "\n")
	s.WriteString(labelStyle.Render("Accepted") + valueStyle.Render(fmt.Sprintf("%.1f%%", 100*rate)) + "\n")
	s.WriteString(labelStyle.Render("Position") + valueStyle.Render(fmt.Sprintf("(%.2f, %.2f)", m.cur.X, m.cur.Y)) + "\n")
	s.WriteString(labelStyle.Render("Window") + valueStyle.Render(fmt.Sprintf("x %.1f..%.1f", b.MinX, b.MaxX)) + "\n")
	s.WriteString(labelStyle.Render("") + valueStyle.Render(fmt.Sprintf("y %.1f..%.1f", b.MinY, b.MaxY)) + "\n")
	s.WriteString(helpStyle.Render("SP:Pause  Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

// RunLive drives the live view until the requested total is reached or
// the user quits.
func RunLive(ch *chain.Chain, start hmc.Point, total, batch, frameRate int) error {
	if frameRate < 1 {
		frameRate = 30
	}
	if batch < 1 {
		batch = 25
	}
	p := tea.NewProgram(NewModel(ch, start, total, batch, frameRate))
	_, err := p.Run()
	return err
}
