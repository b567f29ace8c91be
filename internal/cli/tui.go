package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/render/term"
	"github.com/matzehuels/gridpath/pkg/search"
	"github.com/matzehuels/gridpath/pkg/session"
)

// headerRows is the number of terminal lines drawn above the board.
const headerRows = 2

var (
	statusKeyStyle   = lipgloss.NewStyle().Foreground(colorGray)
	statusValueStyle = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	statusBarStyle   = lipgloss.NewStyle().MarginTop(1)
)

// stepMsg asks the model to advance the run with the given ID by one step.
type stepMsg struct {
	runID string
}

// =============================================================================
// PlayModel - Interactive board
// =============================================================================

// PlayModel is the bubbletea model of the interactive visualizer. It owns
// the session; runs advance one step per stepMsg so key presses are
// handled between steps.
type PlayModel struct {
	ctx      context.Context
	session  *session.Session
	renderer *term.Renderer
	delay    time.Duration

	painting tea.MouseButton // button held down for drag painting
	notice   string
	failed   bool
}

// NewPlayModel creates the model for s. delay is the pause between two
// search steps.
func NewPlayModel(ctx context.Context, s *session.Session, r *term.Renderer, delay time.Duration) PlayModel {
	return PlayModel{
		ctx:      ctx,
		session:  s,
		renderer: r,
		delay:    delay,
		painting: tea.MouseButtonNone,
	}
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case stepMsg:
		return m.step(msg)
	}
	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.session.Cancel()
		return m, tea.Quit
	case " ", "space", "enter":
		r, err := m.session.Begin(m.ctx)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.setNotice("searching…")
		return m, m.next(r.ID)
	case "esc":
		if m.session.State() == session.Running {
			m.session.Cancel()
			m.setNotice("cancelling…")
		}
	case "c":
		if err := m.session.Clear(m.ctx); err != nil {
			m.setError(err)
			return m, nil
		}
		m.setNotice("board cleared")
	}
	return m, nil
}

func (m PlayModel) handleMouse(msg tea.MouseMsg) PlayModel {
	switch msg.Action {
	case tea.MouseActionPress:
		m.painting = msg.Button
	case tea.MouseActionRelease:
		m.painting = tea.MouseButtonNone
		return m
	case tea.MouseActionMotion:
		if m.painting == tea.MouseButtonNone {
			return m
		}
	}

	row, col, ok := m.renderer.Locate(msg.X, msg.Y-headerRows, m.session.Dimension())
	if !ok {
		return m
	}

	var (
		act session.Action
		err error
	)
	switch m.painting {
	case tea.MouseButtonLeft:
		act, err = m.session.Primary(m.ctx, row, col)
	case tea.MouseButtonRight:
		act, err = m.session.Secondary(m.ctx, row, col)
	default:
		return m
	}
	if err != nil {
		m.setError(err)
		return m
	}
	if act != session.NoAction {
		m.setNotice(fmt.Sprintf("%s at (%d,%d)", act, row, col))
	}
	return m
}

// step advances the active run if msg still refers to it. Ticks of a run
// that was cleared or replaced are dropped.
func (m PlayModel) step(msg stepMsg) (tea.Model, tea.Cmd) {
	r := m.session.Active()
	if r == nil || r.ID != msg.runID || r.Done() {
		return m, nil
	}

	_, err := r.Step()
	if !r.Done() {
		return m, m.next(r.ID)
	}

	res := r.Result()
	switch {
	case errors.Is(err, errors.ErrCodeCancelled):
		m.setNotice(fmt.Sprintf("search cancelled after %d steps", res.Steps))
	case err != nil:
		m.setError(err)
	case res.Found:
		m.setNotice(fmt.Sprintf("path found: %d moves, %d steps", res.Distance, res.Steps))
	default:
		m.setNotice(fmt.Sprintf("no path: end unreachable after %d steps", res.Steps))
	}
	return m, nil
}

// next schedules the following step of run id after the step delay.
func (m PlayModel) next(id string) tea.Cmd {
	if m.delay <= 0 {
		return func() tea.Msg { return stepMsg{runID: id} }
	}
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return stepMsg{runID: id} })
}

func (m *PlayModel) setNotice(s string) {
	m.notice = s
	m.failed = false
}

func (m *PlayModel) setError(err error) {
	m.notice = errors.UserMessage(err)
	m.failed = true
}

func (m PlayModel) View() string {
	var b strings.Builder

	n := m.session.Dimension()
	b.WriteString(StyleTitle.Render("gridpath") + StyleDim.Render(fmt.Sprintf(" %dx%d", n, n)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("left: start/end/wall  right: erase  space: run  esc: cancel  c: clear  q: quit"))
	b.WriteString("\n")

	b.WriteString(m.renderer.Render(m.session.Grid()))
	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render(m.statusLine()))
	b.WriteString("\n")

	if m.notice != "" {
		style := StyleDim
		if m.failed {
			style = StyleError
		}
		b.WriteString(style.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(m.renderer.Legend())

	return b.String()
}

func (m PlayModel) statusLine() string {
	field := func(k, v string) string {
		return statusKeyStyle.Render(k+" ") + statusValueStyle.Render(v)
	}
	parts := []string{field("state", m.session.State().String())}

	if r := m.session.Active(); r != nil {
		res := r.Result()
		parts = append(parts,
			field("phase", r.Phase().String()),
			field("steps", fmt.Sprint(r.Steps())),
			field("frontier", fmt.Sprint(r.FrontierLen())),
		)
		if r.Done() {
			parts = append(parts, field("distance", distanceText(res)), field("time", r.Elapsed().Round(time.Microsecond).String()))
		}
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

func distanceText(res search.Result) string {
	if !res.Found {
		return "—"
	}
	return fmt.Sprint(res.Distance)
}
