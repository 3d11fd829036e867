// Package tui provides the inline terminal timer view built on Bubbletea.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/focuskit/focuskit/internal/domain"
	"github.com/focuskit/focuskit/internal/engine"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C6FE0"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6B7280"))
	breakStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
	subjStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#95A5A6"))
)

// tickMsg is sent on every timer tick.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(engine.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the inline timer Bubbletea model. The engine's timer loop is
// driven by the view's tick messages while the view is up.
type Model struct {
	engine   *engine.Engine
	bar      progress.Model
	width    int
	quitting bool
	err      error
}

// NewModel creates an inline timer model over the engine.
func NewModel(eng *engine.Engine) Model {
	bar := progress.New(progress.WithGradient("#7C6FE0", "#A78BFA"))
	return Model{
		engine: eng,
		bar:    bar,
		width:  terminalWidth(),
	}
}

// Run starts the inline timer and blocks until it exits.
func Run(eng *engine.Engine) error {
	_, err := tea.NewProgram(NewModel(eng)).Run()
	return err
}

// Init initializes the view.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.engine.Tick(time.Time(msg))
		if m.engine.Snapshot().Mode == domain.ModeIdle {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "p":
			m.err = m.engine.PauseSession()
		case "r":
			m.err = m.engine.ResumeSession()
		case "d":
			m.err = m.engine.RecordDistraction()
		case "e":
			m.err = m.engine.ExtendSession(5)
		case "s":
			_, m.err = m.engine.EndSession(domain.EndCompleted)
		case "b":
			m.err = m.engine.SkipBreak()
		case "c", "ctrl+c", "q":
			if err := m.engine.CancelSession(); err != nil {
				_ = m.engine.SkipBreak()
			}
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// View renders the timer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Snapshot()

	var header string
	switch snap.Mode {
	case domain.ModePaused:
		header = pausedStyle.Render("⏸ Paused")
	case domain.ModeBreak:
		header = breakStyle.Render("☕ Break")
	case domain.ModeLongBreak:
		header = breakStyle.Render("☕ Long Break")
	default:
		header = titleStyle.Render("● Focusing")
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(header)
	if snap.Active != nil && snap.Active.SubjectTitle != "" {
		b.WriteString("  ")
		b.WriteString(subjStyle.Render(snap.Active.SubjectTitle))
	}
	b.WriteString("\n\n  ")
	b.WriteString(formatRemaining(snap.Remaining))
	b.WriteString("\n\n  ")

	barWidth := m.width - 4
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth > 0 {
		m.bar.Width = barWidth
		b.WriteString(m.bar.ViewAs(snap.Progress))
		b.WriteString("\n\n")
	}

	if snap.Active != nil && snap.Active.DistractionCount > 0 {
		b.WriteString(fmt.Sprintf("  %s\n", subjStyle.Render(
			fmt.Sprintf("%d distraction(s)", snap.Active.DistractionCount))))
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("p pause · r resume · d distraction · e +5m · s stop · b skip break · q quit"))
	b.WriteString("\n")

	return b.String()
}

// formatRemaining renders a duration as mm:ss (or h:mm:ss past the hour).
func formatRemaining(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// terminalWidth returns the current terminal width, defaulting to 80.
func terminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}
