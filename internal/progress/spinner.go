// Package progress shows a terminal spinner while a long task runs.
package progress

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrInterrupted is returned when the user stops the spinner with Ctrl+C.
var ErrInterrupted = errors.New("interrupted")

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

type doneMsg struct {
	err error
}

// Model is the Bubble Tea spinner model.
type Model struct {
	spinner spinner.Model
	label   string
	done    bool
	err     error
}

// NewModel returns a spinner model showing label.
func NewModel(label string) Model {
	return Model{
		spinner: spinner.New(spinner.WithSpinner(spinner.Line), spinner.WithStyle(spinnerStyle)),
		label:   label,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			m.err = ErrInterrupted
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}
	return labelStyle.Render(m.label) + " " + m.spinner.View()
}

// Run calls task while a spinner labelled label spins on out. When out is not
// a terminal the task runs without any output.
func Run(out io.Writer, label string, task func() error) error {
	if !isTerminal(out) {
		return task()
	}

	program := tea.NewProgram(NewModel(label), tea.WithOutput(out))
	go func() {
		program.Send(doneMsg{err: task()})
	}()
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run spinner: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.err
	}
	return nil
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && f != nil && term.IsTerminal(int(f.Fd()))
}
