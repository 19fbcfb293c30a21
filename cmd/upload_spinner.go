package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type uploadDoneMsg struct {
	err error
}

type uploadSpinnerModel struct {
	spinner spinner.Model
	label   string
	work    tea.Cmd
	err     error
	done    bool
}

func newUploadSpinnerModel(label string, work tea.Cmd) uploadSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return uploadSpinnerModel{
		spinner: s,
		label:   label,
		work:    work,
	}
}

func (m uploadSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m uploadSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case uploadDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m uploadSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runUploadSpinner(ctx context.Context, output io.Writer, label string, work func(context.Context) error) error {
	workCmd := func() tea.Msg {
		return uploadDoneMsg{err: work(ctx)}
	}

	p := tea.NewProgram(
		newUploadSpinnerModel(label, workCmd),
		tea.WithOutput(output),
		tea.WithInput(nil),
	)

	model, err := p.Run()
	if err != nil {
		return fmt.Errorf("run upload spinner: %w", err)
	}

	m, ok := model.(uploadSpinnerModel)
	if !ok {
		return errors.New("unexpected spinner model type")
	}
	return m.err
}
