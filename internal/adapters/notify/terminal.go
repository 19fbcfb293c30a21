// Package notify renders the transient notification channel and forced
// navigation for a terminal: toast lines on one writer, and the login
// redirect as a hint to run the login command.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/agent-dash-cli/internal/ports"
)

type Terminal struct {
	mu  sync.Mutex
	out io.Writer

	okStyle   lipgloss.Style
	errStyle  lipgloss.Style
	hintStyle lipgloss.Style
}

var (
	_ ports.Notifier  = (*Terminal)(nil)
	_ ports.Navigator = (*Terminal)(nil)
)

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{
		out:       out,
		okStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		errStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		hintStyle: lipgloss.NewStyle().Faint(true),
	}
}

func (t *Terminal) Success(msg string) {
	t.write(t.okStyle.Render("✓ " + msg))
}

func (t *Terminal) Error(msg string) {
	t.write(t.errStyle.Render("✗ " + msg))
}

func (t *Terminal) ShowLogin() {
	t.write(t.errStyle.Render("session expired") + " " + t.hintStyle.Render("run `adc login` to sign in again"))
}

func (t *Terminal) write(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, line)
}
