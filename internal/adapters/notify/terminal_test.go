package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalWritesOneLinePerNotification(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.Success("task moved")
	term.Error("database on fire")
	term.ShowLogin()

	out := buf.String()
	assert.Contains(t, out, "task moved")
	assert.Contains(t, out, "database on fire")
	assert.Contains(t, out, "adc login")
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))
}
