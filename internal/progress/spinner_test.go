package progress

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelDone(t *testing.T) {
	m := NewModel("Generating word list...")
	assert.Contains(t, m.View(), "Generating word list...")

	taskErr := errors.New("boom")
	updated, cmd := m.Update(doneMsg{err: taskErr})

	require.NotNil(t, cmd)
	final := updated.(Model)
	assert.Empty(t, final.View())
	assert.Equal(t, taskErr, final.err)
}

func TestModelInterrupt(t *testing.T) {
	updated, cmd := NewModel("x").Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.ErrorIs(t, updated.(Model).err, ErrInterrupted)
}

func TestRunWithoutTerminal(t *testing.T) {
	out, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() {
		_ = out.Close()
	}()

	called := false
	err = Run(out, "working", func() error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)

	taskErr := errors.New("failed")
	var buf bytes.Buffer
	assert.Equal(t, taskErr, Run(&buf, "working", func() error { return taskErr }))
	assert.Empty(t, buf.String())
}
