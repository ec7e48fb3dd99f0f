package execution

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(name string, args []string, stdin io.Reader, interactive bool) (*Command, *bytes.Buffer) {
	var out bytes.Buffer
	c := New(name, args, "Press 'ENTER' to return")
	c.Interactive = func(io.Reader) bool { return interactive }
	c.SetStdin(stdin)
	c.SetStdout(&out)
	c.SetStderr(&out)
	return c, &out
}

func TestRunPassesArguments(t *testing.T) {
	c, out := newTestCommand("echo", []string{"-n", "hello"}, strings.NewReader(""), false)

	require.NoError(t, c.Run())
	assert.Equal(t, "hello", out.String())
	assert.Equal(t, 0, c.ExitCode)
}

func TestRunRecordsNonZeroExit(t *testing.T) {
	c, _ := newTestCommand("sh", []string{"-c", "exit 7"}, strings.NewReader(""), false)

	require.NoError(t, c.Run(), "a failing command is not an execution error")
	assert.Equal(t, 7, c.ExitCode)
}

func TestRunResetsExitCode(t *testing.T) {
	c, _ := newTestCommand("true", nil, strings.NewReader(""), false)
	c.ExitCode = 3

	require.NoError(t, c.Run())
	assert.Equal(t, 0, c.ExitCode)
}

func TestRunMissingProgram(t *testing.T) {
	c, _ := newTestCommand("definitely-not-a-real-program-comcom", nil, strings.NewReader(""), false)

	assert.Error(t, c.Run())
}

func TestRunWaitsForReturnWhenInteractive(t *testing.T) {
	// A pipe is handed to the child as a file descriptor, so nothing is
	// copied out of it on the child's behalf.
	stdin, w, err := os.Pipe()
	require.NoError(t, err)
	defer stdin.Close()

	_, err = w.WriteString("\nleftover")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	c, out := newTestCommand("true", nil, stdin, true)

	require.NoError(t, c.Run())
	assert.Contains(t, out.String(), "Press 'ENTER' to return")

	rest, err := io.ReadAll(stdin)
	require.NoError(t, err)
	assert.Equal(t, "leftover", string(rest), "exactly one byte is consumed")
}

func TestRunSkipsPromptWithoutTerminal(t *testing.T) {
	c, out := newTestCommand("true", nil, strings.NewReader(""), false)

	require.NoError(t, c.Run())
	assert.NotContains(t, out.String(), "ENTER")
}

func TestRunToleratesClosedStdin(t *testing.T) {
	c, _ := newTestCommand("true", nil, strings.NewReader(""), true)

	assert.NoError(t, c.Run())
}
