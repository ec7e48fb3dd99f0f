// Package execution runs the edited command outside of the TUI.
package execution

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var promptStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("12")).
	Bold(true)

// Command runs a program to completion and then waits for the user to press
// ENTER before handing the terminal back. It implements tea.ExecCommand, so
// the caller's program releases the terminal before Run and restores it after.
type Command struct {
	Name   string
	Args   []string
	Prompt string

	// ExitCode is the exit status of the last run. A non-zero status is not
	// reported as an error.
	ExitCode int

	// Interactive reports whether stdin is a terminal the prompt can wait on.
	Interactive func(io.Reader) bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a Command for the given program and arguments.
func New(name string, args []string, prompt string) *Command {
	return &Command{
		Name:        name,
		Args:        args,
		Prompt:      prompt,
		Interactive: isTerminal,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
}

// SetStdin implements tea.ExecCommand.
func (c *Command) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout implements tea.ExecCommand.
func (c *Command) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr implements tea.ExecCommand.
func (c *Command) SetStderr(w io.Writer) { c.stderr = w }

// Run spawns the program, waits for it, then blocks on the return prompt.
// Only failures to start or wait on the process are returned.
func (c *Command) Run() error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdin = c.stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	c.ExitCode = 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("failed to run %s: %w", c.Name, err)
		}
		c.ExitCode = exitErr.ExitCode()
	}

	return c.waitForReturn()
}

func (c *Command) waitForReturn() error {
	if c.Interactive == nil || !c.Interactive(c.stdin) {
		return nil
	}

	if _, err := fmt.Fprint(c.stdout, "\n"+promptStyle.Render(c.Prompt)); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	var buf [1]byte
	if _, err := c.stdin.Read(buf[:]); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read from stdin: %w", err)
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
