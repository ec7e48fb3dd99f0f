// Package main is the entry point for comcom, an interactive editor for a
// command's argument list.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/comcom/internal/args"
	"github.com/hy4ri/comcom/internal/config"
	"github.com/hy4ri/comcom/internal/docs"
	"github.com/hy4ri/comcom/internal/tui"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

const longDescription = `comcom opens a command line in a two-pane editor: the arguments on the
left, the command's manual page on the right. Arguments are edited with
Vim-style keys, copied with 'y' and run with Alt+Enter.

KEYBINDINGS:
    Normal mode:
        j/k         Move down/up (wraps)
        Ctrl+d/u    Scroll documentation
        Tab         Switch focus between panes
        Enter       Edit selected argument
        o/O         New argument below/above
        y           Copy command line
        Alt+Enter   Run command
        ?           Show help
        q/E         Quit

    Insert mode:
        Esc/Enter   Finish editing
        Backspace   Delete last character

Set COMCOM_DEBUG=1 to write a debug log to comcom-debug.log in the temp directory.`

const configTemplate = `# comcom configuration
# Location: ~/.config/comcom/config.yaml

ui:
  # Width of the command pane in columns (minimum 10)
  command_pane_width: 60
  # Show key hints in the status bar
  show_hints: true

docs:
  # Documentation command; the command name is appended
  command: "man -P cat"

exec:
  # Prompt shown after the command exits
  return_prompt: "Press 'ENTER' to return"
  # Send a desktop notification when the command finishes
  notify: false
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		initConfig bool
	)

	cmd := &cobra.Command{
		Use:     "comcom [flags] -- <command> [args...]",
		Short:   "Edit a command's arguments next to its documentation",
		Long:    longDescription,
		Version: version,
		Args: func(cmd *cobra.Command, argv []string) error {
			if initConfig {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, argv)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, argv []string) error {
			if initConfig {
				return createConfigTemplate(cmd.InOrStdin(), cmd.OutOrStdout(), configPath)
			}
			return runApp(configPath, argv[0], argv[1:])
		},
	}

	// Everything after the command name belongs to the edited command.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default ~/.config/comcom/config.yaml)")
	cmd.Flags().BoolVar(&initConfig, "init", false, "create a template config file")
	cmd.SetVersionTemplate("comcom version {{.Version}}\n")

	return cmd
}

// createConfigTemplate writes the config template, asking before overwriting.
func createConfigTemplate(in io.Reader, out io.Writer, path string) error {
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "Config file already exists: %s\n", path)
		fmt.Fprint(out, "Overwrite? [y/N]: ")

		response, _ := bufio.NewReader(in).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Config file created: %s\n", path)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

// runApp starts the editor on name and its raw arguments.
func runApp(configPath, name string, rest []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if os.Getenv("COMCOM_DEBUG") != "" {
		f, err := tea.LogToFile(filepath.Join(os.TempDir(), "comcom-debug.log"), "comcom")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	app := tui.NewApp(cfg, docs.NewManLookup(cfg.Docs.Command), name, args.Normalize(rest))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return app.Err()
}
