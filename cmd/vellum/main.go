package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hollisbeck/vellum/internal/app"
	"github.com/hollisbeck/vellum/internal/cli"
	"github.com/hollisbeck/vellum/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()

	if len(os.Args) > 1 {
		if err := runCommand(cfg, logger, os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model, err := app.New(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer model.Shutdown()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCommand(cfg *config.Config, logger *slog.Logger, args []string) error {
	deps, err := cli.NewDependencies(cfg, logger)
	if err != nil {
		return err
	}

	switch args[0] {
	case "ls":
		return cli.ListCommand(deps)
	case "new":
		if len(args) < 2 {
			return fmt.Errorf("usage: vellum new <title>")
		}
		return cli.NewCommand(deps, args[1])
	case "cat":
		if len(args) < 2 {
			return fmt.Errorf("usage: vellum cat <id>")
		}
		return cli.CatCommand(deps, args[1])
	default:
		return fmt.Errorf("unknown command %q (expected ls, new, or cat)", args[0])
	}
}

// newLogger writes structured logs to a file so they never corrupt the
// alternate screen. Logging is disabled when the file cannot be opened.
func newLogger() *slog.Logger {
	f, err := os.OpenFile("vellum.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	}
	return slog.New(slog.NewTextHandler(f, nil))
}
