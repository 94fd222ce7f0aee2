// Command equity-tui is an interactive terminal front-end over the equity
// solver: edit player hand descriptors and the board, see equities update
// live.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/alecthomas/kong"

	"github.com/lox/pokerequity/internal/config"
	"github.com/lox/pokerequity/internal/equitytui"
	"github.com/lox/pokerequity/internal/equitylog"
)

type CLI struct {
	Players    int    `short:"p" help:"Number of player seats to start with." default:"2"`
	Iterations uint32 `short:"i" help:"Monte Carlo iteration budget; 0 uses the configured default."`
	LogLevel   string `help:"Solver diagnostics level: debug, info, warn, error." default:""`
	Config     string `help:"Path to an HCL defaults file." default:"equity.hcl"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Name("equity-tui"))

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		ctx.Exit(1)
	}

	logLevel := cli.LogLevel
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	iterations := cli.Iterations
	if iterations == 0 {
		iterations = cfg.Iterations
	}

	logFile, err := os.OpenFile("equity-tui.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open log file:", err)
		ctx.Exit(1)
	}
	defer logFile.Close()

	logger := equitylog.New(equitylog.ParseLevel(logLevel))
	logger.SetOutput(logFile)

	model := equitytui.New(cli.Players, iterations, logger)

	if _, err := tea.NewProgram(model).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error running tui:", err)
		ctx.Exit(1)
	}
}
