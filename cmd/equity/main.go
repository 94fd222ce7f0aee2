// Command equity computes Texas Hold'em equity for two or more players
// given a board and a set of player hand descriptors, each of which may be
// exact ("AcKd"), partial ("Ac"), unknown (""), or a range expression
// ("TT+", "AKs", "22-44").
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokerequity/internal/config"
	"github.com/lox/pokerequity/internal/equity"
	"github.com/lox/pokerequity/internal/equitylog"
)

type CLI struct {
	Players    []string `arg:"" help:"Player hand descriptors: exact (AcKd), partial (Ac), unknown (''), or a range (TT+, AKs, 22-44)." required:"true"`
	Board      string   `short:"b" help:"Community board cards, e.g. 'Td7s8h'."`
	Iterations uint32   `short:"i" help:"Monte Carlo iteration budget; 0 uses the configured default."`
	Seed       *int64   `help:"Random seed for reproducible Monte Carlo results."`
	Metrics    bool     `short:"m" help:"Include solve metadata (mode, runouts, assignments) in the output."`
	JSON       bool     `help:"Emit results as JSON instead of a table."`
	LogLevel   string   `help:"Solver diagnostics level: debug, info, warn, error." default:""`
	Config     string   `help:"Path to an HCL defaults file." default:"equity.hcl"`
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	handStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	equityStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("equity"),
		kong.Description("Texas Hold'em equity solver"),
	)

	lipgloss.SetColorProfile(termenv.EnvColorProfile())

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("config: "+err.Error()))
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

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	logger := equitylog.New(equitylog.ParseLevel(logLevel))

	opts := []equity.SolveOption{
		equity.WithRNG(rng),
		equity.WithLogger(logger),
	}
	if cli.Metrics {
		opts = append(opts, equity.WithMetadata())
	}

	start := time.Now()
	result, err := equity.Solve(cli.Players, cli.Board, iterations, opts...)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		ctx.Exit(1)
	}

	if cli.JSON {
		printJSON(result, cli.Players)
	} else {
		printTable(result, cli.Players, elapsed)
	}
}

type jsonOutput struct {
	Players  []string          `json:"players"`
	Equities []float64         `json:"equities"`
	Mode     string            `json:"mode"`
	Samples  uint64            `json:"samples"`
	Metadata *equity.Metadata  `json:"metadata,omitempty"`
}

func printJSON(result *equity.EquityResult, players []string) {
	out := jsonOutput{
		Players:  players,
		Equities: result.Equities,
		Mode:     result.Mode.String(),
		Samples:  result.Samples,
		Metadata: result.Metadata,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}

func printTable(result *equity.EquityResult, players []string, elapsed time.Duration) {
	fmt.Println(headerStyle.Render("hand") + "\t" + headerStyle.Render("equity"))
	for i, p := range players {
		label := p
		if label == "" {
			label = "(unknown)"
		}
		fmt.Printf("%s\t%s\n", handStyle.Render(label), equityStyle.Render(fmt.Sprintf("%.2f%%", result.Equities[i])))
	}

	fmt.Println()
	if result.Metadata != nil {
		fmt.Println(footerStyle.Render(fmt.Sprintf("%s, %d samples, %d assignments, %d runouts in %v",
			result.Mode, result.Samples, result.Metadata.Assignments, result.Metadata.Runouts, elapsed.Truncate(time.Millisecond))))
	} else {
		fmt.Println(footerStyle.Render(fmt.Sprintf("%s, %d samples in %v", result.Mode, result.Samples, elapsed.Truncate(time.Millisecond))))
	}
}
