// Command breach solves "Breach Protocol" puzzles from YAML files.
//
// Usage:
//
//	breach [flags] FILE...
//
// Each file is one puzzle document (see package puzzlefile). The solver,
// time budget and gap tolerance come from flags, optionally preloaded from
// a YAML config file; explicitly set flags always win over the config.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/breach/puzzlefile"
	"github.com/katalvlaran/breach/solution"
	"github.com/katalvlaran/breach/solve"
)

// Config is the optional on-disk configuration.
type Config struct {
	Solver    string  `yaml:"solver"`
	TimeLimit float64 `yaml:"time_limit"` // seconds
	Gap       float64 `yaml:"gap"`
}

var (
	solverName string
	timeLimit  float64
	gap        float64
	verbose    bool
	configPath string

	rootCmd = &cobra.Command{
		Use:   "breach [flags] FILE...",
		Short: "Solver for the 'Breach Protocol' code-matrix minigame",
		Long: `breach finds the highest-value cell sequence for a breach-protocol
puzzle: start in the top row, alternate column/row moves, fill the buffer,
activate daemons. Puzzles are YAML documents; see an example:

    grid:
      - [1C, 55, BD]
      - [E9, 1C, FF]
      - [55, BD, 1C]
    daemons:
      - sequence: [1C, BD]
      - sequence: [55, E9, FF]
        cost: 5
    buffer: 6`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSolve,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&solverName, "solver", "s", "auto",
		"solver to use: {auto, exhaustive (ex, brute), bnb (branch-and-bound)}")
	rootCmd.Flags().Float64VarP(&timeLimit, "time-limit", "t", 0,
		"wall-clock budget in seconds (0 = unbounded)")
	rootCmd.Flags().Float64Var(&gap, "gap", 0,
		"absolute optimality-gap tolerance (0 = exact)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"diagnostic output (search statistics)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"path to a YAML config file (optional)")
}

// loadConfig merges the config file under explicitly set flags.
func loadConfig(cmd *cobra.Command) error {
	if configPath == "" {
		return nil
	}
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", configPath, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", configPath, err)
	}
	if !cmd.Flags().Changed("solver") && cfg.Solver != "" {
		solverName = cfg.Solver
	}
	if !cmd.Flags().Changed("time-limit") && cfg.TimeLimit > 0 {
		timeLimit = cfg.TimeLimit
	}
	if !cmd.Flags().Changed("gap") && cfg.Gap > 0 {
		gap = cfg.Gap
	}

	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}
	algo, err := solve.ParseAlgo(solverName)
	if err != nil {
		return fmt.Errorf("%w: %q", err, solverName)
	}

	opts := solve.NewOptions(
		solve.WithAlgo(algo),
		solve.WithGap(gap),
		solve.WithTimeLimit(time.Duration(timeLimit*float64(time.Second))),
	)
	opts.Verbose = verbose

	for _, file := range args {
		p, err := puzzlefile.Load(file)
		if err != nil {
			return err
		}
		res, stats, err := solve.Solve(p, opts)
		if err != nil {
			return fmt.Errorf("solving %s: %w", file, err)
		}

		fmt.Println(renderHeader(file, stats))
		switch r := res.(type) {
		case solution.Solution:
			fmt.Println(renderSolution(p, r))
		case solution.NoSolution:
			fmt.Println(renderNoSolution(r))
		}
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("breach: %v", err)
	}
}
