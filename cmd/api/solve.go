package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nutrient-solver/internal/config"
	"nutrient-solver/internal/pkg/logger"
	"nutrient-solver/internal/service"
	"nutrient-solver/internal/solver"
)

var (
	requestPath      string
	solveTimeoutSecs int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a single meal's serving sizes against its targets",
	Long: `Read a solver.Request from a JSON file and print the resulting Solution.

Examples:
  # Solve a meal request
  nutrient-solver solve --request=./testdata/breakfast.json

  # Solve with a tighter wall-clock budget
  nutrient-solver solve --request=./testdata/breakfast.json --timeout=2`,
	Run: func(cmd *cobra.Command, args []string) {
		runSolve()
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVarP(&requestPath, "request", "r", "", "Path to a JSON-encoded solver request (required)")
	solveCmd.Flags().IntVarP(&solveTimeoutSecs, "timeout", "t", 0, "Wall-clock budget in seconds (overrides the request's own and the config default)")
	solveCmd.MarkFlagRequired("request")
}

func runSolve() {
	log, err := logger.NewZapLogger(debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	maxTimeout, defaultTimeout, overflowBoundLog2 := 30, solver.DefaultTimeoutSeconds, solver.OverflowBoundLog2
	if err == nil {
		maxTimeout = cfg.Solver.MaxTimeoutSeconds
		defaultTimeout = cfg.Solver.DefaultTimeoutSeconds
		overflowBoundLog2 = cfg.Solver.OverflowBoundLog2
	} else {
		log.WarnLegacy("no config file loaded, using built-in solver defaults", logger.Error(err))
	}

	data, err := os.ReadFile(requestPath)
	if err != nil {
		log.FatalLegacy("failed to read request file", logger.String("path", requestPath), logger.Error(err))
	}

	var req solver.Request
	if err := json.Unmarshal(data, &req); err != nil {
		log.FatalLegacy("failed to parse request JSON", logger.Error(err))
	}
	if solveTimeoutSecs > 0 {
		req.TimeoutSecs = solveTimeoutSecs
	}

	svc := service.NewSolverService(log, maxTimeout, defaultTimeout, overflowBoundLog2)
	sol, err := svc.Solve(context.Background(), &req)
	if err != nil {
		log.FatalLegacy("solve failed", logger.Error(err))
	}

	out, err := json.MarshalIndent(sol, "", "  ")
	if err != nil {
		log.FatalLegacy("failed to marshal solution", logger.Error(err))
	}
	fmt.Println(string(out))
}
