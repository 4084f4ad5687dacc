package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/engine"
	"github.com/vovakirdan/gridsnake/internal/world"
)

var (
	flagFrames   int
	flagRealtime bool
	flagEvery    int
	flagDump     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the autopilot play without a terminal",
	Long: `Run the game headless with a built-in autopilot. The autopilot heads
for the food, steers around walls and its own body, and uses items when it
gets into trouble. It restarts after every death.

The run stops after --frames frames (0 = until Ctrl+C). With --realtime
each frame waits for its slot at the configured tick rate; otherwise
frames run as fast as the machine allows.

Examples:
  gridsnake simulate --frames 10000 --seed 42
  gridsnake simulate --realtime --log-level debug --every 60
  gridsnake simulate --frames 500 --dump`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Frames to run (0 = until interrupted)")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the tick rate")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 0, "Log a frame summary every N frames at debug level (0 = never)")
	simulateCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the final board")
}

func runSimulate(_ *cobra.Command, _ []string) {
	if err := simulate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func simulate() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "gridsnake")
	if err != nil {
		return err
	}

	s := seed()
	w, err := world.New(cfg, s, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := engine.NewLogRenderer(logger, flagEvery)
	runner := engine.NewRunner(w, engine.NewAutopilot(), out, engine.Options{
		TickRate:  cfg.Runtime.TickRate,
		MaxFrames: flagFrames,
		Realtime:  flagRealtime,
	}, logger)

	logger.Info("simulation started", "seed", s, "frames", flagFrames, "realtime", flagRealtime)
	stats, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	if flagDump {
		fmt.Println(out.Dump(w.Telemetry(0).String()))
		fmt.Println()
	}
	printStats(stats)
	return nil
}

func printStats(stats engine.Stats) {
	fmt.Printf("Frames:   %d\n", stats.Frames)
	fmt.Printf("Ticks:    %d\n", stats.Ticks)
	fmt.Printf("Score:    %d\n", stats.Score)
	fmt.Printf("Alive:    %t\n", stats.Alive)
	fmt.Printf("Deaths:   %d\n", stats.Deaths)
	fmt.Printf("Duration: %s\n", stats.Duration)

	if len(stats.Events) == 0 {
		return
	}
	kinds := make([]world.EventKind, 0, len(stats.Events))
	for k := range stats.Events {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	fmt.Println()
	fmt.Println("Events:")
	for _, k := range kinds {
		fmt.Printf("  %-12s %d\n", k, stats.Events[k])
	}
}
