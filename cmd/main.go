package main

import (
	"flag"
	"fmt"
	"os"

	"plates/internal/config"
	"plates/internal/logger"
	"plates/internal/runner"
	"plates/pkg/color"

	"github.com/charmbracelet/log"
)

// Main entry point for the plates interpreter.
func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	options := runner.Runner{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.Debug, "d", cfg.Debug, "Print the stack after each instruction chunk")
	flag.BoolVar(&options.NoColor, "n", cfg.NoColor, "No color")
	flag.Int64Var(&options.Seed, "s", cfg.Seed, "Seed for the random source (0 = time-seeded)")
	flag.IntVar(&options.MaxDepth, "m", cfg.MaxDepth, "Maximum call depth (0 = default)")
	flag.IntVar(&options.MaxSteps, "t", cfg.MaxSteps, "Maximum executed instructions (0 = unlimited)")

	flag.Parse()
	options.SourceFiles = flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] [file ...]\n", os.Args[0])
		fmt.Println("Runs the given source files, or starts the REPL when none are provided.")
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if err := options.Run(); err != nil {
		log.Fatal("Run failed", "error", err)
	}
}
