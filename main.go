package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rifqialf/gameoflife/utils"
)

const configFile = "config.json"

func main() {
	args, err := utils.ParseArgs(os.Args[1:])
	if err != nil {
		exitWith(err)
	}

	config := loadConfig(configFile, args)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := runSimulation(ctx, args, config)
	if err != nil {
		stop()
		exitWith(err)
	}

	if config.ReportTiming {
		stats.Report(os.Stdout)
	}
}

// exitWith prints the message for err and terminates with a non-zero status
func exitWith(err error) {
	fmt.Fprintln(os.Stderr, exitMessage(err))
	os.Exit(1)
}
