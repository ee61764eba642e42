package main

import (
	"context"
	"fmt"
	"os"

	"access-log-analyzer/internal/app"
	"access-log-analyzer/internal/commands"
	"access-log-analyzer/internal/shared/configs"
	"access-log-analyzer/internal/shared/svcerrors"
)

func main() {
	// Load configuration
	cfg, err := configs.LoadConfig("./configs/configs.yml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize application
	application, err := app.New(cfg, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	rootCmd := commands.NewRootCommand(application.Run)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(svcerrors.ExitCodeOf(err))
	}
}
