// Argus is an in-memory alert analytics engine. It loads a dataset of
// security alerts at startup and serves filtering, statistics and
// analytics endpoints over HTTP.
//
// Usage:
//
//	argus                   start the API server
//	argus dataset generate  generate a synthetic alert dataset
//	argus dataset convert   convert a dataset between JSON and JSONL
package main

import (
	"context"
	"fmt"
	"os"

	"argus/bootstrap"
	"argus/cmd"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "dataset" {
		datasetCmd := cmd.NewDatasetCmd()
		datasetCmd.SetArgs(os.Args[2:])
		if err := datasetCmd.Execute(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	app, err := bootstrap.NewApp(ctx)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}

	app.WaitForShutdown()
	app.Shutdown()
	return nil
}
