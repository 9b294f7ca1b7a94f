// Package cli exposes the collections command-line interface. Each command
// reads plain text from a file or stdin, runs it through one of the
// collection packages, and writes a report to stdout.
package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
)

// New builds the root CLI command with all subcommands registered:
//
//   - `components`: Groups edge-list nodes into connected components.
//   - `freq`: Counts token frequencies and reports the most common ones.
//   - `spans`: Coalesces integer ranges into maximal intervals.
//   - `tail`: Prints the last N lines of the input.
//
// The root command writes to os.Stdout. Tests swap the Writer to capture
// output.
func New() *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "collections",
		Description:           "Command-line interface for exploring data with the collections packages.",
		Usage:                 "collections [command] [flags]",
		Writer:                os.Stdout,
		Commands: []*cli.Command{
			componentsCommand(),
			freqCommand(),
			spansCommand(),
			tailCommand(),
		},
	}
}

// Run initializes and executes the collections CLI application.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//
// This function sets up shell completion and invokes the CLI framework to
// parse and run commands from os.Args.
func Run(ctx context.Context) error {
	return New().Run(ctx, os.Args)
}
