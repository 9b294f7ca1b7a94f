package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/collections/internal/pkg/logger"
	"github.com/gabapcia/collections/internal/pkg/validator"
	"github.com/gabapcia/collections/ringbuffer"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

// tailOptions holds the validated flag values for the tail command.
type tailOptions struct {
	Input string `validate:"-"`
	Lines int    `validate:"min=1"`
}

// tailCommand returns a CLI command that prints the last N lines of the
// input, keeping only a fixed-size window in memory while reading.
//
// Usage example:
//
//	collections tail --input app.log --lines 20
func tailCommand() *cli.Command {
	return &cli.Command{
		Name:        "tail",
		Description: "Print the last N lines of the input.",
		Usage:       "Streams the input through a fixed-size buffer and prints the lines that remain.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Usage: "Input file path. Use '-' or leave empty to read from stdin",
			},
			&cli.IntFlag{
				Name:  "lines",
				Usage: "Number of trailing lines to keep",
				Value: 10,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			opts := tailOptions{
				Input: c.String("input"),
				Lines: c.Int("lines"),
			}
			if err := validator.Validate(opts); err != nil {
				return err
			}

			runID := uuid.NewString()
			logger.Info(ctx, "command started", "run_id", runID, "command", "tail", "lines", opts.Lines)

			in, err := openInput(opts.Input)
			if err != nil {
				return err
			}
			defer in.Close()

			window := ringbuffer.New[string](opts.Lines)
			total := 0
			if err := forEachLine(in, func(line string) error {
				window.PushBack(line)
				total++
				return nil
			}); err != nil {
				return err
			}

			out := c.Root().Writer
			for line := range window.Values() {
				fmt.Fprintln(out, line)
			}

			logger.Info(ctx, "command finished", "run_id", runID, "read", total, "kept", window.Len())
			return nil
		},
	}
}
