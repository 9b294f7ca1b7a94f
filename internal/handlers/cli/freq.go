package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabapcia/collections/counter"
	"github.com/gabapcia/collections/internal/pkg/logger"
	"github.com/gabapcia/collections/internal/pkg/validator"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

// freqOptions holds the validated flag values for the freq command.
type freqOptions struct {
	Input string `validate:"-"`
	Top   int    `validate:"min=1"`
}

// freqCommand returns a CLI command that counts whitespace-separated tokens
// in the input and prints the most common ones.
//
// Usage example:
//
//	collections freq --input words.txt --top 5
func freqCommand() *cli.Command {
	return &cli.Command{
		Name:        "freq",
		Description: "Count token frequencies in the input.",
		Usage:       "Reads whitespace-separated tokens and prints the top N by occurrence count.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Usage: "Input file path. Use '-' or leave empty to read from stdin",
			},
			&cli.IntFlag{
				Name:  "top",
				Usage: "Number of top tokens to report",
				Value: 10,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			opts := freqOptions{
				Input: c.String("input"),
				Top:   c.Int("top"),
			}
			if err := validator.Validate(opts); err != nil {
				return err
			}

			runID := uuid.NewString()
			logger.Info(ctx, "command started", "run_id", runID, "command", "freq", "top", opts.Top)

			in, err := openInput(opts.Input)
			if err != nil {
				return err
			}
			defer in.Close()

			counts := counter.New[string]()
			if err := forEachLine(in, func(line string) error {
				counts.Add(strings.Fields(line)...)
				return nil
			}); err != nil {
				return err
			}

			entries := counts.MostCommon()
			if len(entries) > opts.Top {
				entries = entries[:opts.Top]
			}

			out := c.Root().Writer
			for _, entry := range entries {
				fmt.Fprintf(out, "%d\t%s\n", entry.Count, entry.Value)
			}

			logger.Info(ctx, "command finished", "run_id", runID, "tokens", counts.Total(), "distinct", len(counts))
			return nil
		},
	}
}
