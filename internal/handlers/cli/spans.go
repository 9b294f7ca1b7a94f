package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gabapcia/collections/internal/pkg/logger"
	"github.com/gabapcia/collections/internal/pkg/validator"
	"github.com/gabapcia/collections/interval"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

// spansOptions holds the validated flag values for the spans command.
type spansOptions struct {
	Input string `validate:"-"`
}

// spansCommand returns a CLI command that reads integer ranges and coalesces
// overlapping or adjacent ones into maximal intervals.
//
// Each input line holds one or two integers: "lo hi" builds the closed range
// [lo,hi], a single value builds a point. Blank lines are ignored.
//
// Usage example:
//
//	collections spans --input ranges.txt
func spansCommand() *cli.Command {
	return &cli.Command{
		Name:        "spans",
		Description: "Coalesce integer ranges into maximal intervals.",
		Usage:       "Reads closed integer ranges and prints the merged intervals in ascending order.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Usage: "Input file path. Use '-' or leave empty to read from stdin",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			opts := spansOptions{
				Input: c.String("input"),
			}
			if err := validator.Validate(opts); err != nil {
				return err
			}

			runID := uuid.NewString()
			logger.Info(ctx, "command started", "run_id", runID, "command", "spans")

			in, err := openInput(opts.Input)
			if err != nil {
				return err
			}
			defer in.Close()

			var ranges []interval.Interval[int]
			if err := forEachLine(in, func(line string) error {
				iv, err := parseRange(line)
				if err != nil {
					return err
				}
				if !iv.IsEmpty() {
					ranges = append(ranges, iv)
				}

				return nil
			}); err != nil {
				return err
			}

			merged := coalesce(ranges)

			out := c.Root().Writer
			for _, iv := range merged {
				fmt.Fprintln(out, iv)
			}

			logger.Info(ctx, "command finished", "run_id", runID, "ranges", len(ranges), "spans", len(merged))
			return nil
		},
	}
}

// parseRange turns a "lo hi" or "val" line into a closed interval. Blank
// lines yield the empty interval.
func parseRange(line string) (interval.Interval[int], error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return interval.Empty[int](), nil
	case 1:
		val, err := strconv.Atoi(fields[0])
		if err != nil {
			return interval.Empty[int](), fmt.Errorf("parse range %q: %w", line, err)
		}

		return interval.Single(val), nil
	case 2:
		lo, err := strconv.Atoi(fields[0])
		if err != nil {
			return interval.Empty[int](), fmt.Errorf("parse range %q: %w", line, err)
		}
		up, err := strconv.Atoi(fields[1])
		if err != nil {
			return interval.Empty[int](), fmt.Errorf("parse range %q: %w", line, err)
		}

		return interval.Closed(lo, up)
	default:
		return interval.Empty[int](), fmt.Errorf("parse range %q: expected at most two values", line)
	}
}

// coalesce sorts the intervals by lower bound and merges every mergeable
// neighbor pair, returning the maximal disjoint spans in ascending order.
func coalesce(ranges []interval.Interval[int]) []interval.Interval[int] {
	if len(ranges) == 0 {
		return nil
	}

	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b interval.Interval[int]) int {
		la, _ := a.Lower()
		lb, _ := b.Lower()
		return la.Value - lb.Value
	})

	merged := []interval.Interval[int]{sorted[0]}
	for _, iv := range sorted[1:] {
		last := merged[len(merged)-1]
		if last.Mergeable(iv) {
			joined, err := last.Merge(iv)
			if err == nil {
				merged[len(merged)-1] = joined
				continue
			}
		}

		merged = append(merged, iv)
	}

	return merged
}
