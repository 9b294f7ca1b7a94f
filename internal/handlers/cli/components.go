package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/gabapcia/collections/counter"
	"github.com/gabapcia/collections/disjointset"
	"github.com/gabapcia/collections/internal/pkg/logger"
	"github.com/gabapcia/collections/internal/pkg/validator"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

// componentsOptions holds the validated flag values for the components command.
type componentsOptions struct {
	Input  string `validate:"-"`
	Policy string `validate:"required,oneof=rank size"`
}

// componentsCommand returns a CLI command that reads an edge list and groups
// the nodes into connected components using a disjoint set.
//
// Each input line holds whitespace-separated node names. A line with a single
// name registers an isolated node; a line with two or more names merges every
// name with the first one. Blank lines are ignored.
//
// Usage example:
//
//	collections components --input edges.txt --policy size
func componentsCommand() *cli.Command {
	return &cli.Command{
		Name:        "components",
		Description: "Group edge-list nodes into connected components.",
		Usage:       "Reads node pairs from the input and prints each connected component with a size summary.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Usage: "Input file path. Use '-' or leave empty to read from stdin",
			},
			&cli.StringFlag{
				Name:  "policy",
				Usage: "Union policy: 'rank' or 'size'",
				Value: "rank",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			opts := componentsOptions{
				Input:  c.String("input"),
				Policy: c.String("policy"),
			}
			if err := validator.Validate(opts); err != nil {
				return err
			}

			runID := uuid.NewString()
			logger.Info(ctx, "command started", "run_id", runID, "command", "components", "policy", opts.Policy)

			policy := disjointset.UnionByRank
			if opts.Policy == "size" {
				policy = disjointset.UnionBySize
			}

			in, err := openInput(opts.Input)
			if err != nil {
				return err
			}
			defer in.Close()

			ds := disjointset.New[string](disjointset.WithPolicy(policy))
			if err := forEachLine(in, func(line string) error {
				names := strings.Fields(line)
				if len(names) == 0 {
					return nil
				}

				ds.Add(names...)
				for _, name := range names[1:] {
					ds.Merge(names[0], name)
				}

				return nil
			}); err != nil {
				return err
			}

			var components [][]string
			for _, members := range ds.Subsets() {
				slices.Sort(members)
				components = append(components, members)
			}
			slices.SortFunc(components, func(a, b []string) int {
				return strings.Compare(a[0], b[0])
			})

			sizes := counter.New[int]()
			out := c.Root().Writer
			for _, members := range components {
				sizes.Add(len(members))
				fmt.Fprintf(out, "%s\n", strings.Join(members, " "))
			}

			fmt.Fprintf(out, "components: %d\n", ds.Count())
			for _, entry := range sizesAscending(sizes) {
				fmt.Fprintf(out, "size %d: %d\n", entry.Value, entry.Count)
			}

			logger.Info(ctx, "command finished", "run_id", runID, "components", ds.Count(), "nodes", ds.Len())
			return nil
		},
	}
}

// sizesAscending returns the size histogram entries ordered by component size.
func sizesAscending(sizes counter.Counter[int]) []counter.Entry[int] {
	entries := sizes.MostCommon()
	slices.SortFunc(entries, func(a, b counter.Entry[int]) int {
		return a.Value - b.Value
	})

	return entries
}
