package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/metronav/metronav/pkg/io"
)

// routeOpts holds options for the route command.
type routeOpts struct {
	json bool
}

// routeCommand creates the route command for finding a route between two stations.
func (c *CLI) routeCommand() *cobra.Command {
	opts := routeOpts{}

	cmd := &cobra.Command{
		Use:   "route <start> <end>",
		Short: "Find the fewest-hop route between two stations",
		Long: `Find the fewest-hop route between two stations.

Riding to an adjacent station and changing line at a station each count as one
hop. When several routes tie, the one found first wins: lines are tried in
network order, which for a lines directory is file-name order.`,
		Example: `  # Plain narration
  metronav route "Espanya" "Sagrada Família"

  # Machine-readable result
  metronav route Espanya Diagonal --json --lines ./network.yaml`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completeStations(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRoute(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")

	return cmd
}

func (c *CLI) runRoute(cmd *cobra.Command, start, end string, opts routeOpts) error {
	ctx := cmd.Context()
	p, err := c.loadPlanner(ctx)
	if err != nil {
		return err
	}

	res := findRoute(ctx, p, start, end)

	if opts.json {
		if err := pkgio.WriteRouteJSON(res, cmd.OutOrStdout()); err != nil {
			return err
		}
		return resultError(res, p.Index, start, end)
	}

	if err := resultError(res, p.Index, start, end); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, narrate(res.Route))
	fmt.Fprintln(out, summarize(res.Route))
	return nil
}
