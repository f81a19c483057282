package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/metronav/metronav/pkg/errors"
	pkgio "github.com/metronav/metronav/pkg/io"
	"github.com/metronav/metronav/pkg/render/nodelink"
	"github.com/metronav/metronav/pkg/route"
)

// Graph export formats.
const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatJSON = "json"
)

// graphOpts holds options for the graph command.
type graphOpts struct {
	format   string
	route    string
	output   string
	clusters bool
}

// graphCommand creates the graph command for exporting the state graph.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: formatDOT, clusters: true}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the station/line state graph",
		Long: `Export the state graph the route search walks.

Every (station, line) pair is a node. Ride edges join adjacent stations of a
line; dashed transfer edges join the nodes of one station on different lines.`,
		Example: `  # DOT to stdout
  metronav graph

  # SVG with a route highlighted
  metronav graph --format svg --route "Espanya,Diagonal" -o network.svg

  # Node-link JSON
  metronav graph --format json -o graph.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runGraph(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, json")
	cmd.Flags().StringVar(&opts.route, "route", "", "highlight the route between two stations, as start,end")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.clusters, "clusters", opts.clusters, "group nodes by line (dot, svg)")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatDOT, formatSVG, formatJSON}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, opts graphOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	switch opts.format {
	case formatDOT, formatSVG, formatJSON:
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported graph format %q (want dot, svg or json)", opts.format)
	}

	p, err := c.loadPlanner(ctx)
	if err != nil {
		return err
	}

	var highlight route.Route
	if opts.route != "" {
		start, end, ok := strings.Cut(opts.route, ",")
		if !ok {
			return errors.New(errors.ErrCodeInvalidInput, "--route wants start,end, got %q", opts.route)
		}
		start, end = strings.TrimSpace(start), strings.TrimSpace(end)
		res := findRoute(ctx, p, start, end)
		if err := resultError(res, p.Index, start, end); err != nil {
			return err
		}
		highlight = res.Route
	}

	prog := newProgress(logger)
	var buf bytes.Buffer
	switch opts.format {
	case formatJSON:
		if err := pkgio.WriteGraphJSON(p.Graph, &buf); err != nil {
			return err
		}
	case formatDOT:
		buf.WriteString(nodelink.ToDOT(p.Graph, nodelink.Options{ClusterLines: opts.clusters, Route: highlight}))
	case formatSVG:
		dot := nodelink.ToDOT(p.Graph, nodelink.Options{ClusterLines: opts.clusters, Route: highlight})
		svg, err := nodelink.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
		buf.Write(svg)
		prog.done(fmt.Sprintf("Rendered %d states", p.Graph.StateCount()))
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Exported %s graph", strings.ToUpper(opts.format))
	printFile(opts.output)
	printStats(p.Network.Len(), p.Graph.StateCount(), p.Graph.EdgeCount())
	if opts.format == formatDOT {
		printNextStep("Render", "dot -Tpng "+opts.output+" -o graph.png")
	}
	return nil
}
