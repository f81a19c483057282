package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/metronav/metronav/pkg/errors"
	"github.com/metronav/metronav/pkg/network"
	"github.com/metronav/metronav/pkg/route"
)

// =============================================================================
// Commands
// =============================================================================

// linesCommand creates the lines command listing every line of the network.
func (c *CLI) linesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "List the lines of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := c.loadPlanner(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), linesTable(p))
			printStats(p.Network.Len(), p.Graph.StateCount(), p.Graph.EdgeCount())
			return nil
		},
	}
}

// lineCommand creates the line command showing the stations of one line.
func (c *CLI) lineCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "line <id>",
		Short:             "Show the stations of a line in riding order",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeLines,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadPlanner(cmd.Context())
			if err != nil {
				return err
			}
			l, ok := p.Network.Line(args[0])
			if !ok {
				return errors.New(errors.ErrCodeLineNotFound, "unknown line %q (have %s)", args[0], strings.Join(p.Network.IDs(), ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), lineTable(l, p.Index))
			return nil
		},
	}
}

// stationCommand creates the station command showing the lines at a station.
func (c *CLI) stationCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "station <name>",
		Short:             "Show the lines serving a station and its neighbors on each",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeStations(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadPlanner(cmd.Context())
			if err != nil {
				return err
			}
			name := args[0]
			if !p.Index.Has(name) {
				return stationNotFound(p.Index, name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), stationTable(name, p))
			return nil
		},
	}
}

// transfersCommand creates the transfers command listing interchange stations.
func (c *CLI) transfersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transfers",
		Short: "List stations served by more than one line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := c.loadPlanner(cmd.Context())
			if err != nil {
				return err
			}
			if len(p.Index.TransferStations()) == 0 {
				printInfo("No transfer stations: every station is served by a single line")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), transfersTable(p.Index))
			return nil
		},
	}
}

// =============================================================================
// Tables
// =============================================================================

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// linesTable lists every line with its terminals and station count.
func linesTable(p *route.Planner) string {
	t := newTable("Line", "Stations", "From", "To", "Transfers")
	for _, l := range p.Network.Lines() {
		transfers := 0
		for _, s := range l.Stations {
			if p.Index.IsTransfer(s) {
				transfers++
			}
		}
		from, to := "", ""
		if l.Len() > 0 {
			from, to = l.Stations[0], l.Stations[l.Len()-1]
		}
		t.Row(StyleLine.Render(l.ID), strconv.Itoa(l.Len()), from, to, strconv.Itoa(transfers))
	}
	return t.Render()
}

// lineTable lists the stations of l in riding order, marking transfers with
// the other lines serving them.
func lineTable(l network.Line, idx *network.StationIndex) string {
	t := newTable("#", "Station", "Change to")
	for i, s := range l.Stations {
		var other []string
		for _, id := range idx.Lines(s) {
			if id != l.ID {
				other = append(other, id)
			}
		}
		name := s
		if len(other) > 0 {
			name = StyleTransfer.Render(s)
		}
		t.Row(strconv.Itoa(i+1), name, strings.Join(other, ", "))
	}
	return StyleTitle.Render("Line "+l.ID) + "\n" + t.Render()
}

// stationTable lists each line serving station with the previous and next
// stations on it.
func stationTable(station string, p *route.Planner) string {
	t := newTable("Line", "Previous", "Next")
	for _, id := range p.Index.Lines(station) {
		prev, next := p.Network.Neighbors(station, id)
		t.Row(StyleLine.Render(id), orTerminus(prev), orTerminus(next))
	}
	return StyleTitle.Render(station) + "\n" + t.Render()
}

func orTerminus(s string) string {
	if s == "" {
		return StyleDim.Render("(terminus)")
	}
	return s
}

// transfersTable lists every transfer station with the lines serving it.
func transfersTable(idx *network.StationIndex) string {
	t := newTable("Station", "Lines")
	for _, s := range idx.TransferStations() {
		t.Row(s, strings.Join(idx.Lines(s), ", "))
	}
	return t.Render()
}
