package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/metronav/metronav/internal/config"
	"github.com/metronav/metronav/pkg/errors"
	"github.com/metronav/metronav/pkg/route"
)

// exploreCommand creates the explore command, an interactive query loop.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Explore the network interactively",
		Long: `Explore the network from an interactive menu: find routes, list lines and
transfer stations, and look up stations.

With reload = "query" (the default) the lines are reread before every action,
so edits to the line files show up without restarting. With reload = "session"
they are read once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runExplore(cmd.Context())
		},
	}
}

// session caches the planner according to the reload policy.
type session struct {
	cli     *CLI
	planner *route.Planner
}

// current returns the planner for the next action, rereading the lines unless
// the policy is once per session and they were already read.
func (s *session) current(ctx context.Context) (*route.Planner, error) {
	if s.planner != nil && s.cli.Config.Reload == config.ReloadSession {
		return s.planner, nil
	}
	p, err := s.cli.loadPlanner(ctx)
	if err != nil {
		return nil, err
	}
	s.planner = p
	return p, nil
}

func (c *CLI) runExplore(ctx context.Context) error {
	logger := loggerFromContext(ctx)
	s := &session{cli: c}

	first, err := s.current(ctx)
	if err != nil {
		return err
	}
	printInfo("Loaded %s from %s", plural(first.Network.Len(), "line"), StyleHighlight.Render(c.Config.Lines))
	printDetail("reload: %s", c.Config.Reload)
	printNewline()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, err := runMenu(ctx)
		if err != nil {
			return err
		}
		if action == actionQuit {
			return nil
		}

		p, err := s.current(ctx)
		if err != nil {
			logger.Error("load lines", "err", err)
			continue
		}

		if err := c.exploreAction(ctx, action, p); err != nil {
			printError("%s", errors.UserMessage(err))
		}
		printNewline()
	}
}

func (c *CLI) exploreAction(ctx context.Context, action menuAction, p *route.Planner) error {
	switch action {
	case actionRoute:
		start, ok, err := pickStation(ctx, "Start station:", p.Index.Stations())
		if err != nil || !ok {
			return err
		}
		end, ok, err := pickStation(ctx, "End station:", p.Index.Stations())
		if err != nil || !ok {
			return err
		}
		res := findRoute(ctx, p, start, end)
		if err := resultError(res, p.Index, start, end); err != nil {
			return err
		}
		fmt.Print(narrate(res.Route))
		fmt.Println(summarize(res.Route))

	case actionLines:
		fmt.Println(linesTable(p))

	case actionStation:
		name, ok, err := pickStation(ctx, "Station:", p.Index.Stations())
		if err != nil || !ok {
			return err
		}
		fmt.Println(stationTable(name, p))

	case actionTransfers:
		if len(p.Index.TransferStations()) == 0 {
			printWarning("No transfer stations")
			return nil
		}
		fmt.Println(transfersTable(p.Index))
	}
	return nil
}

func runMenu(ctx context.Context) (menuAction, error) {
	final, err := tea.NewProgram(NewMenuModel("metronav"), tea.WithContext(ctx)).Run()
	if err != nil {
		return actionQuit, err
	}
	m, ok := final.(MenuModel)
	if !ok || m.Selected == nil {
		return actionQuit, nil
	}
	return *m.Selected, nil
}

// pickStation runs a station picker. ok is false when the user canceled.
func pickStation(ctx context.Context, prompt string, stations []string) (string, bool, error) {
	final, err := tea.NewProgram(NewStationPickerModel(prompt, stations), tea.WithContext(ctx)).Run()
	if err != nil {
		return "", false, err
	}
	m, ok := final.(StationPickerModel)
	if !ok || m.Canceled || m.Selected == "" {
		printDetail("No selection made")
		return "", false, nil
	}
	printKeyValue(prompt, m.Selected)
	return m.Selected, true, nil
}
