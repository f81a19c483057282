package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/metronav/metronav/internal/config"
	"github.com/metronav/metronav/pkg/buildinfo"
	"github.com/metronav/metronav/pkg/lines"
	"github.com/metronav/metronav/pkg/observability"
	"github.com/metronav/metronav/pkg/route"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completion scripts.
const appName = "metronav"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is the effective configuration after flag overrides. It is set
	// by the root command before any subcommand runs.
	Config config.Config

	configPath string
	flags      settingsFlags
}

// settingsFlags are the persistent flags that override config values.
type settingsFlags struct {
	lines           string
	reload          string
	allowDuplicates bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Metronav finds the fewest-hop route through a metro network",
		Long: `Metronav finds routes through a metro network described as ordered station lists,
one list per line. Riding to the next station and changing line at a station
each count as one hop; the route with the fewest hops wins.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/metronav/config.toml)")
	pf.StringVarP(&c.flags.lines, "lines", "l", "", "lines directory or network file (.yaml, .toml, .json)")
	pf.StringVar(&c.flags.reload, "reload", "", "when explore rereads the lines: query or session")
	pf.BoolVar(&c.flags.allowDuplicates, "allow-duplicates", false, "accept lines that list a station twice")

	// Register all subcommands
	root.AddCommand(c.routeCommand())
	root.AddCommand(c.linesCommand())
	root.AddCommand(c.lineCommand())
	root.AddCommand(c.stationCommand())
	root.AddCommand(c.transfersCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file, applies flag overrides, and attaches the
// logger and observability hooks.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := c.resolveConfig(cmd)
	if err != nil {
		return err
	}
	c.Config = cfg

	flags := cmd.Flags()
	if !flags.Changed("verbose") && cfg.LogLevel != "" {
		if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
			c.SetLogLevel(level)
		}
	}

	hooks := logHooks{logger: c.Logger}
	observability.SetLoadHooks(hooks)
	observability.SetSearchHooks(hooks)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// resolveConfig reads the config file and applies the flags set on cmd.
func (c *CLI) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("lines") {
		cfg.Lines = c.flags.lines
	}
	if flags.Changed("reload") {
		cfg.Reload = c.flags.reload
	}
	if flags.Changed("allow-duplicates") {
		cfg.AllowDuplicateStations = c.flags.allowDuplicates
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// =============================================================================
// Network Loading
// =============================================================================

// loadPlanner reads the configured lines source and prepares a planner over
// it. Every call rereads the source.
func (c *CLI) loadPlanner(ctx context.Context) (*route.Planner, error) {
	logger := loggerFromContext(ctx)
	src := c.Config.Lines

	observability.Load().OnLoadStart(ctx, src)
	start := time.Now()
	n, err := lines.Load(src, lines.Options{AllowDuplicateStations: c.Config.AllowDuplicateStations})
	count := 0
	if n != nil {
		count = n.Len()
	}
	observability.Load().OnLoadComplete(ctx, src, count, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if n.Len() == 0 {
		logger.Warn("no lines found", "source", src)
	}

	start = time.Now()
	p := route.NewPlanner(n)
	observability.Load().OnGraphBuilt(ctx, p.Graph.StateCount(), p.Graph.EdgeCount(), time.Since(start))
	return p, nil
}

// findRoute runs a search on p and reports it to the search hooks.
func findRoute(ctx context.Context, p *route.Planner, start, end string) route.Result {
	observability.Search().OnSearchStart(ctx, start, end)
	t := time.Now()
	res := p.Find(start, end)
	hops := -1
	if res.Found() {
		hops = res.Route.Hops()
	}
	observability.Search().OnSearchComplete(ctx, start, end, res.Status.String(), hops, time.Since(t))
	return res
}
