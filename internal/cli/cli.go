// Package cli implements the routectl command-line interface.
//
// routectl talks to the grid routing backend directly through the same
// RouteClient the gateway uses. Every command prints a single JSON document
// to stdout; logs go to stderr.
//
// # Commands
//
//   - snap: resolve a coordinate to the nearest network node
//   - route: shortest path between two node ids
//   - journey: snap two coordinates and route between them
//
// The backend address comes from --base-url, then the TOML file passed with
// --config, then ROUTING_BASE_URL, then the built-in default.
package cli

import (
	"encoding/json"
	"fmt"
	"grid-route-client/internal/adapters/routing"
	"grid-route-client/internal/config"
	"grid-route-client/internal/platform/obs"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer

	baseURL    string
	configPath string
	timeout    time.Duration
	timeoutSet bool
	verbose    bool
}

// New creates a CLI writing results to out and logs to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(errOut, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		out: out,
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "routectl",
		Short:         "Query a grid routing backend",
		Long:          `routectl snaps coordinates to the routable network and fetches shortest paths from a grid routing backend.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.timeoutSet = cmd.Flags().Changed("timeout")
			if c.verbose {
				c.Logger.SetLevel(LogDebug)
			}
			obs.SetLogger(c.Logger)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.baseURL, "base-url", "", "routing backend base URL (default from config or "+routing.DefaultBaseURL+")")
	pf.StringVar(&c.configPath, "config", "", "path to a TOML config file")
	pf.DurationVar(&c.timeout, "timeout", 0, "request timeout (overrides config; 0 disables it)")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.snapCommand())
	root.AddCommand(c.routeCommand())
	root.AddCommand(c.journeyCommand())

	return root
}

// newClient builds a RouteClient from flags layered over config.
func (c *CLI) newClient() (*routing.RouteClient, error) {
	cfg, err := config.Load(c.configPath, c.applyFlags)
	if err != nil {
		return nil, err
	}

	c.Logger.Debug("routing backend", "base_url", cfg.BaseURL, "timeout", cfg.Timeout)

	return routing.NewRouteClient(
		cfg.BaseURL,
		routing.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		routing.WithUserAgent("routectl/1.0"),
	)
}

// applyFlags layers explicitly set flags over the loaded config.
func (c *CLI) applyFlags(cfg *config.Config) {
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	if c.timeoutSet {
		cfg.TimeoutRaw = c.timeout.String()
	}
}

func (c *CLI) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
