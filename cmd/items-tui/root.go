package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/items-tui/internal/api"
	"github.com/hy4ri/items-tui/internal/config"
	"github.com/hy4ri/items-tui/internal/tui"
	"github.com/hy4ri/items-tui/internal/tui/logic"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

type options struct {
	server     string
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "items-tui",
		Short:         "Terminal client for a REST item collection",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI against the default server
  items-tui

  # Point at another server
  items-tui --server http://localhost:9000

  # Scriptable commands
  items-tui list --json
  items-tui health
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.server, "server", "", "Server base URL (overrides config and "+config.EnvServer+")")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default ~/.config/items-tui/config.yaml)")

	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newHealthCmd(opts))
	cmd.AddCommand(newTokenCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the config file and applies environment and flag
// overrides, in that order.
func loadConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyEnv()
	if opts.server != "" {
		cfg.Server.BaseURL = opts.server
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newClient builds the API client for cfg.
func newClient(cfg *config.Config) (*api.Client, error) {
	token, err := config.GetToken(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}

	client := api.NewClient(cfg.Server.BaseURL, token)
	client.SetTimeout(cfg.Server.Timeout)
	return client, nil
}

// runTUI starts the main TUI application.
func runTUI(opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	logger, closer, err := logic.OpenDebugLog(cfg.UI.DebugLog)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	defer closer.Close()
	client.SetLogger(logger)

	app := tui.NewApp(client, cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
