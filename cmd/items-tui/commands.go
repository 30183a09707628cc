package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/hy4ri/items-tui/internal/api"
	"github.com/hy4ri/items-tui/internal/config"
	"github.com/spf13/cobra"
)

const configTemplate = `# Items TUI Configuration
# Location: ~/.config/items-tui/config.yaml

server:
  # Root of the item collection API. ITEMS_TUI_SERVER and --server override it.
  base_url: %q
  # Per-request timeout
  timeout: %s

auth:
  # Sent as a bearer token when set. Most servers need none.
  # Prefer 'items-tui token set' or ITEMS_TUI_TOKEN over storing it here.
  api_token: ""

ui:
  # Desktop notification when a save or delete fails
  notifications: false
  # Render item notes as markdown
  markdown_notes: true
  # Append request and state logs to this file
  # debug_log: ~/.local/state/items-tui/debug.log
`

func newInitCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a template config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return createConfigTemplate(cmd, opts, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file without asking")
	return cmd
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate(cmd *cobra.Command, opts *options, force bool) error {
	out := cmd.OutOrStdout()

	path := opts.configPath
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	} else if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(out, "Config file already exists: %s\n", path)
		fmt.Fprint(out, "Overwrite? [y/N]: ")

		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	tmpl := fmt.Sprintf(configTemplate, api.DefaultBaseURL, api.DefaultTimeout)
	if err := os.WriteFile(path, []byte(tmpl), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Config file created: %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Set server.base_url to your item API")
	fmt.Fprintln(out, "  2. Run 'items-tui health' to check the connection")
	fmt.Fprintln(out, "  3. Run 'items-tui' to start")

	return nil
}

func newListCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			client, err := newClient(cfg)
			if err != nil {
				return err
			}

			items, err := client.ListItems()
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}
			return printItems(cmd, items)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the collection as JSON")
	return cmd
}

func printItems(cmd *cobra.Command, items []api.Item) error {
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "No items yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.ID, item.Status.Label(), item.Title)
	}
	return w.Flush()
}

func newHealthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server answers on its health endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			client, err := newClient(cfg)
			if err != nil {
				return err
			}

			if err := client.Health(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", client.HealthURL())
			return nil
		},
	}
}

func newTokenCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the optional API token",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <token>",
		Short: "Store the token in the system keyring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := config.SaveToken(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s.\n", src)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ClearToken(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Token removed.")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show where the token comes from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			_, src, err := config.LookupToken(cfg)
			if err != nil {
				return err
			}
			if src == config.SourceNone {
				fmt.Fprintln(cmd.OutOrStdout(), "No token configured. Requests are sent without authorization.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Token from %s.\n", src)
			return nil
		},
	})

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "items-tui version %s\n", version)
		},
	}
}
