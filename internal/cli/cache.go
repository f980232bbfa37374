package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rustbrew/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the cached catalog snapshot",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheInfoCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the cached catalog snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newUI(cmd.OutOrStdout())
			snap := c.newSnapshot()

			removed, err := snap.Remove()
			if err != nil {
				return err
			}
			if !removed {
				out.printInfo("Cache is empty")
				return nil
			}
			out.printSuccess("Removed catalog snapshot")
			out.printDetail("File: %s", snap.Path())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the catalog snapshot path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), c.newSnapshot().Path())
			return err
		},
	}
}

// cacheInfoCommand creates the "cache info" subcommand.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the age and freshness of the catalog snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newUI(cmd.OutOrStdout())
			snap := c.newSnapshot()

			st, err := snap.Status()
			if err != nil {
				return err
			}
			out.printKeyValue("config", c.configSource())
			out.printKeyValue("file", snap.Path())
			out.printKeyValue("endpoint", c.Config.Endpoint)
			out.printKeyValue("max age", snap.MaxAge().String())
			if !st.Exists {
				out.printKeyValue("status", "missing")
				return nil
			}
			out.printKeyValue("modified", st.ModTime.Format(time.RFC3339))
			out.printKeyValue("age", st.Age.Round(time.Second).String())
			out.printKeyValue("size", fmt.Sprintf("%d bytes", st.Size))
			out.printState("status", st.Fresh)
			return nil
		},
	}
}

// configSource names the config file in effect, or the default location
// when none was found.
func (c *CLI) configSource() string {
	if c.Config.Source != "" {
		return c.Config.Source
	}
	return config.DefaultPath() + " (not found, using defaults)"
}
