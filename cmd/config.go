package cmd

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage blackjack settings",
	Long:  `Commands for viewing and changing the settings in your config file.`,
	// Reads without validating so bad settings can still be shown and fixed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.ReadConfig()
		if err != nil {
			return err
		}
		invalid := loaded.Validate()
		setup(cmd, loaded)
		if invalid != nil {
			logger.Warn("config file has invalid settings", "path", config.GetConfigFilePath(), "error", invalid)
		}
		return nil
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The group's pre-run has already read (and if needed created) the file
		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", config.GetConfigFilePath())
		if err := toml.NewEncoder(out).Encode(cfg); err != nil {
			return fmt.Errorf("error encoding config: %w", err)
		}
		return nil
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: fmt.Sprintf(`Set changes one setting and saves the config file.

Keys: %s`, strings.Join(config.Keys(), ", ")),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		updated, err := config.SetValue(args[0], args[1])
		if err != nil {
			return fmt.Errorf("error setting %s: %w", args[0], err)
		}
		cfg = updated
		logger.Info("config updated", "key", args[0], "value", args[1])

		fmt.Fprintf(cmd.OutOrStdout(), "%s set to: %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
