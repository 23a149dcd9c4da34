package cmd

import (
	"fmt"
	"io"
	"os"

	config "github.com/inference-gateway/keybinds/config"
	cobra "github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage keybinds configuration",
	Long:  `Show or initialize the keybinds configuration file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after applying defaults, the config file and KEYBINDS_* environment variables.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromViper()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return writeConfig(cmd.OutOrStdout(), cfg)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new project configuration",
	Long: `Initialize a new .keybinds/config.yaml configuration file in the current directory.
This creates a local project configuration with default settings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		return initConfigFile(cmd.OutOrStdout(), configPath, overwrite)
	},
}

func init() {
	configInitCmd.Flags().Bool("overwrite", false, "Overwrite an existing configuration file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func writeConfig(w io.Writer, cfg *config.Config) error {
	data, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func initConfigFile(w io.Writer, configPath string, overwrite bool) error {
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}

	if _, err := os.Stat(configPath); err == nil && !overwrite {
		return fmt.Errorf("configuration file %s already exists (use --overwrite to replace)", configPath)
	}

	if err := config.DefaultConfig().SaveConfig(configPath); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	_, _ = fmt.Fprintf(w, "Successfully created %s\n", configPath)
	_, _ = fmt.Fprintln(w, "You can now customize the configuration for this project.")
	return nil
}
