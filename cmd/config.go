package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yeisme/jprof/pkg/configs"
)

var (
	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Manage jprof configuration",
		Long:    `jprof config allows you to view and validate your jprof configuration settings.`,
		Aliases: []string{"c"},
	}

	configValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate jprof configuration",
		Long:  `jprof config validate checks the validity of your configuration file and environment variables.`,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := jprofCtx.Viper.ReadInConfig(); err != nil {
				cmd.PrintErrf("Config file error: %v\n", err)
				os.Exit(1)
			}

			fileUsed := jprofCtx.Viper.ConfigFileUsed()
			if fileUsed == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No config file found, using defaults")
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config file OK: %s\n", fileUsed)
		},
		Aliases: []string{"check", "verify"},
	}

	configListCmd = &cobra.Command{
		Use:   "list [section]",
		Short: "List jprof configuration",
		Long: `jprof config list displays the current configuration settings.

You can specify a section to display only that part of the configuration:
  - app: Application settings
  - log: Logging settings
  - profile: Profiling settings
  - display: Display settings

Examples:
  jprof config list                # Show all configuration (viper raw data)
  jprof config list --all          # Show all configuration with defaults
  jprof config list profile        # Show only profiling settings
  jprof config list --format json  # Output in JSON format
  jprof config list --toml         # Output in TOML format (shorthand)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) > 0 {
				section = args[0]
			}

			format := configs.GetOutputFormatFromFlags(cmd)
			showAll, _ := cmd.Flags().GetBool("all")

			data, err := configs.GetConfigSection(jprofCtx.Viper, section, showAll)
			if err != nil {
				return fmt.Errorf("get config section: %w", err)
			}

			return configs.OutputData(data, format, cmd.OutOrStdout())
		},
		Aliases: []string{"ls", "show"},
	}
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configListCmd)

	configListCmd.Flags().StringP("format", "f", "", "output format: yaml, json, toml")
	configListCmd.Flags().Bool("json", false, "output in JSON format")
	configListCmd.Flags().Bool("toml", false, "output in TOML format")
	configListCmd.Flags().BoolP("all", "a", false, "show complete configuration including defaults")
}
