package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daetec/vendas-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage database-backed settings such as fee rates",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured fee rate per payment method",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		for _, key := range domain.FeeSettingKeys {
			cmd.Printf("%-12s %s\n", key, settingsService.Get(cmd.Context(), key))
		}
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a setting value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		if err := settingsService.Set(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		cmd.Printf("Setting %s = %s\n", args[0], args[1])
		return nil
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get a setting value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		cmd.Println(settingsService.Get(cmd.Context(), args[0]))
		return nil
	},
}

var settingsFeesCmd = &cobra.Command{
	Use:   "fees",
	Short: "Show the parsed fee rate per payment method",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		for _, method := range domain.PaymentMethods {
			rate := settingsService.FeeRate(cmd.Context(), method)
			cmd.Printf("%-8s %.2f%%\n", method, rate)
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the application config file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configStore == nil {
			return errors.New("config store not configured")
		}
		cmd.Println(configStore.Path())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a config file value",
	Long: `Sets a value in the application config file. Known keys:

  database.dir  directory holding the SQLite database
  report.dir    default directory for written reports
  verbose       always log verbosely (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if configStore == nil {
			return errors.New("config store not configured")
		}
		var value any = args[1]
		switch args[1] {
		case "true":
			value = true
		case "false":
			value = false
		}
		if err := configStore.Set(args[0], value); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		cmd.Printf("Config %s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsFeesCmd)
	rootCmd.AddCommand(settingsCmd)

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
