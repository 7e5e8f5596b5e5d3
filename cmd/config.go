package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bridgeout/internal/app"
	"bridgeout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := app.GetAppFromContext(cmd.Context()).Config

		fmt.Println(titleStyle.Render("Configuration"))
		fmt.Printf("%s %s\n", labelStyle.Render("Config File:"), config.GetConfigPath())
		fmt.Printf("%s %s\n", labelStyle.Render("Model:"), cfg.Model)
		fmt.Printf("%s %s\n", labelStyle.Render("Base URL:"), cfg.BaseURL)
		fmt.Printf("%s %ds\n", labelStyle.Render("Timeout:"), cfg.TimeoutSeconds)
		fmt.Printf("%s %d\n", labelStyle.Render("Max Output Tokens:"), cfg.MaxOutputTokens)
		fmt.Printf("%s %t\n", labelStyle.Render("Search Grounding:"), cfg.Grounding)

		// Show whether the key is configured, never the key itself.
		if cfg.GeminiAPIKey != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Gemini Key:"), "✓ Configured")
		} else {
			fmt.Printf("%s %s\n", labelStyle.Render("Gemini Key:"), "✗ Not configured")
		}
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  bridgeout config set --key gemini_api_key --value AIza...
  bridgeout config set --key model --value gemini-2.5-flash
  bridgeout config set --key grounding --value false`,
	Run: func(cmd *cobra.Command, args []string) {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			fmt.Println("Both --key and --value are required")
			return
		}

		validKeys := []string{"gemini_api_key", "model", "base_url", "timeout_seconds", "max_output_tokens", "grounding", "debug"}
		valid := false
		for _, k := range validKeys {
			if k == key {
				valid = true
				break
			}
		}
		if !valid {
			fmt.Printf("Invalid key. Must be one of: %v\n", validKeys)
			return
		}

		if err := config.Set(key, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating config: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✓ Configuration updated: %s\n", key)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)

	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "Configuration value")
}
