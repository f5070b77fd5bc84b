package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"weathertrack/internal/client"
	"weathertrack/internal/config"
	"weathertrack/internal/weather"
)

var serverURL string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "weatherctl",
	Short: "Interactive client for the weathertrack API",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive weather-location manager",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		base := cfg.ServerURL
		if serverURL != "" {
			base = serverURL
		}

		api := client.NewAPIClient(base)
		provider := weather.NewClient(cfg.OpenWeatherAPIKey)

		menu := client.NewMenu(api, provider, os.Stdin, os.Stdout)
		menu.Run(context.Background())
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&serverURL, "server", "", "base URL of the weathertrack server (default from SERVER_URL)")
	rootCmd.AddCommand(runCmd)
}
