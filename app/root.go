// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stockwatch-admin",
	Short: "StockWatch-Admin is a web-based management tool for the stock watchlist analyzer",
	Long: `StockWatch-Admin is a web-based management tool for the stock watchlist
analyzer that provides an easy-to-use interface for managing the watchlist,
API credentials, mail delivery and scheduled analysis runs.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
