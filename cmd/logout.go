package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joinme/admin-tui/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored operator session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if !cfg.HasToken() {
			fmt.Println("No session stored.")
			return nil
		}
		if err := cfg.ClearToken(); err != nil {
			return fmt.Errorf("error clearing token: %w", err)
		}
		fmt.Println("Session cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
