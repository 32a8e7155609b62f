package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/joinme/admin-tui/internal/app"
	"github.com/joinme/admin-tui/internal/clipboard"
	"github.com/joinme/admin-tui/internal/config"
	"github.com/joinme/admin-tui/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	apiBaseURL            string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "joinme-admin",
	Short: "Terminal admin console for the JoinMe platform",
	Long: `joinme-admin is a terminal console for administering the JoinMe
social/event platform: browse and delete events, users and chats, and
inspect platform statistics, backed by the admin REST API.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&apiBaseURL, "api", "", "Admin API base URL (overrides the configured one)")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("joinme-admin %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("joinme-admin %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Load the session store synchronously so the first routing decision
	// never sees an unchecked store.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if apiBaseURL != "" {
		if err := cfg.SetAPIBaseURL(apiBaseURL); err != nil {
			return fmt.Errorf("error saving API base URL: %w", err)
		}
	}

	if err := clipboard.Init(); err != nil {
		logger.Warn("Clipboard unavailable: %v", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	// Create and run the app
	m := app.New(cfg, version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
