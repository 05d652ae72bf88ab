package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/parley-chat/parley/internal/app"
	"github.com/parley-chat/parley/internal/clipboard"
	"github.com/parley-chat/parley/internal/config"
	"github.com/parley-chat/parley/internal/logger"
	"github.com/parley-chat/parley/internal/reply"
)

var (
	debugMode             bool
	quietMode             bool
	endpointFlag          string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Minimal TUI chat client",
	Long: `Parley is a terminal chat interface. Messages you type appear as
right-aligned bubbles; replies from the agent appear on the left. Replies
come from a built-in mock agent by default, or from an HTTP endpoint when
one is configured.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&endpointFlag, "endpoint", "", "Chat endpoint URL (uses the HTTP agent instead of the mock)")
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
		return fmt.Sprintf("parley %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("parley %s\n", version)
}

// selectProducer picks the reply producer for this run. An --endpoint flag
// wins, then an endpoint saved in the config, and the mock agent is the
// fallback so the app works with no setup at all.
func selectProducer(cfg *config.Config) reply.Producer {
	if endpointFlag != "" {
		return reply.NewHTTP(endpointFlag)
	}
	if endpoint := cfg.GetEndpoint(); endpoint != "" {
		return reply.NewHTTP(endpoint)
	}
	return reply.NewMock()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	// Clipboard may be unavailable in headless sessions
	if err := clipboard.Init(); err != nil {
		logger.Warn("Clipboard unavailable: %v", err)
	}

	m := app.New(cfg, selectProducer(cfg), version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
