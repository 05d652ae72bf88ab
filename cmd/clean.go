package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parley-chat/parley/internal/config"
	"github.com/parley-chat/parley/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the config file and debug logs",
	Long: `Removes the config file under ~/.parley and any debug log files.

It will prompt for confirmation before proceeding unless the --yes flag
is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader) error {
	configPath, err := config.Path()
	if err != nil {
		return fmt.Errorf("error resolving config path: %w", err)
	}

	configExists := false
	if _, err := os.Stat(configPath); err == nil {
		configExists = true
	}

	if !configExists {
		fmt.Println("Nothing to clean.")
		// Logs may still exist even without a config file
		if logsCleared, err := logger.ClearLogs(); err == nil && logsCleared > 0 {
			fmt.Printf("Removed %d log file(s).\n", logsCleared)
		}
		return nil
	}

	fmt.Println("This will remove:")
	fmt.Printf("  - %s\n", configPath)
	fmt.Println("  - All parley debug log files")

	if !skipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.Remove(configPath); err != nil {
		return fmt.Errorf("error removing config file: %w", err)
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Println()
	fmt.Println("Cleaned:")
	fmt.Println("  - Config file removed")
	if logsCleared > 0 {
		fmt.Printf("  - %d log file(s) removed\n", logsCleared)
	}

	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
