package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check server status",
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	status, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		printJSON(status)
		return nil
	}

	fmt.Printf("mediateca v%s | Server: %s | Status: %s\n\n", status.Version, serverURL, status.Status)
	fmt.Println("Library")
	fmt.Printf("  Movies: %d\n", status.Library.Movies)
	fmt.Printf("  Series: %d\n", status.Library.Series)
	fmt.Printf("  Albums: %d\n", status.Library.Music)
	return nil
}
