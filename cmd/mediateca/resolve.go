package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Show which player surface a media URL gets",
	Long: `Classifies a media URL the way the player does.

Examples:
  mediateca resolve https://youtu.be/dQw4w9WgXcQ
  mediateca resolve https://cdn.example/movie.mp4
  mediateca resolve /files/holiday.mkv`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	result, err := client.Resolve(args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(result)
		return nil
	}

	fmt.Printf("Kind: %s\n", result.Kind)
	if result.EmbedURL != "" {
		fmt.Printf("Embed: %s\n", result.EmbedURL)
	}
	if result.MIME != "" {
		fmt.Printf("MIME: %s\n", result.MIME)
	}
	return nil
}
