package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	favoritesCmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorite content",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List favorites",
		RunE:  runFavoritesList,
	}

	addCmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Mark content as a favorite",
		Args:  cobra.ExactArgs(1),
		RunE:  runFavoritesAdd,
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove content from favorites",
		Args:  cobra.ExactArgs(1),
		RunE:  runFavoritesRemove,
	}

	favoritesCmd.AddCommand(listCmd)
	favoritesCmd.AddCommand(addCmd)
	favoritesCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(favoritesCmd)
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	favorites, err := client.Favorites()
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(favorites)
		return nil
	}

	if len(favorites) == 0 {
		fmt.Println("No favorites.")
		return nil
	}

	for _, f := range favorites {
		content, err := client.GetContent(f.ContentID)
		if err != nil {
			fmt.Printf("  %s (unavailable)\n", f.ContentID)
			continue
		}
		fmt.Printf("  %-14s %s\n", content.ID, content.Title)
	}
	return nil
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	if err := client.Favorite(args[0]); err != nil {
		return err
	}
	fmt.Printf("Favorited %s\n", args[0])
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	if err := client.Unfavorite(args[0]); err != nil {
		return err
	}
	fmt.Printf("Unfavorited %s\n", args[0])
	return nil
}
