package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the content catalog",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog content",
		RunE:  runLibraryList,
	}
	listCmd.Flags().StringP("type", "t", "", "Filter by type (movie, series, music)")
	listCmd.Flags().StringP("query", "q", "", "Search title, artist, and genre")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one catalog record",
		Args:  cobra.ExactArgs(1),
		RunE:  runLibraryShow,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete content from the catalog",
		Long:  "Removes the record and its favorites and resume positions. Does not delete media files.",
		Args:  cobra.ExactArgs(1),
		RunE:  runLibraryDelete,
	}

	addMovieCmd := &cobra.Command{
		Use:   "add-movie",
		Short: "Add a movie to the catalog",
		RunE:  runLibraryAddMovie,
	}
	addMovieCmd.Flags().String("title", "", "Title (required)")
	addMovieCmd.Flags().String("url", "", "Playable URL")
	addMovieCmd.Flags().String("genre", "", "Genre")
	addMovieCmd.Flags().Int("year", 0, "Release year")
	addMovieCmd.Flags().String("description", "", "Description")
	addMovieCmd.Flags().String("image", "", "Poster image URL (placeholder when omitted)")
	_ = addMovieCmd.MarkFlagRequired("title")

	addEpisodeCmd := &cobra.Command{
		Use:   "add-episode",
		Short: "Append an episode to a series",
		Long:  "Appends an episode to an existing series, or creates a new series with --series new.",
		RunE:  runLibraryAddEpisode,
	}
	addEpisodeCmd.Flags().String("series", "", "Series ID, or 'new' to create one (required)")
	addEpisodeCmd.Flags().String("episode-title", "", "Episode title (required)")
	addEpisodeCmd.Flags().String("url", "", "Playable URL")
	addEpisodeCmd.Flags().String("title", "", "Series title, for new series")
	addEpisodeCmd.Flags().String("genre", "", "Genre, for new series")
	addEpisodeCmd.Flags().Int("year", 0, "Year, for new series")
	addEpisodeCmd.Flags().String("description", "", "Description, for new series")
	addEpisodeCmd.Flags().String("image", "", "Poster image URL, for new series")
	_ = addEpisodeCmd.MarkFlagRequired("series")
	_ = addEpisodeCmd.MarkFlagRequired("episode-title")

	addTrackCmd := &cobra.Command{
		Use:   "add-track",
		Short: "Append a track to a music album",
		Long:  "Appends a track to an existing album, or creates a new album with --album new (requires --artist).",
		RunE:  runLibraryAddTrack,
	}
	addTrackCmd.Flags().String("album", "", "Album ID, or 'new' to create one (required)")
	addTrackCmd.Flags().String("track-title", "", "Track title (required)")
	addTrackCmd.Flags().String("url", "", "Playable URL")
	addTrackCmd.Flags().String("title", "", "Album title, for new albums")
	addTrackCmd.Flags().String("artist", "", "Artist, required for new albums")
	addTrackCmd.Flags().String("genre", "", "Genre, for new albums")
	addTrackCmd.Flags().Int("year", 0, "Year, for new albums")
	addTrackCmd.Flags().String("description", "", "Description, for new albums")
	addTrackCmd.Flags().String("image", "", "Cover image URL, for new albums")
	_ = addTrackCmd.MarkFlagRequired("album")
	_ = addTrackCmd.MarkFlagRequired("track-title")

	libraryCmd.AddCommand(listCmd)
	libraryCmd.AddCommand(showCmd)
	libraryCmd.AddCommand(deleteCmd)
	libraryCmd.AddCommand(addMovieCmd)
	libraryCmd.AddCommand(addEpisodeCmd)
	libraryCmd.AddCommand(addTrackCmd)
	rootCmd.AddCommand(libraryCmd)
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	typeFilter, _ := cmd.Flags().GetString("type")
	query, _ := cmd.Flags().GetString("query")

	client := NewClient(serverURL)
	data, err := client.ListContent(typeFilter, query)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(data)
		return nil
	}

	if len(data.Items) == 0 {
		fmt.Println("No content found.")
		if len(data.Suggestions) > 0 {
			fmt.Printf("Did you mean: %s\n", strings.Join(data.Suggestions, ", "))
		}
		return nil
	}

	printLibraryList(data)
	return nil
}

func printLibraryList(data *ListContentResponse) {
	fmt.Printf("Catalog (%d items):\n\n", data.Total)
	fmt.Printf("  %-14s %-7s %-40s %-6s %s\n", "ID", "TYPE", "TITLE", "YEAR", "GENRE")
	fmt.Println("  " + strings.Repeat("-", 80))

	for i := range data.Items {
		item := &data.Items[i]
		title := item.Title
		if item.Artist != "" {
			title = item.Artist + " - " + title
		}
		if len(title) > 40 {
			title = title[:37] + "..."
		}

		fmt.Printf("  %-14s %-7s %-40s %-6d %s\n",
			item.ID,
			item.Type,
			title,
			item.Year,
			item.Genre)
	}
}

func runLibraryShow(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	content, err := client.GetContent(args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(content)
		return nil
	}

	printContent(content)
	return nil
}

func printContent(c *ContentResponse) {
	fmt.Printf("%s (%d) [%s, %s]\n", c.Title, c.Year, c.ID, c.Type)
	if c.Artist != "" {
		fmt.Printf("  Artist: %s\n", c.Artist)
	}
	if c.Genre != "" {
		fmt.Printf("  Genre:  %s\n", c.Genre)
	}
	if c.Description != "" {
		fmt.Printf("  %s\n", c.Description)
	}
	if c.URL != "" {
		fmt.Printf("  URL: %s\n", c.URL)
	}

	printEntries("Episodes", c.Episodes)
	printEntries("Tracks", c.Tracks)
}

func printEntries(label string, entries []EntryResponse) {
	if len(entries) == 0 {
		return
	}
	fmt.Printf("  %s (%d):\n", label, len(entries))
	for i, e := range entries {
		fmt.Printf("    %2d. %s\n", i+1, e.Title)
	}
}

func runLibraryDelete(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	// Fetch first so the confirmation names what was removed
	content, err := client.GetContent(args[0])
	if err != nil {
		return err
	}

	if err := client.DeleteContent(args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted: %s [%s]\n", content.Title, content.ID)
	return nil
}

func runLibraryAddMovie(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	mediaURL, _ := cmd.Flags().GetString("url")
	genre, _ := cmd.Flags().GetString("genre")
	year, _ := cmd.Flags().GetInt("year")
	description, _ := cmd.Flags().GetString("description")
	image, _ := cmd.Flags().GetString("image")

	client := NewClient(serverURL)
	content, err := client.AddContent(&AddContentRequest{
		Type:        "movie",
		Title:       title,
		URL:         mediaURL,
		Genre:       genre,
		Year:        year,
		Description: description,
		ImageURL:    image,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(content)
		return nil
	}

	fmt.Printf("Added: %s [%s]\n", content.Title, content.ID)
	return nil
}

func runLibraryAddEpisode(cmd *cobra.Command, args []string) error {
	seriesID, _ := cmd.Flags().GetString("series")
	episodeTitle, _ := cmd.Flags().GetString("episode-title")
	mediaURL, _ := cmd.Flags().GetString("url")
	title, _ := cmd.Flags().GetString("title")
	genre, _ := cmd.Flags().GetString("genre")
	year, _ := cmd.Flags().GetInt("year")
	description, _ := cmd.Flags().GetString("description")
	image, _ := cmd.Flags().GetString("image")

	client := NewClient(serverURL)
	content, err := client.AddContent(&AddContentRequest{
		Type:         "episode",
		SeriesID:     seriesID,
		EpisodeTitle: episodeTitle,
		URL:          mediaURL,
		Title:        title,
		Genre:        genre,
		Year:         year,
		Description:  description,
		ImageURL:     image,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(content)
		return nil
	}

	fmt.Printf("Added episode %q to %s [%s] (%d episodes)\n",
		episodeTitle, content.Title, content.ID, len(content.Episodes))
	return nil
}

func runLibraryAddTrack(cmd *cobra.Command, args []string) error {
	albumID, _ := cmd.Flags().GetString("album")
	trackTitle, _ := cmd.Flags().GetString("track-title")
	mediaURL, _ := cmd.Flags().GetString("url")
	title, _ := cmd.Flags().GetString("title")
	artist, _ := cmd.Flags().GetString("artist")
	genre, _ := cmd.Flags().GetString("genre")
	year, _ := cmd.Flags().GetInt("year")
	description, _ := cmd.Flags().GetString("description")
	image, _ := cmd.Flags().GetString("image")

	client := NewClient(serverURL)
	content, err := client.AddContent(&AddContentRequest{
		Type:        "track",
		AlbumID:     albumID,
		TrackTitle:  trackTitle,
		URL:         mediaURL,
		Title:       title,
		Artist:      artist,
		Genre:       genre,
		Year:        year,
		Description: description,
		ImageURL:    image,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(content)
		return nil
	}

	fmt.Printf("Added track %q to %s [%s] (%d tracks)\n",
		trackTitle, content.Title, content.ID, len(content.Tracks))
	return nil
}
