package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	tvCmd := &cobra.Command{
		Use:   "tv",
		Short: "Browse live TV channels",
	}

	channelsCmd := &cobra.Command{
		Use:   "channels",
		Short: "List live TV channels",
		RunE:  runTVChannels,
	}
	channelsCmd.Flags().StringP("country", "c", "", "Filter by country code (e.g. ES)")

	countriesCmd := &cobra.Command{
		Use:   "countries",
		Short: "List countries with channels",
		RunE:  runTVCountries,
	}

	tvCmd.AddCommand(channelsCmd)
	tvCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(tvCmd)
}

func runTVChannels(cmd *cobra.Command, args []string) error {
	country, _ := cmd.Flags().GetString("country")

	client := NewClient(serverURL)
	data, err := client.Channels(country)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(data)
		return nil
	}

	if len(data.Items) == 0 {
		fmt.Println("No channels available.")
		return nil
	}

	fmt.Printf("Channels (%d):\n\n", data.Total)
	fmt.Printf("  %-20s %-30s %s\n", "ID", "NAME", "COUNTRY")
	fmt.Println("  " + strings.Repeat("-", 60))
	for i := range data.Items {
		ch := &data.Items[i]
		name := ch.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		fmt.Printf("  %-20s %-30s %s\n", ch.ID, name, ch.Country)
	}
	return nil
}

func runTVCountries(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	countries, err := client.Countries()
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(countries)
		return nil
	}

	if len(countries) == 0 {
		fmt.Println("No channels available.")
		return nil
	}

	fmt.Println(strings.Join(countries, "\n"))
	return nil
}
