package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var spotStyle string

// spotsCmd manages the spot registry
var spotsCmd = &cobra.Command{
	Use:   "spots",
	Short: "List, add and delete saved fishing spots",
}

var spotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List preset and saved spots",
	Args:  cobra.NoArgs,
	RunE:  spotsList,
}

var spotsAddCmd = &cobra.Command{
	Use:   "add [name] [place or lat,lon]",
	Short: "Save a spot, geocoding the place",
	Long: `Saves a named spot. The position is resolved like a search: an existing
spot name, a "lat,lon" literal or a place name looked up on Open-Meteo.

Example:
  jiai-terminal spots add 走水 35.24,139.73 --style タイラバ`,
	Args: cobra.ExactArgs(2),
	RunE: spotsAdd,
}

var spotsDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a saved spot (presets cannot be deleted)",
	Args:  cobra.ExactArgs(1),
	RunE:  spotsDelete,
}

func init() {
	spotsAddCmd.Flags().StringVar(&spotStyle, "style", "", "Preferred fishing style for this spot")

	spotsCmd.AddCommand(spotsListCmd)
	spotsCmd.AddCommand(spotsAddCmd)
	spotsCmd.AddCommand(spotsDeleteCmd)
}

func spotsList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.spots.ListSpots(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLATITUDE\tLONGITUDE\tSTYLE\tPRESET")
	for _, s := range list {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%s\t%t\n", s.Name, s.Latitude, s.Longitude, s.Style, s.Preset)
	}
	return w.Flush()
}

func spotsAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	loc, err := a.geocoder.Geocode(ctx, args[1])
	if err != nil {
		return fmt.Errorf("resolving %q: %w", args[1], err)
	}

	spot, err := a.spots.CreateSpot(ctx, args[0], loc.Latitude, loc.Longitude, spotStyle)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%.4f, %.4f)\n", spot.Name, spot.Latitude, spot.Longitude)
	return nil
}

func spotsDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.spots.DeleteSpot(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return nil
}
