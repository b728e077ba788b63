package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LaurentChen88/outil-sncf/internal/ports"
	"github.com/LaurentChen88/outil-sncf/internal/services"
)

var (
	bikeFrom     string
	bikeTo       string
	bikeProfile  string
	bikeType     string
	bikeSpeed    int
	bikeEBike    bool
	bikeGeometry bool
)

var bikeCmd = &cobra.Command{
	Use:   "bike",
	Short: "Plan bike routes between two addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps()
		if err != nil {
			return err
		}

		details := ports.BikeDetails{
			Profile:      d.cfg.Bike.Profile,
			BikeType:     d.cfg.Bike.BikeType,
			AverageSpeed: d.cfg.Bike.AverageSpeed,
			EBike:        d.cfg.Bike.EBike,
		}
		if bikeProfile != "" {
			details.Profile = bikeProfile
		}
		if bikeType != "" {
			details.BikeType = bikeType
		}
		if bikeSpeed > 0 {
			details.AverageSpeed = bikeSpeed
		}
		if bikeEBike {
			details.EBike = true
		}

		result, err := services.PlanBikeRoutes(cmd.Context(), services.BikeTripRequest{
			FromAddress:  bikeFrom,
			ToAddress:    bikeTo,
			Bike:         details,
			WithGeometry: bikeGeometry,
		}, d.geocoder, d.prim)
		if err != nil {
			if errors.Is(err, ports.ErrNoMatch) {
				fmt.Printf("Warning: %v\n", err)
				return nil
			}
			return err
		}

		if len(result.Itineraries) == 0 {
			fmt.Println("No route found.")
			return nil
		}

		for _, it := range result.Itineraries {
			fmt.Println(it.Summary)
			if it.RecommendedRoads != "" {
				fmt.Printf("  recommended roads: %s, discouraged roads: %s\n", it.RecommendedRoads, it.DiscouragedRoads)
			}
			for _, s := range it.Sections {
				geom := "no geometry available"
				if s.HasGeometry {
					geom = fmt.Sprintf("%d points", len(s.Geometry))
				}
				fmt.Printf("  - %s (%s), %s\n", s.Label, services.FormatDuration(s.DurationSeconds), geom)
			}
		}
		return nil
	},
}

func init() {
	bikeCmd.Flags().StringVarP(&bikeFrom, "from", "f", "", "departure address")
	bikeCmd.Flags().StringVarP(&bikeTo, "to", "t", "", "arrival address")
	bikeCmd.Flags().StringVar(&bikeProfile, "profile", "", "rider profile (MEDIAN, FAST, SLOW)")
	bikeCmd.Flags().StringVar(&bikeType, "bike-type", "", "bike type (TRADITIONAL, ELECTRIC)")
	bikeCmd.Flags().IntVar(&bikeSpeed, "speed", 0, "average speed in km/h")
	bikeCmd.Flags().BoolVar(&bikeEBike, "ebike", false, "electric assist")
	bikeCmd.Flags().BoolVar(&bikeGeometry, "geometry", false, "request section geometry")
	bikeCmd.MarkFlagRequired("from")
	bikeCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(bikeCmd)
}
