package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LaurentChen88/outil-sncf/internal/domain"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
	"github.com/LaurentChen88/outil-sncf/internal/services"
)

var (
	journeyFrom string
	journeyTo   string
)

var journeyCmd = &cobra.Command{
	Use:   "journey",
	Short: "Plan public-transport itineraries between two addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps()
		if err != nil {
			return err
		}

		result, err := services.PlanJourneys(cmd.Context(), services.JourneyRequest{
			FromAddress: journeyFrom,
			ToAddress:   journeyTo,
		}, d.geocoder, d.prim)
		if err != nil {
			if errors.Is(err, ports.ErrNoMatch) {
				fmt.Printf("Warning: %v\n", err)
				return nil
			}
			return err
		}

		if len(result.Itineraries) == 0 {
			fmt.Println("No itinerary found.")
			return nil
		}

		printItineraries(result.Itineraries)
		return nil
	},
}

func init() {
	journeyCmd.Flags().StringVarP(&journeyFrom, "from", "f", "", "departure address")
	journeyCmd.Flags().StringVarP(&journeyTo, "to", "t", "", "arrival address")
	journeyCmd.MarkFlagRequired("from")
	journeyCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(journeyCmd)
}

func printItineraries(its []domain.Itinerary) {
	for _, it := range its {
		fmt.Println(it.Summary)
		for _, s := range it.Sections {
			line := fmt.Sprintf("  - %s: %s (%s)", s.Kind, s.Label, services.FormatDuration(s.DurationSeconds))
			if s.Direction != "" {
				line += fmt.Sprintf(" direction %s, +%d m / -%d m", s.Direction, s.VerticalGainM, s.VerticalLossM)
			}
			fmt.Println(line)
		}
	}
}
