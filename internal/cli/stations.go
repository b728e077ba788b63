package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/LaurentChen88/outil-sncf/internal/ports"
	"github.com/LaurentChen88/outil-sncf/internal/services"
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "Show merged bike-share station availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps()
		if err != nil {
			return err
		}

		records, err := services.StationBoard(cmd.Context(), d.stations)
		if err != nil {
			if errors.Is(err, ports.ErrEmptyFeed) {
				fmt.Printf("Warning: %v\n", err)
				return nil
			}
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tBIKES\tMECHANICAL\tELECTRIC\tDOCKS")
		for _, rec := range records {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n",
				rec.StationID, rec.Name, rec.Bikes, rec.Mechanical, rec.Electric, rec.Docks)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(stationsCmd)
}
