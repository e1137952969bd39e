package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wasteflow/wasteflow/core/fleet"
	"github.com/wasteflow/wasteflow/core/model"
)

var statsSnapshotPath string

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Fleet related commands",
}

var fleetStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize bins and trucks from a fleet registry file",
	RunE:  runFleetStats,
}

func init() {
	fleetStatsCmd.Flags().StringVarP(&statsSnapshotPath, "snapshot", "s", "snapshot.json", "fleet registry file")
	fleetCmd.AddCommand(fleetStatsCmd)
	rootCmd.AddCommand(fleetCmd)
}

func runFleetStats(cmd *cobra.Command, args []string) error {
	snap, err := fleet.LoadFile(statsSnapshotPath)
	if err != nil {
		return err
	}
	store := fleet.NewSnapshotStore()
	store.Seed(snap)
	stats := store.Stats()

	out := cmd.OutOrStdout()
	for _, status := range []model.BinStatus{model.StatusEmpty, model.StatusHalf, model.StatusFull, model.StatusPriority} {
		fmt.Fprintf(out, "bins %-8s %d\n", status, stats.BinsByStatus[status])
	}
	fmt.Fprintf(out, "trucks          %d\n", stats.Trucks)
	fmt.Fprintf(out, "trucks active   %d\n", stats.ActiveTrucks)
	return nil
}
