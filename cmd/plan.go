package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wasteflow/wasteflow/config"
	"github.com/wasteflow/wasteflow/core/dispatch"
	"github.com/wasteflow/wasteflow/core/distance"
	"github.com/wasteflow/wasteflow/core/fleet"
	"github.com/wasteflow/wasteflow/core/model"
	"github.com/wasteflow/wasteflow/infra/logger"
	"github.com/wasteflow/wasteflow/pkg/export"
)

var (
	planSnapshotPath string
	planFormat       string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a one-shot collection plan from a fleet registry file",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planSnapshotPath, "snapshot", "s", "", "fleet registry file (defaults to engine.fleet_file)")
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "json", "output format (json or csv)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	path := planSnapshotPath
	if path == "" {
		path = cfg.Engine.FleetFile
	}
	if path == "" {
		return fmt.Errorf("no fleet registry: pass --snapshot or set engine.fleet_file")
	}
	snap, err := fleet.LoadFile(path)
	if err != nil {
		return err
	}

	logg := logger.New("plan-command")
	provider := distance.NewStaticProvider(cfg.Engine.DistanceTable, cfg.Engine.DefaultDistanceKm)
	allocator := dispatch.NewAllocator(provider, nil, logg)
	manager := dispatch.NewPlanManager(allocator, nil, nil, nil, logg, cfg.Engine.Depot)

	plan, err := manager.GeneratePlan(model.PlanMode(cfg.Engine.Mode), snap.Bins, snap.Trucks)
	if err != nil {
		return err
	}
	switch planFormat {
	case "json":
		return export.WriteJSON(cmd.OutOrStdout(), plan)
	case "csv":
		return export.WriteCSV(cmd.OutOrStdout(), plan)
	default:
		return fmt.Errorf("unknown format %s", planFormat)
	}
}
