package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/philipparndt/gohabitat/pkg/analysis"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	zoneName    string
	zonePurpose string
	setName     string
	setPurpose  string
	zoneStart   float64
	zoneEnd     float64
	zoneColor   string
	levels      int
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List and edit the zones of a design file",
	Long: `Edit zones in place. Every edit reads the design, applies one action and
writes the design back. A missing design file starts from the configured
starter design.`,
}

var zonesListCmd = &cobra.Command{
	Use:   "list <design.json>",
	Short: "List zones with angles, area and volume",
	Args:  cobra.ExactArgs(1),
	RunE:  runZonesList,
}

var zonesAddCmd = &cobra.Command{
	Use:   "add <design.json>",
	Short: "Append a 60° zone after the last one",
	Args:  cobra.ExactArgs(1),
	RunE:  runZonesAdd,
}

var zonesRemoveCmd = &cobra.Command{
	Use:   "remove <design.json> <zone-id>",
	Short: "Remove a zone",
	Args:  cobra.ExactArgs(2),
	RunE:  runZonesRemove,
}

var zonesSetCmd = &cobra.Command{
	Use:   "set <design.json> <zone-id>",
	Short: "Change name, purpose, angles or color of a zone",
	Args:  cobra.ExactArgs(2),
	RunE:  runZonesSet,
}

var zonesPartitionCmd = &cobra.Command{
	Use:   "partition <design.json>",
	Short: "Stack zones on axial levels (rank = index mod levels)",
	Args:  cobra.ExactArgs(1),
	RunE:  runZonesPartition,
}

func init() {
	zonesAddCmd.Flags().StringVar(&zoneName, "name", "", "zone name (default \"Zone N\")")
	zonesAddCmd.Flags().StringVar(&zonePurpose, "purpose", "other", "zone purpose")

	zonesSetCmd.Flags().StringVar(&setName, "name", "", "new name")
	zonesSetCmd.Flags().StringVar(&setPurpose, "purpose", "", "new purpose")
	zonesSetCmd.Flags().Float64Var(&zoneStart, "start", 0, "start angle in compass degrees")
	zonesSetCmd.Flags().Float64Var(&zoneEnd, "end", 0, "end angle in compass degrees")
	zonesSetCmd.Flags().StringVar(&zoneColor, "color", "", "hex color, e.g. #4e79a7")

	zonesPartitionCmd.Flags().IntVarP(&levels, "levels", "n", 2, "number of axial levels")

	zonesCmd.AddCommand(zonesListCmd, zonesAddCmd, zonesRemoveCmd, zonesSetCmd, zonesPartitionCmd)
	rootCmd.AddCommand(zonesCmd)
}

// loadOrDefault reads path, falling back to the starter design when the
// file does not exist yet
func loadOrDefault(path string) (habitat.State, error) {
	s, err := habitat.LoadFile(path)
	if isNotExist(err) {
		logger.Info("design file does not exist, starting from defaults", zap.String("path", path))
		return cfg.InitialState(), nil
	}
	return s, err
}

// editDesign loads path, reduces actions into it and writes it back
func editDesign(path string, actions ...habitat.Action) (habitat.State, error) {
	s, err := loadOrDefault(path)
	if err != nil {
		return habitat.State{}, err
	}

	reducer := cfg.NewReducer()
	for _, a := range actions {
		s = reducer.Reduce(s, a)
		logger.Debug("action applied", zap.String("action", a.ActionName()))
	}

	if err := habitat.ExportFile(path, s); err != nil {
		return habitat.State{}, err
	}
	return s, nil
}

func runZonesList(cmd *cobra.Command, args []string) error {
	s, err := loadDesign(args)
	if err != nil {
		return err
	}
	m := habitat.ComputeMetrics(s)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPURPOSE\tSTART\tEND\tAREA\tVOLUME\tLEVEL")
	for i, z := range s.Zones {
		level := "-"
		if z.AxialRank != nil {
			level = fmt.Sprintf("%d", *z.AxialRank)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			z.ID, z.Name, z.Purpose,
			analysis.FormatAngle(z.Start), analysis.FormatAngle(z.End),
			analysis.FormatMeasurement(m.Zones[i].AreaM2, "m²"),
			analysis.FormatMeasurement(m.Zones[i].VolumeM3, "m³"),
			level)
	}
	return tw.Flush()
}

func runZonesAdd(cmd *cobra.Command, args []string) error {
	purpose, err := habitat.ParsePurpose(zonePurpose)
	if err != nil {
		return err
	}
	s, err := editDesign(args[0], habitat.AddZone{Name: zoneName, Purpose: purpose})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added zone %s\n", s.LastAddedID)
	return nil
}

func runZonesRemove(cmd *cobra.Command, args []string) error {
	path, id := args[0], args[1]
	s, err := loadOrDefault(path)
	if err != nil {
		return err
	}
	if _, _, ok := s.Zone(id); !ok {
		return fmt.Errorf("zone %q not found in %s", id, path)
	}
	if _, err := editDesign(path, habitat.RemoveZone{ID: id}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed zone %s\n", id)
	return nil
}

func runZonesSet(cmd *cobra.Command, args []string) error {
	path, id := args[0], args[1]
	flags := cmd.Flags()

	var actions []habitat.Action
	if flags.Changed("name") {
		actions = append(actions, habitat.UpdateZone{ID: id, Field: habitat.FieldName, Text: setName})
	}
	if flags.Changed("purpose") {
		if _, err := habitat.ParsePurpose(setPurpose); err != nil {
			return err
		}
		actions = append(actions, habitat.UpdateZone{ID: id, Field: habitat.FieldPurpose, Text: setPurpose})
	}
	if flags.Changed("color") {
		if !habitat.ValidColor(zoneColor) {
			return fmt.Errorf("invalid color %q", zoneColor)
		}
		actions = append(actions, habitat.UpdateZone{ID: id, Field: habitat.FieldColor, Text: zoneColor})
	}
	// Start before end: the end update then only has to clear the new start
	if flags.Changed("start") {
		actions = append(actions, habitat.UpdateZone{ID: id, Field: habitat.FieldStart, Number: zoneStart})
	}
	if flags.Changed("end") {
		actions = append(actions, habitat.UpdateZone{ID: id, Field: habitat.FieldEnd, Number: zoneEnd})
	}
	if len(actions) == 0 {
		return fmt.Errorf("nothing to change; use --name, --purpose, --start, --end or --color")
	}

	s, err := loadOrDefault(path)
	if err != nil {
		return err
	}
	if _, _, ok := s.Zone(id); !ok {
		return fmt.Errorf("zone %q not found in %s", id, path)
	}

	s, err = editDesign(path, actions...)
	if err != nil {
		return err
	}
	z, _, _ := s.Zone(id)
	fmt.Fprintf(cmd.OutOrStdout(), "Updated zone %s: %s (%s) %s to %s\n", z.ID, z.Name, z.Purpose,
		analysis.FormatAngle(z.Start), analysis.FormatAngle(z.End))
	return nil
}

func runZonesPartition(cmd *cobra.Command, args []string) error {
	if levels < 1 {
		return fmt.Errorf("levels must be at least 1, got %d", levels)
	}
	if _, err := editDesign(args[0], habitat.AutoPartition{N: levels}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Partitioned zones into %d level(s)\n", levels)
	return nil
}
