package main

import (
	"fmt"

	"github.com/philipparndt/gohabitat/pkg/analysis"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/spf13/cobra"
)

var (
	envRadius   float64
	envHeight   float64
	envWall     float64
	crewSize    int
	missionDays int
)

var envelopeCmd = &cobra.Command{
	Use:   "envelope <design.json>",
	Short: "Change cylinder dimensions, crew size or mission length",
	Long: `Change the envelope or mission of a design file in place. Values are
clamped to the editor ranges; flags that are not given keep their value.`,
	Args: cobra.ExactArgs(1),
	RunE: runEnvelope,
}

func init() {
	envelopeCmd.Flags().Float64Var(&envRadius, "radius", 0, "outer radius in meters")
	envelopeCmd.Flags().Float64Var(&envHeight, "height", 0, "height in meters")
	envelopeCmd.Flags().Float64Var(&envWall, "wall", 0, "wall thickness in meters")
	envelopeCmd.Flags().IntVar(&crewSize, "crew", 0, "crew size")
	envelopeCmd.Flags().IntVar(&missionDays, "days", 0, "mission length in days")
	rootCmd.AddCommand(envelopeCmd)
}

func runEnvelope(cmd *cobra.Command, args []string) error {
	s, err := loadOrDefault(args[0])
	if err != nil {
		return err
	}
	flags := cmd.Flags()

	env := s.Envelope
	if flags.Changed("radius") {
		env.RadiusM = envRadius
	}
	if flags.Changed("height") {
		env.HeightM = envHeight
	}
	if flags.Changed("wall") {
		env.WallThicknessM = envWall
	}
	mission := s.Mission
	if flags.Changed("crew") {
		mission.CrewSize = crewSize
	}
	if flags.Changed("days") {
		mission.MissionDays = missionDays
	}

	s, err = editDesign(args[0],
		habitat.SetEnvelope{RadiusM: env.RadiusM, HeightM: env.HeightM, WallThicknessM: env.WallThicknessM},
		habitat.SetMission{CrewSize: mission.CrewSize, MissionDays: mission.MissionDays},
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Envelope: radius %s, height %s, wall %s; crew %d for %d days\n",
		analysis.FormatMeasurement(s.Envelope.RadiusM, "m"),
		analysis.FormatMeasurement(s.Envelope.HeightM, "m"),
		analysis.FormatMeasurement(s.Envelope.WallThicknessM, "m"),
		s.Mission.CrewSize, s.Mission.MissionDays)
	return nil
}
