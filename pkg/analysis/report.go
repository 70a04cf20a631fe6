// Package analysis turns design metrics and rule results into text reports.
package analysis

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/philipparndt/gohabitat/pkg/geometry"
	"github.com/philipparndt/gohabitat/pkg/habitat"
)

// Row is one label/value line of a report
type Row struct {
	Label string
	Value string
}

// Section is a titled group of rows
type Section struct {
	Title string
	Rows  []Row
}

// Report is the full analysis of a design
type Report struct {
	Metrics   habitat.Metrics
	Results   []habitat.RuleResult
	Sections  []Section
	Compliant bool
}

// Analyze computes metrics for s, runs rules against it and lays out the report
func Analyze(s habitat.State, rules ...habitat.Rule) Report {
	m := habitat.ComputeMetrics(s)
	results := habitat.RunChecks(s, rules...)

	r := Report{
		Metrics:   m,
		Results:   results,
		Compliant: habitat.AllPassed(results),
	}

	r.Sections = append(r.Sections, Section{
		Title: "Envelope",
		Rows: []Row{
			{"Radius", FormatMeasurement(s.Envelope.RadiusM, "m")},
			{"Height", FormatMeasurement(s.Envelope.HeightM, "m")},
			{"Wall thickness", FormatMeasurement(s.Envelope.WallThicknessM, "m")},
			{"Usable radius", FormatMeasurement(m.UsableRadiusM, "m")},
			{"Usable volume", FormatMeasurement(m.UsableVolumeM3, "m³")},
			{"Floor area", FormatMeasurement(m.FloorAreaM2, "m²")},
		},
	})

	r.Sections = append(r.Sections, Section{
		Title: "Mission",
		Rows: []Row{
			{"Crew", fmt.Sprintf("%d", s.Mission.CrewSize)},
			{"Duration", fmt.Sprintf("%d days", s.Mission.MissionDays)},
			{"Volume per crew", FormatMeasurement(m.UsableVolumeM3/float64(max(s.Mission.CrewSize, 1)), "m³")},
		},
	})

	zones := Section{Title: "Zones"}
	for i, z := range m.Zones {
		zone := s.Zones[i]
		label := z.Name
		if zone.AxialRank != nil {
			label = fmt.Sprintf("%s [level %d]", label, *zone.AxialRank)
		}
		zones.Rows = append(zones.Rows, Row{
			Label: label,
			Value: fmt.Sprintf("%s to %s, %s, %s (%s)",
				FormatAngle(zone.Start), FormatAngle(zone.End),
				FormatMeasurement(z.AreaM2, "m²"), FormatMeasurement(z.VolumeM3, "m³"), z.Purpose),
		})
	}
	zones.Rows = append(zones.Rows,
		Row{"Total area", FormatMeasurement(m.TotalAreaM2, "m²")},
		Row{"Total volume", FormatMeasurement(m.TotalVolumeM3, "m³")},
	)
	r.Sections = append(r.Sections, zones)

	if byPurpose := m.AreaByPurpose(); len(byPurpose) > 0 {
		purposes := make([]habitat.Purpose, 0, len(byPurpose))
		for p := range byPurpose {
			purposes = append(purposes, p)
		}
		sort.Slice(purposes, func(i, j int) bool { return purposes[i] < purposes[j] })

		section := Section{Title: "Area by purpose"}
		for _, p := range purposes {
			section.Rows = append(section.Rows, Row{p.String(), FormatMeasurement(byPurpose[p], "m²")})
		}
		r.Sections = append(r.Sections, section)
	}

	checks := Section{Title: "Rules"}
	for _, res := range results {
		checks.Rows = append(checks.Rows, Row{Label: res.Rule, Value: FormatResult(res)})
	}
	r.Sections = append(r.Sections, checks)

	return r
}

// FormatResult renders a rule result as "PASS message" or "FAIL message"
func FormatResult(res habitat.RuleResult) string {
	status := "FAIL"
	if res.Passed {
		status = "PASS"
	}
	return status + " " + res.Message
}

// WriteText writes the report as underlined sections of aligned rows
func (r Report) WriteText(w io.Writer, title string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, strings.Repeat("=", len([]rune(title))))

	for _, s := range r.Sections {
		fmt.Fprintln(bw)
		writeSection(bw, s)
	}

	verdict := "non-compliant"
	if r.Compliant {
		verdict = "compliant"
	}
	fmt.Fprintf(bw, "\nResult: %s\n", verdict)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteSections writes sections without a title or verdict
func WriteSections(w io.Writer, sections ...Section) error {
	bw := bufio.NewWriter(w)
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		writeSection(bw, s)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func writeSection(w io.Writer, s Section) {
	width := 0
	for _, row := range s.Rows {
		width = max(width, len([]rune(row.Label)))
	}

	fmt.Fprintf(w, "%s:\n", s.Title)
	for _, row := range s.Rows {
		pad := strings.Repeat(" ", width-len([]rune(row.Label)))
		fmt.Fprintf(w, "  %s:%s %s\n", row.Label, pad, row.Value)
	}
}

// FormatMeasurement formats a measurement with two decimals
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		return fmt.Sprintf("%.2f", value)
	}
	return fmt.Sprintf("%.2f %s", value, unit)
}

// FormatAngle formats a compass angle in whole degrees
func FormatAngle(deg float64) string {
	return fmt.Sprintf("%.0f°", deg)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
