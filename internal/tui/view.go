package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/philipparndt/gohabitat/pkg/analysis"
)

const helpText = "↑/↓ select • a add • d remove • n name • s/e start/end • [ ] { } nudge • u purpose • p levels • +/- crew • ctrl+s export • ctrl+r reset • q quit"

// View implements tea.Model
func (m Model) View() string {
	st := m.styles
	var b strings.Builder

	b.WriteString(st.Title.Render("gohabitat"))
	b.WriteString("\n\n")

	env := m.state.Envelope
	metrics := m.report.Metrics
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s  %s %d\n",
		st.Label.Render("Radius"), analysis.FormatMeasurement(env.RadiusM, "m"),
		st.Label.Render("Height"), analysis.FormatMeasurement(env.HeightM, "m"),
		st.Label.Render("Usable"), analysis.FormatMeasurement(metrics.UsableVolumeM3, "m³"),
		st.Label.Render("Crew"), m.state.Mission.CrewSize)
	b.WriteString("\n")

	b.WriteString(m.table.View())
	b.WriteString("\n\n")

	b.WriteString(m.summaryView())
	b.WriteString("\n")

	if m.mode != modeNormal {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(st.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(st.Help.Render(helpText))
	return b.String()
}

// summaryView shows totals, area by purpose and rule results side by side
func (m Model) summaryView() string {
	st := m.styles
	metrics := m.report.Metrics

	var totals strings.Builder
	totals.WriteString(st.Header.Render("Totals") + "\n")
	fmt.Fprintf(&totals, "%s %s\n", st.Label.Render("Area  "), analysis.FormatMeasurement(metrics.TotalAreaM2, "m²"))
	fmt.Fprintf(&totals, "%s %s", st.Label.Render("Volume"), analysis.FormatMeasurement(metrics.TotalVolumeM3, "m³"))

	var rules strings.Builder
	rules.WriteString(st.Header.Render("Rules"))
	for _, res := range m.report.Results {
		verdict := st.Pass.Render("PASS")
		if !res.Passed {
			verdict = st.Fail.Render("FAIL")
		}
		fmt.Fprintf(&rules, "\n%s %s", verdict, res.Message)
	}

	var zone strings.Builder
	zone.WriteString(st.Header.Render("Selected"))
	if z, ok := m.state.SelectedZone(); ok {
		fmt.Fprintf(&zone, "\n%s %s\n%s", st.Swatch(z.Color).Render("■"), z.Name, z.Purpose)
	} else {
		zone.WriteString("\n" + st.Label.Render("none"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		st.Panel.Render(totals.String()),
		st.Panel.Render(zone.String()),
		st.Panel.Render(rules.String()),
	)
}
