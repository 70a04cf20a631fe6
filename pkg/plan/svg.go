package plan

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/philipparndt/gohabitat/pkg/habitat"
)

const (
	svgBackground = "#0f1219"
	svgFont       = "Helvetica, Arial, sans-serif"
)

// WriteSVG renders the diagram as a standalone SVG document of the given size
func WriteSVG(w io.Writer, d Diagram, width, height int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(bw, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", svgBackground)

	// Pressure vessel and usable floor
	fmt.Fprintf(bw, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="#8a93a6" stroke-width="3"/>`+"\n",
		d.Center.X, d.Center.Y, d.OuterRadiusPx)
	fmt.Fprintf(bw, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="#1b2130" stroke="#3c465c" stroke-dasharray="4 4"/>`+"\n",
		d.Center.X, d.Center.Y, d.UsableRadiusPx)

	for _, s := range d.Sectors {
		stroke, strokeWidth := habitat.Shade(s.Color, -0.4), 1.5
		if s.Selected {
			stroke, strokeWidth = "#ffd700", 3
		}
		fmt.Fprintf(bw, `  <path d="%s" fill="%s" fill-opacity="0.55" stroke="%s" stroke-width="%.1f"><title>%s</title></path>`+"\n",
			pathData(s.Outline), s.Color, stroke, strokeWidth, html.EscapeString(s.LabelText))
	}

	for _, s := range d.Sectors {
		fmt.Fprintf(bw, `  <text x="%.2f" y="%.2f" text-anchor="middle" font-family="%s" font-size="13" fill="#ffffff">%s</text>`+"\n",
			s.Label.X, s.Label.Y, svgFont, html.EscapeString(s.LabelText))
		fmt.Fprintf(bw, `  <text x="%.2f" y="%.2f" text-anchor="middle" font-family="%s" font-size="11" fill="#c8d0e0">%s</text>`+"\n",
			s.Label.X, s.Label.Y+14, svgFont, html.EscapeString(s.AreaText))
	}

	for _, h := range d.Handles {
		fill := "#ffffff"
		if h.Active {
			fill = "#ffd700"
		}
		fmt.Fprintf(bw, `  <circle cx="%.2f" cy="%.2f" r="%.1f" fill="%s" stroke="#0f1219" stroke-width="1.5"/>`+"\n",
			h.Pos.X, h.Pos.Y, HandleRadiusPx, fill)
	}

	fmt.Fprintln(bw, "</svg>")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

func pathData(points []Point) string {
	var sb strings.Builder
	for i, p := range points {
		if i == 0 {
			fmt.Fprintf(&sb, "M%.2f %.2f", p.X, p.Y)
			continue
		}
		fmt.Fprintf(&sb, " L%.2f %.2f", p.X, p.Y)
	}
	sb.WriteString(" Z")
	return sb.String()
}
