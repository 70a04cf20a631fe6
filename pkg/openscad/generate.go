// Package openscad writes habitat designs as OpenSCAD source and renders
// them with the openscad binary.
package openscad

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/philipparndt/gohabitat/pkg/geometry"
	"github.com/philipparndt/gohabitat/pkg/habitat"
)

// Options controls the generated source
type Options struct {
	Shell    bool     // draw the usable volume as a translucent ghost
	Segments int      // $fn for curved surfaces, 0 keeps the default
	Includes []string // extra files pulled in with include <...>
}

const defaultSegments = 96

// Generate writes an OpenSCAD program for s. The model is Z-up in meters;
// compass angles are converted to OpenSCAD's counter-clockwise convention.
func Generate(w io.Writer, s habitat.State, opts Options) error {
	segments := opts.Segments
	if segments <= 0 {
		segments = defaultSegments
	}

	radius := s.Envelope.UsableRadius()
	height := geometry.UsableHeight(s.Envelope.HeightM, s.Envelope.WallThicknessM)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "// Generated by gohabitat")
	for _, inc := range opts.Includes {
		fmt.Fprintf(bw, "include <%s>\n", inc)
	}
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "$fn = %d;\n", segments)
	fmt.Fprintf(bw, "usable_radius = %s;\n", num(radius))
	fmt.Fprintf(bw, "usable_height = %s;\n", num(height))
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "module zone(start, span, z0, z1) {")
	fmt.Fprintln(bw, "    translate([0, 0, z0])")
	fmt.Fprintln(bw, "        rotate([0, 0, 90 - start - span])")
	fmt.Fprintln(bw, "            rotate_extrude(angle = span)")
	fmt.Fprintln(bw, "                square([usable_radius, z1 - z0]);")
	fmt.Fprintln(bw, "}")
	fmt.Fprintln(bw)

	if opts.Shell {
		bw.WriteString("%cylinder(r = usable_radius, h = usable_height);\n")
		fmt.Fprintln(bw)
	}

	levels := 0
	for _, z := range s.Zones {
		if z.AxialRank != nil && *z.AxialRank+1 > levels {
			levels = *z.AxialRank + 1
		}
	}

	for _, z := range s.Zones {
		z0, z1 := 0.0, height
		if levels > 0 && z.AxialRank != nil && *z.AxialRank >= 0 {
			band := height / float64(levels)
			z0, z1 = float64(*z.AxialRank)*band, float64(*z.AxialRank+1)*band
		}

		fmt.Fprintf(bw, "// %s (%s)\n", comment(z.Name), z.Purpose)
		fmt.Fprintf(bw, "color(%q) zone(%s, %s, %s, %s);\n",
			z.Color, num(z.Start), num(z.Span()), num(z0), num(z1))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write scad: %w", err)
	}
	return nil
}

// GenerateFile writes the program to path
func GenerateFile(path string, s habitat.State, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Generate(f, s, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func num(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".")
}

func comment(s string) string {
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}
