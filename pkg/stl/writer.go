package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gohabitat/pkg/geometry"
)

// Format selects the STL encoding
type Format int

const (
	Binary Format = iota
	ASCII
)

func (f Format) String() string {
	if f == ASCII {
		return "ascii"
	}
	return "binary"
}

// ParseFormat accepts "binary" or "ascii"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "binary", "bin":
		return Binary, nil
	case "ascii", "text":
		return ASCII, nil
	}
	return Binary, fmt.Errorf("unknown STL format %q", s)
}

// binaryHeaderPrefix keeps binary headers from starting with "solid"
const binaryHeaderPrefix = "gohabitat "

// Write encodes m in the given format
func Write(w io.Writer, m *Model, format Format) error {
	if format == ASCII {
		return WriteASCII(w, m)
	}
	return WriteBinary(w, m)
}

// WriteASCII encodes m as ASCII STL
func WriteASCII(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)
	name := strings.Join(strings.Fields(m.Name), "_")

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", t.Normal.X, t.Normal.Y, t.Normal.Z)
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range []geometry.Vector3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ASCII STL: %w", err)
	}
	return nil
}

// WriteBinary encodes m as binary STL
func WriteBinary(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], binaryHeaderPrefix+m.Name)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, t := range m.Triangles {
		f := binaryFacet{
			Normal: f32(t.Normal),
			V1:     f32(t.V1),
			V2:     f32(t.V2),
			V3:     f32(t.V3),
		}
		if err := binary.Write(bw, binary.LittleEndian, &f); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write binary STL: %w", err)
	}
	return nil
}

func f32(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Save writes m to path, creating parent directories
func Save(path string, m *Model, format Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(f, m, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
