// Package loaders reads external mesh data into the formats the scene
// graph consumes.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format      string // "ascii", "binary_little_endian", or "binary_big_endian"
	Version     string // Usually "1.0"
	VertexCount int
	FaceCount   int
	VertexProps []PLYProperty
	FaceProps   []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// PLYData contains the mesh data loaded from a PLY file
type PLYData struct {
	Vertices []math32.Vector3 // Vertex positions (x, y, z)
	Faces    []int            // Triangle indices (3 per triangle)
}

// LoadPLY loads an ASCII PLY file and returns its vertex and face data
func LoadPLY(filename string) (*PLYData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	return ParsePLY(file)
}

// ParsePLY parses ASCII PLY mesh data from r
func ParsePLY(r io.Reader) (*PLYData, error) {
	scanner := bufio.NewScanner(r)

	header, err := parsePLYHeader(scanner)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	switch header.Format {
	case "ascii":
	case "binary_little_endian", "binary_big_endian":
		return nil, fmt.Errorf("binary PLY formats not yet supported")
	default:
		return nil, fmt.Errorf("unsupported PLY format: %s", header.Format)
	}

	vertices, err := readASCIIVertices(scanner, header)
	if err != nil {
		return nil, err
	}

	faces, err := readASCIIFaces(scanner, header)
	if err != nil {
		return nil, err
	}

	return &PLYData{Vertices: vertices, Faces: faces}, nil
}

// parsePLYHeader consumes header lines up to and including end_header
func parsePLYHeader(scanner *bufio.Scanner) (*PLYHeader, error) {
	magic, ok := nextDataLine(scanner)
	if !ok || magic != "ply" {
		return nil, fmt.Errorf("not a PLY file: missing ply magic line")
	}

	header := &PLYHeader{
		VertexProps: make([]PLYProperty, 0),
		FaceProps:   make([]PLYProperty, 0),
	}
	var currentElement string

	for {
		line, ok := nextDataLine(scanner)
		if !ok {
			return nil, fmt.Errorf("unexpected end of file before end_header")
		}
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid format line: %s", line)
			}
			header.Format = parts[1]
			header.Version = parts[2]
		case "comment", "obj_info":
			// Ignore
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %s", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				header.VertexCount = count
			case "face":
				header.FaceCount = count
			}
		case "property":
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("failed to parse property: %w", err)
			}
			switch currentElement {
			case "vertex":
				header.VertexProps = append(header.VertexProps, prop)
			case "face":
				header.FaceProps = append(header.FaceProps, prop)
			}
		}
	}

	return header, nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	prop := PLYProperty{}
	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		prop.IsList = true
		prop.ListType = parts[1]
		prop.DataType = parts[2]
		prop.Name = parts[3]
	} else {
		prop.Type = parts[0]
		prop.Name = parts[1]
	}
	return prop, nil
}

// readASCIIVertices reads VertexCount position lines, skipping any extra
// per-vertex properties such as normals or colors.
func readASCIIVertices(scanner *bufio.Scanner, header *PLYHeader) ([]math32.Vector3, error) {
	xi, yi, zi := -1, -1, -1
	for i, prop := range header.VertexProps {
		if prop.IsList {
			return nil, fmt.Errorf("list properties are not supported on vertex elements")
		}
		switch prop.Name {
		case "x":
			xi = i
		case "y":
			yi = i
		case "z":
			zi = i
		}
	}
	if xi < 0 || yi < 0 || zi < 0 {
		return nil, fmt.Errorf("vertex element is missing x, y or z properties")
	}

	vertices := make([]math32.Vector3, 0, header.VertexCount)
	for i := 0; i < header.VertexCount; i++ {
		line, ok := nextDataLine(scanner)
		if !ok {
			return nil, fmt.Errorf("unexpected end of file at vertex %d", i)
		}
		fields := strings.Fields(line)
		if len(fields) < len(header.VertexProps) {
			return nil, fmt.Errorf("vertex %d: expected %d values, got %d", i, len(header.VertexProps), len(fields))
		}

		x, err := parseCoord(fields[xi])
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		y, err := parseCoord(fields[yi])
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		z, err := parseCoord(fields[zi])
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		vertices = append(vertices, math32.Vec3(x, y, z))
	}
	return vertices, nil
}

// readASCIIFaces reads FaceCount index lines, enforcing triangular faces
// and in-range indices.
func readASCIIFaces(scanner *bufio.Scanner, header *PLYHeader) ([]int, error) {
	faces := make([]int, 0, header.FaceCount*3)

	for i := 0; i < header.FaceCount; i++ {
		line, ok := nextDataLine(scanner)
		if !ok {
			return nil, fmt.Errorf("unexpected end of file at face %d", i)
		}
		fields := strings.Fields(line)

		pos := 0
		for _, prop := range header.FaceProps {
			if pos >= len(fields) {
				return nil, fmt.Errorf("face %d: truncated line", i)
			}
			if !prop.IsList {
				pos++
				continue
			}

			count, err := strconv.Atoi(fields[pos])
			if err != nil {
				return nil, fmt.Errorf("face %d: invalid list count %q", i, fields[pos])
			}
			pos++
			if pos+count > len(fields) {
				return nil, fmt.Errorf("face %d: truncated line", i)
			}

			if prop.Name == "vertex_indices" || prop.Name == "vertex_index" {
				if count != 3 {
					return nil, fmt.Errorf("only triangular faces supported, got %d vertices at face %d", count, i)
				}
				for j := 0; j < 3; j++ {
					index, err := strconv.Atoi(fields[pos+j])
					if err != nil {
						return nil, fmt.Errorf("face %d: invalid vertex index %q", i, fields[pos+j])
					}
					if index < 0 || index >= header.VertexCount {
						return nil, fmt.Errorf("face %d references vertex %d, out of range", i, index)
					}
					faces = append(faces, index)
				}
			}
			pos += count
		}
	}
	return faces, nil
}

// parseCoord parses one coordinate value
func parseCoord(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q", s)
	}
	return float32(v), nil
}

// nextDataLine returns the next non-empty line
func nextDataLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}
