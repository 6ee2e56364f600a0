package model

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// objIndex is a resolved v/vt/vn triple; -1 marks an absent element.
type objIndex struct {
	v, vt, vn int
}

// LoadOBJ reads and parses a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mesh: %w", err)
	}
	mesh, err := ParseOBJ(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mesh, nil
}

// ParseOBJ parses the geometry of a Wavefront OBJ stream. Supported records
// are v, vt, vn and f; polygons are fan-triangulated and negative (relative)
// indices are resolved. Other records are ignored. Identical v/vt/vn triples
// share one output vertex.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	var (
		positions [][3]float32
		texCoords [][2]float32
		normals   [][3]float32
	)

	mesh := &Mesh{}
	shared := make(map[objIndex]uint32)
	var missingNormal []bool

	vertex := func(idx objIndex) uint32 {
		if i, ok := shared[idx]; ok {
			return i
		}
		var v Vertex
		v.Position = positions[idx.v]
		if idx.vt >= 0 {
			v.TexCoord = texCoords[idx.vt]
		}
		if idx.vn >= 0 {
			v.Normal = normals[idx.vn]
		}
		i := uint32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices, v)
		missingNormal = append(missingNormal, idx.vn < 0)
		shared[idx] = i
		return i
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, [3]float32{p[0], p[1], p[2]})

		case "vt":
			t, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: texture coordinate: %w", lineNo, err)
			}
			texCoords = append(texCoords, [2]float32{t[0], t[1]})

		case "vn":
			n, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, [3]float32{n[0], n[1], n[2]})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices, got %d", lineNo, len(fields)-1)
			}
			corners := make([]uint32, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idx, err := parseFaceRef(ref, len(positions), len(texCoords), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: face: %w", lineNo, err)
				}
				corners = append(corners, vertex(idx))
			}
			for i := 1; i+1 < len(corners); i++ {
				mesh.Indices = append(mesh.Indices, corners[0], corners[i], corners[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	if len(mesh.Indices) == 0 {
		return nil, ErrEmptyMesh
	}

	mesh.computeNormals(missingNormal)
	mesh.computeTangents()
	mesh.computeBounds()
	return mesh, nil
}

// parseFloats parses at least n floats from fields. Extra components (the
// optional w of v or vt) are ignored.
func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseFaceRef parses one face corner: v, v/vt, v//vn or v/vt/vn.
func parseFaceRef(ref string, nv, nvt, nvn int) (objIndex, error) {
	parts := strings.Split(ref, "/")
	if len(parts) > 3 {
		return objIndex{}, fmt.Errorf("malformed vertex reference %q", ref)
	}

	idx := objIndex{v: -1, vt: -1, vn: -1}
	var err error
	if idx.v, err = resolveIndex(parts[0], nv); err != nil {
		return objIndex{}, fmt.Errorf("position in %q: %w", ref, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		if idx.vt, err = resolveIndex(parts[1], nvt); err != nil {
			return objIndex{}, fmt.Errorf("texture coordinate in %q: %w", ref, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if idx.vn, err = resolveIndex(parts[2], nvn); err != nil {
			return objIndex{}, fmt.Errorf("normal in %q: %w", ref, err)
		}
	}
	return idx, nil
}

// resolveIndex converts a 1-based or negative OBJ index into a 0-based one.
func resolveIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += count
	default:
		return 0, fmt.Errorf("index 0 is invalid")
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("index out of range (have %d)", count)
	}
	return i, nil
}
