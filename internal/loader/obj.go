package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"Stairwell/internal/logger"
	"Stairwell/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var defaultOBJColor = mgl32.Vec3{1, 1, 1}

// WriteOBJ exports buf as a Wavefront object. Vertex colors use the common
// "v x y z r g b" extension; faces reference matching position and normal indices.
func WriteOBJ(w io.Writer, name string, buf *shapes.GeometryBuffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("exporting obj: %w", err)
	}
	bw := bufio.NewWriter(w)
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}
	for _, v := range buf.Vertices {
		p, c := v.Position, v.Color
		fmt.Fprintf(bw, "v %s %s %s %s %s %s\n", ff(p[0]), ff(p[1]), ff(p[2]), ff(c[0]), ff(c[1]), ff(c[2]))
	}
	for _, v := range buf.Vertices {
		n := v.Normal
		fmt.Fprintf(bw, "vn %s %s %s\n", ff(n[0]), ff(n[1]), ff(n[2]))
	}
	for t := 0; t < buf.TriangleCount(); t++ {
		a, b, c := buf.Triangle(t)
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a+1, a+1, b+1, b+1, c+1, c+1)
	}
	return bw.Flush()
}

func ff(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// SaveOBJ writes buf to path as a Wavefront object.
func SaveOBJ(path, name string, buf *shapes.GeometryBuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOBJ(file, name, buf); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

type faceVertex struct {
	vertexIdx int
	normalIdx int
}

// ReadOBJ parses positions, optional vertex colors, normals and faces. Each
// distinct position/normal pair becomes one vertex; quads and larger polygons
// are fan triangulated. Texture coordinates and materials are ignored.
func ReadOBJ(r io.Reader) (*shapes.GeometryBuffer, error) {
	var positions, colors, normals []mgl32.Vec3
	var faces []faceVertex

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 || strings.HasPrefix(parts[0], "#") {
			continue
		}
		switch parts[0] {
		case "v":
			vals, err := parseFloats(parts[1:])
			if err != nil || (len(vals) != 3 && len(vals) != 6) {
				return nil, objError(line, "vertex", err)
			}
			positions = append(positions, mgl32.Vec3{vals[0], vals[1], vals[2]})
			if len(vals) == 6 {
				colors = append(colors, mgl32.Vec3{vals[3], vals[4], vals[5]})
			} else {
				colors = append(colors, defaultOBJColor)
			}
		case "vn":
			vals, err := parseFloats(parts[1:])
			if err != nil || len(vals) != 3 {
				return nil, objError(line, "normal", err)
			}
			normals = append(normals, mgl32.Vec3{vals[0], vals[1], vals[2]})
		case "f":
			face, err := parseFace(parts[1:])
			if err != nil {
				return nil, objError(line, "face", err)
			}
			faces = append(faces, face...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	buf := &shapes.GeometryBuffer{Indices: make([]uint16, 0, len(faces))}
	seen := make(map[faceVertex]uint16)
	for _, fv := range faces {
		if fv.vertexIdx < 0 || fv.vertexIdx >= len(positions) {
			return nil, fmt.Errorf("%w: obj vertex index %d out of range", ErrCorruptMesh, fv.vertexIdx+1)
		}
		if fv.normalIdx < -1 || fv.normalIdx >= len(normals) {
			return nil, fmt.Errorf("%w: obj normal index %d out of range", ErrCorruptMesh, fv.normalIdx+1)
		}
		idx, ok := seen[fv]
		if !ok {
			if len(buf.Vertices) == shapes.MaxVertices {
				return nil, fmt.Errorf("%w: obj needs more than %d vertices", shapes.ErrIndexOverflow, shapes.MaxVertices)
			}
			v := shapes.Vertex{Position: positions[fv.vertexIdx], Color: colors[fv.vertexIdx]}
			if fv.normalIdx >= 0 {
				v.Normal = normals[fv.normalIdx]
			}
			idx = uint16(len(buf.Vertices))
			seen[fv] = idx
			buf.Vertices = append(buf.Vertices, v)
		}
		buf.Indices = append(buf.Indices, idx)
	}
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptMesh, err)
	}
	logger.Log.Debug("Parsed obj",
		zap.Int("vertices", buf.VertexCount()),
		zap.Int("indices", buf.IndexCount()))
	return buf, nil
}

// LoadOBJ reads a Wavefront object from path.
func LoadOBJ(path string) (*shapes.GeometryBuffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	buf, err := ReadOBJ(file)
	if err != nil {
		logger.Log.Error("Error loading obj", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return buf, nil
}

func objError(line int, what string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: line %d: invalid %s", ErrCorruptMesh, line, what)
	}
	return fmt.Errorf("%w: line %d: invalid %s: %v", ErrCorruptMesh, line, what, err)
}

func parseFloats(parts []string) ([]float32, error) {
	vals := make([]float32, 0, len(parts))
	for _, part := range parts {
		val, err := strconv.ParseFloat(part, 32)
		if err != nil {
			return nil, err
		}
		vals = append(vals, float32(val))
	}
	return vals, nil
}

// parseFace reads "v", "v/t", "v//n" or "v/t/n" references and triangulates
// the polygon as a fan from its first vertex.
func parseFace(parts []string) ([]faceVertex, error) {
	if len(parts) < 3 {
		return nil, fmt.Errorf("face has %d vertices", len(parts))
	}
	face := make([]faceVertex, 0, len(parts))
	for _, part := range parts {
		vals := strings.Split(part, "/")

		vertexIdx, err := strconv.Atoi(vals[0])
		if err != nil {
			return nil, fmt.Errorf("vertex index %q: %w", vals[0], err)
		}
		normalIdx := 0
		if len(vals) > 2 && vals[2] != "" {
			if normalIdx, err = strconv.Atoi(vals[2]); err != nil {
				return nil, fmt.Errorf("normal index %q: %w", vals[2], err)
			}
		}
		// .obj indices start at 1; 0 marks a missing normal.
		face = append(face, faceVertex{vertexIdx: vertexIdx - 1, normalIdx: normalIdx - 1})
	}

	if len(face) == 3 {
		return face, nil
	}
	if len(face) > 4 {
		logger.Log.Warn("Face with more than 4 vertices detected, using fan triangulation", zap.Int("vertexCount", len(face)))
	}
	triangulated := make([]faceVertex, 0, (len(face)-2)*3)
	for i := 1; i < len(face)-1; i++ {
		triangulated = append(triangulated, face[0], face[i], face[i+1])
	}
	return triangulated, nil
}
