package loader

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"Stairwell/internal/logger"
	"Stairwell/internal/shapes"

	"github.com/pierrec/lz4/v4"
	"go.uber.org/zap"
)

const (
	// MeshMagic is "SHP1" read as a little endian uint32 header word.
	MeshMagic   uint32 = 0x53485031
	MeshVersion uint32 = 1

	// maxIndices bounds the index allocation for a corrupt count.
	maxIndices = 12 * shapes.MaxVertices
)

var (
	ErrBadMagic           = errors.New("not a mesh file")
	ErrUnsupportedVersion = errors.New("unsupported mesh file version")
	ErrCorruptMesh        = errors.New("corrupt mesh data")
)

// meshHeader is stored uncompressed in front of the lz4 frame.
type meshHeader struct {
	Magic   uint32
	Version uint32
	Flags   uint32
}

// EncodeMesh writes buf as a header followed by an lz4 compressed payload:
// vertex count, vertices (9 float32 each), index count, indices (uint16).
func EncodeMesh(buf *shapes.GeometryBuffer) ([]byte, error) {
	var out bytes.Buffer
	if err := WriteMesh(&out, buf); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WriteMesh streams the encoded form of buf to w.
func WriteMesh(w io.Writer, buf *shapes.GeometryBuffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("encoding mesh: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, meshHeader{Magic: MeshMagic, Version: MeshVersion}); err != nil {
		return err
	}

	lzw := lz4.NewWriter(w)
	if err := lzw.Apply(lz4.CompressionLevelOption(lz4.Fast)); err != nil {
		return err
	}
	if err := binary.Write(lzw, binary.LittleEndian, uint32(len(buf.Vertices))); err != nil {
		return err
	}
	if err := binary.Write(lzw, binary.LittleEndian, buf.Vertices); err != nil {
		return err
	}
	if err := binary.Write(lzw, binary.LittleEndian, uint32(len(buf.Indices))); err != nil {
		return err
	}
	if err := binary.Write(lzw, binary.LittleEndian, buf.Indices); err != nil {
		return err
	}
	return lzw.Close()
}

// DecodeMesh parses data produced by EncodeMesh. The result always satisfies
// GeometryBuffer.Validate.
func DecodeMesh(data []byte) (*shapes.GeometryBuffer, error) {
	return ReadMesh(bytes.NewReader(data))
}

// ReadMesh decodes one mesh from r.
func ReadMesh(r io.Reader) (*shapes.GeometryBuffer, error) {
	var header meshHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrCorruptMesh, err)
	}
	if header.Magic != MeshMagic {
		return nil, fmt.Errorf("%w: magic %#x", ErrBadMagic, header.Magic)
	}
	if header.Version != MeshVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, header.Version)
	}
	if header.Flags != 0 {
		return nil, fmt.Errorf("%w: unknown flags %#x", ErrCorruptMesh, header.Flags)
	}

	lzr := lz4.NewReader(r)

	var vertexCount uint32
	if err := binary.Read(lzr, binary.LittleEndian, &vertexCount); err != nil {
		return nil, corrupt("vertex count", err)
	}
	if vertexCount == 0 || vertexCount > shapes.MaxVertices {
		return nil, fmt.Errorf("%w: vertex count %d", ErrCorruptMesh, vertexCount)
	}
	buf := &shapes.GeometryBuffer{Vertices: make([]shapes.Vertex, vertexCount)}
	if err := binary.Read(lzr, binary.LittleEndian, buf.Vertices); err != nil {
		return nil, corrupt("vertices", err)
	}

	var indexCount uint32
	if err := binary.Read(lzr, binary.LittleEndian, &indexCount); err != nil {
		return nil, corrupt("index count", err)
	}
	if indexCount > maxIndices {
		return nil, fmt.Errorf("%w: index count %d", ErrCorruptMesh, indexCount)
	}
	buf.Indices = make([]uint16, indexCount)
	if err := binary.Read(lzr, binary.LittleEndian, buf.Indices); err != nil {
		return nil, corrupt("indices", err)
	}

	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptMesh, err)
	}
	return buf, nil
}

func corrupt(what string, err error) error {
	return fmt.Errorf("%w: reading %s: %v", ErrCorruptMesh, what, err)
}

// SaveMesh encodes buf to path.
func SaveMesh(path string, buf *shapes.GeometryBuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	if err := WriteMesh(w, buf); err != nil {
		file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	logger.Log.Info("Saved mesh",
		zap.String("path", path),
		zap.Int("vertices", buf.VertexCount()),
		zap.Int("indices", buf.IndexCount()))
	return nil
}

// LoadMesh reads a mesh file written by SaveMesh.
func LoadMesh(path string) (*shapes.GeometryBuffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	buf, err := ReadMesh(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Log.Debug("Loaded mesh",
		zap.String("path", path),
		zap.Int("vertices", buf.VertexCount()),
		zap.Int("indices", buf.IndexCount()))
	return buf, nil
}
