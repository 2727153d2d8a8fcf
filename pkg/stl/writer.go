package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gocontour/pkg/geometry"
)

// Write encodes model as binary STL
func Write(w io.Writer, model *Model) error {
	buffered := bufio.NewWriter(w)

	header := make([]byte, binaryHeaderSize)
	copy(header, model.Name)
	if _, err := buffered.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(buffered, binary.LittleEndian, uint32(len(model.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, tri := range model.Triangles {
		facet := binaryFacet{
			Normal:   toFloat32(tri.Normal),
			Vertices: [3][3]float32{toFloat32(tri.V1), toFloat32(tri.V2), toFloat32(tri.V3)},
		}
		if err := binary.Write(buffered, binary.LittleEndian, &facet); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	return buffered.Flush()
}

// WriteFile writes model to filename as binary STL
func WriteFile(filename string, model *Model) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(file, model); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func toFloat32(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
