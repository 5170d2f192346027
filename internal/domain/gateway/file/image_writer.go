package file

import (
	"fmt"
	"os"
	"path/filepath"
)

const DefaultImageName = "qr-code.png"

// ImageWriter stores image bytes on the local file system and returns where they went
type ImageWriter interface {
	WriteImage(data []byte) (string, error)
}

type tempImageWriter struct {
	dir  string
	name string
}

// NewTempImageWriter writes to dir/name, overwriting the previous image. An empty dir means os.TempDir().
func NewTempImageWriter(dir, name string) ImageWriter {
	if dir == "" {
		dir = os.TempDir()
	}
	if name == "" {
		name = DefaultImageName
	}
	return &tempImageWriter{dir: dir, name: name}
}

func (w *tempImageWriter) WriteImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("no image data to write")
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, w.name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
