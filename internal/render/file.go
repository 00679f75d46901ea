package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// File renders from a saved page snapshot on disk for offline runs and
// tests. The snapshot must already carry declarative shadow roots, i.e. the
// output of the Chrome backend's serializer saved to a file.
type File struct {
	Path string
}

func (f *File) Name() string { return "file" }

func (f *File) Render(_ context.Context, _ string) (*Snapshot, error) {
	if strings.TrimSpace(f.Path) == "" {
		return nil, errors.New("file renderer path is empty")
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	doc, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &Snapshot{Doc: doc}, nil
}
