package pdf

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/extract"
)

func TestExtractor_Failures(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.pdf")
	if err := os.WriteFile(corrupt, []byte("this is not a pdf at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.pdf")},
		{"corrupt file", corrupt},
	}

	e := NewExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Extract(context.Background(), tt.path)
			if !errors.Is(err, extract.ErrExtractionFailed) {
				t.Errorf("Extract() error = %v, want ErrExtractionFailed", err)
			}
		})
	}
}
