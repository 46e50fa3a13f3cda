package html

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/extract"
)

const page = `<!DOCTYPE html>
<html>
<head><title>Sustainability Report 2023</title></head>
<body>
<nav><a href="/">Home</a> | <a href="/investors">Investors</a></nav>
<article>
<h1>Sustainability Report 2023</h1>
<p>During the reporting year the company reduced its direct emission intensity across all manufacturing sites,
although one facility reported a chemical spill that required remediation of the adjacent river bank.</p>
<p>The board reviewed the remediation plan, engaged independent auditors and committed to publishing quarterly
progress updates so that shareholders and local communities can track the clean-up effort over time.</p>
<p>Workforce safety remained a priority, with new training programmes rolled out to every plant and a
dedicated hotline for employees to report hazards without fear of retaliation from their managers.</p>
</article>
<footer>Copyright 2023</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewExtractor().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !strings.Contains(got, "chemical spill") {
		t.Errorf("Extract() = %q, want article body", got)
	}
	if strings.Contains(got, "<p>") {
		t.Errorf("Extract() returned markup: %q", got)
	}
}

func TestExtractor_Missing(t *testing.T) {
	_, err := NewExtractor().Extract(context.Background(), filepath.Join(t.TempDir(), "missing.html"))
	if !errors.Is(err, extract.ErrExtractionFailed) {
		t.Errorf("Extract() error = %v, want ErrExtractionFailed", err)
	}
}
