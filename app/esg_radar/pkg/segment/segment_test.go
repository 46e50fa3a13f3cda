package segment

import (
	"strings"
	"testing"
)

func TestPunkt_Segment(t *testing.T) {
	p, err := NewPunkt()
	if err != nil {
		t.Fatalf("NewPunkt() error = %v", err)
	}

	t.Run("empty", func(t *testing.T) {
		for _, text := range []string{"", "   \n\t "} {
			if got := p.Segment(text); len(got) != 0 {
				t.Errorf("Segment(%q) = %v, want none", text, got)
			}
		}
	})

	t.Run("two sentences", func(t *testing.T) {
		text := "The plant reported an emission spill near the river. Revenue grew 5% year over year."
		got := p.Segment(text)
		if len(got) != 2 {
			t.Fatalf("Segment() = %q, want 2 sentences", got)
		}
		if !strings.Contains(got[0], "emission spill") || !strings.Contains(got[1], "Revenue grew") {
			t.Errorf("Segment() = %q", got)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		text := "Fines were paid. A lawsuit is pending. Workforce safety improved."
		first := p.Segment(text)
		second := p.Segment(text)
		if strings.Join(first, "|") != strings.Join(second, "|") {
			t.Errorf("Segment() not deterministic: %q vs %q", first, second)
		}
	})
}
