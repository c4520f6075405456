package ui

import (
	"strings"
	"testing"

	"github.com/nathanguimaraes/frontend-bank/internal/spending"
	"github.com/nathanguimaraes/frontend-bank/internal/theme"
)

func testStyles() *Styles {
	s := NewStyles(theme.PaletteFor(theme.Light))
	return &s
}

func TestRenderChart_ZeroBucketsDrawNothing(t *testing.T) {
	buckets := []spending.Bucket{
		{Label: "Mon"}, {Label: "Tue"}, {Label: "Wed"},
	}

	out := renderChart(buckets, testStyles())

	if strings.Contains(out, "█") {
		t.Error("empty buckets must not draw bars")
	}
	for _, label := range []string{"Mon", "Tue", "Wed"} {
		if !strings.Contains(out, label) {
			t.Errorf("missing label %s", label)
		}
	}
}

func TestRenderChart_ScalesToTallestBucket(t *testing.T) {
	buckets := []spending.Bucket{
		{Label: "Mon", Value: 100},
		{Label: "Tue", Value: 1},
		{Label: "Wed"},
	}

	out := renderChart(buckets, testStyles())

	bars := strings.Count(out, "█")
	// Tallest column fills the chart; the tiny one still shows a single
	// cell rather than rounding away.
	if bars != chartHeight+1 {
		t.Errorf("expected %d bar cells, got %d", chartHeight+1, bars)
	}
	if !strings.Contains(out, "peak R$100,00") {
		t.Errorf("missing peak caption:\n%s", out)
	}
}

func TestRenderChart_BarsAlignWithLabels(t *testing.T) {
	buckets := []spending.Bucket{
		{Label: "Mon", Value: 10},
		{Label: "Tue", Value: 10},
	}

	out := renderChart(buckets, testStyles())

	// Each bar glyph must occupy a full label-width column, so two
	// adjacent full columns render centered under "Mon Tue".
	if !strings.Contains(out, " █   █ ") {
		t.Errorf("bar cells are not padded to the label width:\n%s", out)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"5", 3, " 5 "},
		{"Mon", 3, "Mon"},
		{"28", 3, "28 "},
		{"long", 2, "long"},
		{"█", 3, " █ "},
		{"██", 4, " ██ "},
	}

	for _, tt := range tests {
		if got := pad(tt.in, tt.width); got != tt.want {
			t.Errorf("pad(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
