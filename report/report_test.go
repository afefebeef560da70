package report_test

import (
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aureamidi/aurea"
	"github.com/aureamidi/aurea/report"
)

func testInfo() report.Info {
	scale, _ := aurea.ScaleByName("minor")
	melody := aurea.Sequence{
		{Key: 57, Duration: 480, Velocity: 80},
		{Key: 60, Duration: 776, Velocity: 96},
		{Key: 64, Duration: 480, Velocity: 72},
	}
	return report.Info{
		Filename:  "golden_jazz_minor_1700000000.mid",
		Generated: time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
		Metadata: aurea.Metadata{
			Analysis:        aurea.Analyze(melody),
			Style:           "jazz",
			Scale:           "minor",
			RootNote:        "A3",
			Tempo:           120,
			Duration:        60,
			StructurePoints: []int{74, 28, 18},
			ScaleInfo:       scale.Info("minor"),
		},
	}
}

func TestTextReport(t *testing.T) {
	out, err := report.Text(testInfo())
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	text := string(out)
	for _, want := range []string{
		"golden_jazz_minor_1700000000.mid",
		"Style:       jazz",
		"Root note:   A3",
		"Total notes: 3",
		"Golden intervals:",
		"phi = 1.6180339887",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
}

func TestYAMLReportRoundTrips(t *testing.T) {
	out, err := report.YAML(testInfo())
	if err != nil {
		t.Fatalf("YAML failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("report does not parse as YAML: %v", err)
	}
	if decoded["style"] != "jazz" {
		t.Errorf("style = %v, expected jazz", decoded["style"])
	}
	if decoded["total_notes"] != 3 {
		t.Errorf("total_notes = %v, expected 3", decoded["total_notes"])
	}
}
