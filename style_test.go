package aurea_test

import (
	"testing"

	"github.com/aureamidi/aurea"
)

func TestStyleCatalogConsistency(t *testing.T) {
	names := aurea.StyleNames()
	if len(names) != 6 {
		t.Fatalf("expected 6 styles in the catalog, got %v", len(names))
	}
	for _, name := range names {
		style, ok := aurea.StyleByName(name)
		if !ok {
			t.Fatalf("StyleNames listed %v but StyleByName does not know it", name)
		}
		// every style must reference only known scales, rhythms and dynamics
		for _, scale := range style.Scales {
			if _, ok := aurea.ScaleByName(scale); !ok {
				t.Errorf("style %v references unknown scale %v", name, scale)
			}
		}
		if _, ok := aurea.RhythmPattern(style.Rhythm); !ok {
			t.Errorf("style %v references unknown rhythm %v", name, style.Rhythm)
		}
		for _, marking := range style.Dynamics {
			if _, ok := aurea.DynamicVelocity(marking); !ok {
				t.Errorf("style %v references unknown dynamic %v", name, marking)
			}
		}
		if style.TempoRange[0] <= 0 || style.TempoRange[0] >= style.TempoRange[1] {
			t.Errorf("style %v tempo range %v malformed", name, style.TempoRange)
		}
		if len(style.Instruments) == 0 {
			t.Errorf("style %v has no instruments", name)
		}
		for _, patch := range style.Instruments {
			if _, ok := aurea.InstrumentName(patch); !ok {
				t.Errorf("style %v references unknown instrument %v", name, patch)
			}
		}
	}
}

func TestInstrumentCatalog(t *testing.T) {
	if name, ok := aurea.InstrumentName(1); !ok || name != "Acoustic Grand Piano" {
		t.Errorf("patch 1 = %v/%v, expected Acoustic Grand Piano", name, ok)
	}
	if _, ok := aurea.InstrumentName(200); ok {
		t.Error("patch 200 should be unknown")
	}
	keyboard, ok := aurea.InstrumentsInCategory("keyboard")
	if !ok || len(keyboard) != 8 {
		t.Errorf("keyboard category has %v entries", len(keyboard))
	}
}

func TestDynamicVelocity(t *testing.T) {
	tests := []struct {
		marking string
		want    int
	}{
		{"ppp", 16}, {"mp", 64}, {"fff", 127},
	}
	for _, test := range tests {
		if got, ok := aurea.DynamicVelocity(test.marking); !ok || got != test.want {
			t.Errorf("DynamicVelocity(%v) = %v/%v, expected %v", test.marking, got, ok, test.want)
		}
	}
}
