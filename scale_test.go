package aurea_test

import (
	"testing"

	"github.com/aureamidi/aurea"
)

func TestScaleCatalogInvariants(t *testing.T) {
	names := aurea.ScaleNames()
	if len(names) != 16 {
		t.Fatalf("expected 16 scales in the catalog, got %v", len(names))
	}
	for _, name := range names {
		scale, ok := aurea.ScaleByName(name)
		if !ok {
			t.Fatalf("ScaleNames listed %v but ScaleByName does not know it", name)
		}
		if len(scale.Intervals) == 0 || scale.Intervals[0] != 0 {
			t.Errorf("scale %v should start at offset 0: %v", name, scale.Intervals)
		}
		for i, offset := range scale.Intervals {
			if offset < 0 || offset > 11 {
				t.Errorf("scale %v offset %v outside 0..11", name, offset)
			}
			if i > 0 && offset < scale.Intervals[i-1] {
				t.Errorf("scale %v offsets not non-decreasing: %v", name, scale.Intervals)
			}
		}
		if scale.Characteristic == "" {
			t.Errorf("scale %v has no characteristic", name)
		}
	}
}

func TestScaleByNameUnknown(t *testing.T) {
	if _, ok := aurea.ScaleByName("hexatonic_klezmer"); ok {
		t.Fatal("unknown scale reported as found")
	}
}

func TestScaleInfo(t *testing.T) {
	scale, _ := aurea.ScaleByName("blues")
	info := scale.Info("blues")
	if info.Name != "blues" || info.NoteCount != 6 {
		t.Errorf("blues info %+v unexpected", info)
	}
}

func TestNoteName(t *testing.T) {
	tests := []struct {
		key  int
		want string
	}{
		{60, "C4"},
		{61, "C#4"},
		{21, "A0"},
		{108, "C8"},
		{69, "A4"},
	}
	for _, test := range tests {
		if got := aurea.NoteName(test.key); got != test.want {
			t.Errorf("NoteName(%v) = %v, expected %v", test.key, got, test.want)
		}
	}
}
