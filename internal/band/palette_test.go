package band

import "testing"

func TestPaletteDigits(t *testing.T) {
	p := Palette()
	if len(p) != 10 {
		t.Fatalf("expected 10 palette entries, got %d", len(p))
	}

	seen := make(map[int]string)
	for _, spec := range p {
		if spec.Digit < 0 || spec.Digit > 9 {
			t.Errorf("%s: digit %d out of range", spec.Name, spec.Digit)
		}
		if prev, ok := seen[spec.Digit]; ok {
			t.Errorf("digit %d assigned to both %s and %s", spec.Digit, prev, spec.Name)
		}
		seen[spec.Digit] = spec.Name
	}
	if len(seen) != 10 {
		t.Errorf("expected digits 0-9 each once, got %d distinct digits", len(seen))
	}
}

func TestPaletteNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, spec := range Palette() {
		if seen[spec.Name] {
			t.Errorf("duplicate palette name %s", spec.Name)
		}
		seen[spec.Name] = true
	}
}

func TestPaletteBoundsOrdered(t *testing.T) {
	for _, spec := range Palette() {
		if spec.Lower.H > spec.Upper.H || spec.Lower.S > spec.Upper.S || spec.Lower.V > spec.Upper.V {
			t.Errorf("%s: lower bound %v exceeds upper bound %v", spec.Name, spec.Lower, spec.Upper)
		}
	}
}

func TestRedWrapRangeDisjoint(t *testing.T) {
	red, ok := lookup("RED")
	if !ok {
		t.Fatal("RED missing from palette")
	}
	if redWrapLower.H <= red.Upper.H {
		t.Errorf("wraparound range starts at hue %d, overlaps primary range ending at %d",
			redWrapLower.H, red.Upper.H)
	}
	if redWrapUpper.H > 179 {
		t.Errorf("wraparound range ends at hue %d, beyond the OpenCV hue axis", redWrapUpper.H)
	}
}

func TestLookup(t *testing.T) {
	if spec, ok := lookup("ORANGE"); !ok || spec.Digit != 3 {
		t.Errorf("lookup(ORANGE) = %v, %v; want digit 3", spec, ok)
	}
	if _, ok := lookup("MAUVE"); ok {
		t.Error("lookup(MAUVE) should not succeed")
	}
}
