package render

import (
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", RGB(255, 0, 0), false},
		{"#0f0", RGB(0, 255, 0), false},
		{" #0000ff ", RGB(0, 0, 255), false},
		{"#11223380", RGBA(0x11, 0x22, 0x33, 0x80), false},
		{"red", Color{}, true},
		{"#11223zz0", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGoldenPaletteDeterministic(t *testing.T) {
	p1 := GoldenPalette(0.6, 0.9)
	p2 := GoldenPalette(0.6, 0.9)

	seen := make(map[Color]bool)
	for i := range 12 {
		if p1(i) != p2(i) {
			t.Fatalf("palette not reproducible at %d: %v vs %v", i, p1(i), p2(i))
		}
		if p1(i).A != 255 {
			t.Errorf("color %d not opaque", i)
		}
		seen[p1(i)] = true
	}
	if len(seen) < 12 {
		t.Errorf("expected 12 distinct colors, got %d", len(seen))
	}
}

func TestFixedPalette(t *testing.T) {
	p := FixedPalette(ColorRed, ColorGreen)
	want := []Color{ColorRed, ColorGreen, ColorRed, ColorGreen}
	for i, w := range want {
		if p(i) != w {
			t.Errorf("p(%d) = %v, want %v", i, p(i), w)
		}
	}
	if p(-1) != ColorGreen {
		t.Errorf("p(-1) = %v, want green", p(-1))
	}
	if FixedPalette()(3) != ColorBlack {
		t.Error("empty palette should yield black")
	}
}
