package galaxy

import "testing"

func TestBlackBodyColorGradient(t *testing.T) {
	cool := BlackBodyColor(1500) // ember red
	sun := BlackBodyColor(5800)  // near white
	hot := BlackBodyColor(25000) // blue-white

	if cool.R != 255 || cool.B != 0 {
		t.Errorf("1500K should be deep red, got %+v", cool)
	}
	if cool.G >= sun.G {
		t.Errorf("green channel should rise toward solar temperatures: %d vs %d", cool.G, sun.G)
	}
	if hot.B != 255 {
		t.Errorf("25000K should saturate blue, got %+v", hot)
	}
	if hot.R >= sun.R && hot.R == 255 {
		t.Errorf("hot stars should lose red relative to solar, got %+v", hot)
	}
}

func TestBlackBodyColorClampsRange(t *testing.T) {
	if BlackBodyColor(10) != BlackBodyColor(1000) {
		t.Error("temperatures below 1000K must clamp to the palette floor")
	}
	if BlackBodyColor(1e6) != BlackBodyColor(40000) {
		t.Error("temperatures above 40000K must clamp to the palette ceiling")
	}
	for _, k := range []float64{1000, 3000, 6600, 6700, 15000, 40000} {
		c := BlackBodyColor(k)
		if c.A != 255 {
			t.Errorf("alpha must be opaque at %gK", k)
		}
	}
}
