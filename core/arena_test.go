package core

import "testing"

// TestArenaGrowthPreservesData checks that values written before a
// growth survive it unchanged and that count tracks allocations.
func TestArenaGrowthPreservesData(t *testing.T) {
	a := NewArena[int](4, 4)

	const n = 100
	for i := 0; i < n; i++ {
		idx := a.Allocate()
		if idx != i {
			t.Fatalf("Allocate returned %d, want %d", idx, i)
		}
		a.Set(idx, i*i)
	}

	if a.Len() != n {
		t.Errorf("Len = %d after %d allocations", a.Len(), n)
	}
	if len(a.Span()) != n {
		t.Errorf("Span length = %d, want %d", len(a.Span()), n)
	}
	for i, v := range a.Span() {
		if v != i*i {
			t.Fatalf("slot %d = %d after growth, want %d", i, v, i*i)
		}
	}
}

func TestArenaClearRetainsStorage(t *testing.T) {
	a := NewArena[float64](8, 8)
	for i := 0; i < 50; i++ {
		a.Set(a.Allocate(), float64(i))
	}
	grown := a.Cap()

	a.Clear()
	if a.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", a.Len())
	}
	if a.Cap() != grown {
		t.Errorf("Cap = %d after Clear, want %d retained", a.Cap(), grown)
	}
	if len(a.Span()) != 0 {
		t.Errorf("Span not empty after Clear")
	}
}

func TestArenaReserveMakesPassGrowFree(t *testing.T) {
	a := NewArena[int](4, 16)
	a.Reserve(1000)
	capBefore := a.Cap()
	if capBefore < 1000 {
		t.Fatalf("Cap = %d after Reserve(1000)", capBefore)
	}
	for i := 0; i < 1000; i++ {
		a.Allocate()
	}
	if a.Cap() != capBefore {
		t.Errorf("arena grew during a reserved pass: %d -> %d", capBefore, a.Cap())
	}
}

func TestArenaGrowthPolicy(t *testing.T) {
	a := NewArena[byte](10, 10)
	for i := 0; i < 11; i++ {
		a.Allocate()
	}
	// 10 -> max(15, 20) rounded to increment = 20
	if a.Cap() != 20 {
		t.Errorf("Cap = %d after first growth, want 20", a.Cap())
	}
	if a.Cap()%10 != 0 {
		t.Errorf("Cap = %d not a multiple of the growth increment", a.Cap())
	}
}

func TestArenaRejectsBadConstruction(t *testing.T) {
	for _, tc := range []struct{ cap, inc int }{{0, 8}, {-1, 8}, {8, 0}, {8, -2}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewArena(%d, %d) did not panic", tc.cap, tc.inc)
				}
			}()
			NewArena[int](tc.cap, tc.inc)
		}()
	}
}
