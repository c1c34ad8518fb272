package color

import "testing"

func TestGeneratorDeterminism(t *testing.T) {
	a := NewGenerator()
	b := NewGenerator()
	for i := 0; i < 100; i++ {
		ca, cb := a.Next(), b.Next()
		if ca != cb {
			t.Fatalf("step %d: generators diverged: %v vs %v", i, ca, cb)
		}
		if ca.Kind() != KindRGB {
			t.Fatalf("step %d: expected RGB color, got %v", i, ca)
		}
	}
}

func TestGeneratorConsecutiveDistinct(t *testing.T) {
	g := NewGenerator()
	prev := g.Next()
	for i := 1; i < 256; i++ {
		next := g.Next()
		if next == prev {
			t.Fatalf("step %d: consecutive colors equal: %v", i, next)
		}
		prev = next
	}
}

func TestGeneratorSpreadsEarlyColors(t *testing.T) {
	g := NewGenerator()
	seen := make(map[Color]bool)
	for i := 0; i < 10; i++ {
		seen[g.Next()] = true
	}
	if len(seen) != 10 {
		t.Fatalf("first 10 colors contain duplicates: %d unique", len(seen))
	}
}
