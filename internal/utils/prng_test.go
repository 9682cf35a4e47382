package utils

import "testing"

func TestPRNGServiceIsReproducible(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Fatalf("expected seed 42, got %d", a.Seed())
	}
}

func TestPRNGServiceZeroSeed(t *testing.T) {
	s := NewPRNGService(0)
	if s.Seed() == 0 {
		t.Fatal("zero seed should be replaced by the clock")
	}
}

func TestPRNGServiceRanges(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		if v := s.Intn(3); v < 0 || v >= 3 {
			t.Fatalf("Intn out of range: %d", v)
		}
		if f := s.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
		if f := s.Float32(); f < 0 || f >= 1 {
			t.Fatalf("Float32 out of range: %f", f)
		}
	}

	items := []int{1, 2, 3, 4, 5}
	s.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	sum := 0
	for _, v := range items {
		sum += v
	}
	if sum != 15 {
		t.Fatalf("shuffle lost elements: %v", items)
	}
}
