package tree

import "testing"

func TestSeededRNGDeterministic(t *testing.T) {
	rngA := seededRNG(12345, saltFoliage)
	rngB := seededRNG(12345, saltFoliage)

	for i := 0; i < 20; i++ {
		gotA := rngA.IntN(100000)
		gotB := rngB.IntN(100000)
		if gotA != gotB {
			t.Fatalf("expected deterministic sequence, mismatch at %d: %d != %d", i, gotA, gotB)
		}
	}
}

func TestSeedWordChangesWithSalt(t *testing.T) {
	a := seedWord(99, "a")
	b := seedWord(99, "b")
	if a == b {
		t.Fatalf("expected different seed words for different salts")
	}
}

func TestStreamsDifferPerSalt(t *testing.T) {
	foliage := seededRNG(7, saltFoliage)
	gifts := seededRNG(7, Gift.salt())
	same := 0
	for i := 0; i < 16; i++ {
		if foliage.Uint64() == gifts.Uint64() {
			same++
		}
	}
	if same == 16 {
		t.Fatalf("expected independent streams for foliage and gifts")
	}
}

func TestUniformStaysInRange(t *testing.T) {
	rng := seededRNG(1, "uniform")
	for i := 0; i < 1000; i++ {
		v := uniform(rng, 0.3, 0.6)
		if v < 0.3 || v > 0.6 {
			t.Fatalf("uniform out of range: %v", v)
		}
	}
}
