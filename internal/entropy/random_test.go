package entropy

import "testing"

func TestSeedNonZero(t *testing.T) {
	for i := 0; i < 10; i++ {
		if Seed() == 0 {
			t.Fatal("Seed returned zero")
		}
	}
}

func TestSeedVaries(t *testing.T) {
	if Seed() == Seed() {
		t.Fatal("two derived seeds collided")
	}
}
