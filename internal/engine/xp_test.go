package engine

import (
	"math"
	"testing"
)

func TestXPRequiredForLevelRounding(t *testing.T) {
	// 100 * 1.5^(n-1), rounded to the nearest 50.
	cases := map[int]int{
		1: 100,
		2: 150,
		3: 250, // 225 rounds up
		4: 350, // 337.5 rounds up
	}
	for level, want := range cases {
		if got := XPRequiredForLevel(level); got != want {
			t.Fatalf("XPRequiredForLevel(%d)=%d, want %d", level, got, want)
		}
	}
	if got := XPRequiredForLevel(0); got != 0 {
		t.Fatalf("XPRequiredForLevel(0)=%d, want 0", got)
	}
}

func TestCumulativeXPForLevel(t *testing.T) {
	if got := CumulativeXPForLevel(1); got != 0 {
		t.Fatalf("CumulativeXPForLevel(1)=%d, want 0", got)
	}
	if got := CumulativeXPForLevel(2); got != 150 {
		t.Fatalf("CumulativeXPForLevel(2)=%d, want 150", got)
	}
	if got := CumulativeXPForLevel(3); got != 400 {
		t.Fatalf("CumulativeXPForLevel(3)=%d, want 400", got)
	}
}

func TestLevelRoundTrip(t *testing.T) {
	for l := 1; l <= 50; l++ {
		at := CumulativeXPForLevel(l)
		if got := LevelForTotalXP(at); got != l {
			t.Fatalf("LevelForTotalXP(cum(%d))=%d, want %d", l, got, l)
		}
		if l > 1 {
			if got := LevelForTotalXP(at - 1); got != l-1 {
				t.Fatalf("LevelForTotalXP(cum(%d)-1)=%d, want %d", l, got, l-1)
			}
		}
	}
}

func TestLevelForTotalXPEdges(t *testing.T) {
	if got := LevelForTotalXP(0); got != 1 {
		t.Fatalf("LevelForTotalXP(0)=%d, want 1", got)
	}
	if got := LevelForTotalXP(-5); got != 1 {
		t.Fatalf("LevelForTotalXP(-5)=%d, want 1", got)
	}
}

func TestCumulativeXPNeverDecreases(t *testing.T) {
	// The exponential requirement saturates around level 95; past that the
	// cumulative curve must hold flat at math.MaxInt, never wrap negative.
	prev := 0
	for l := 1; l <= 2*maxLevel; l++ {
		c := CumulativeXPForLevel(l)
		if c < prev {
			t.Fatalf("CumulativeXPForLevel(%d)=%d < CumulativeXPForLevel(%d)=%d", l, c, l-1, prev)
		}
		prev = c
	}
	if prev != math.MaxInt {
		t.Fatalf("cumulative curve never saturated: top value %d", prev)
	}
}

func TestLevelForHugeTotalXPTerminates(t *testing.T) {
	// A corrupt save can carry any totalXp; the level walk must still
	// return, and within the level cap.
	for _, xp := range []int{math.MaxInt, math.MaxInt - 1, math.MaxInt / 2} {
		got := LevelForTotalXP(xp)
		if got < 1 || got > maxLevel {
			t.Fatalf("LevelForTotalXP(%d)=%d, want within [1, %d]", xp, got, maxLevel)
		}
	}
	if got := LevelForTotalXP(math.MaxInt); got != maxLevel {
		t.Fatalf("LevelForTotalXP(MaxInt)=%d, want %d", got, maxLevel)
	}
}

func TestXPForStars(t *testing.T) {
	want := map[int]int{1: 10, 2: 15, 3: 20, 4: 30, 5: 40}
	for stars, xp := range want {
		got, err := XPForStars(stars)
		if err != nil {
			t.Fatalf("XPForStars(%d): %v", stars, err)
		}
		if got != xp {
			t.Fatalf("XPForStars(%d)=%d, want %d", stars, got, xp)
		}
	}
	if _, err := XPForStars(6); err == nil {
		t.Fatalf("expected error for unknown star rating")
	}
	if _, err := XPForStars(0); err == nil {
		t.Fatalf("expected error for zero star rating")
	}
}
