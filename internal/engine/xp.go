package engine

import (
	"fmt"
	"math"
)

const (
	// BaseXPPerLevel is the XP needed to clear level 1.
	BaseXPPerLevel = 100.0

	// LevelMultiplier compounds the per-level requirement.
	LevelMultiplier = 1.5

	// maxLevel bounds the level walk. The cumulative requirement saturates
	// int well before this, so a corrupt save with an absurd totalXp maps
	// to maxLevel instead of hanging the load.
	maxLevel = 1000
)

// starsMultiplier maps a 1-5 star difficulty rating to its XP weight.
var starsMultiplier = map[int]float64{
	1: 0.5,
	2: 0.75,
	3: 1,
	4: 1.5,
	5: 2,
}

// XPRequiredForLevel returns the XP needed to go from level-1 to level,
// rounded to the nearest 50. The exponential curve exceeds the int range
// around level 95; past that point the requirement saturates at math.MaxInt
// so callers never see an overflowed (negative) value.
func XPRequiredForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	req := BaseXPPerLevel * math.Pow(LevelMultiplier, float64(level-1))
	if req >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(math.Round(req/50.0)) * 50
}

// CumulativeXPForLevel returns the total XP needed to reach targetLevel
// starting from level 1 with 0 XP. CumulativeXPForLevel(1) == 0. The sum
// saturates at math.MaxInt instead of wrapping, keeping the curve
// non-decreasing for any level.
func CumulativeXPForLevel(targetLevel int) int {
	total := 0
	for i := 1; i < targetLevel; i++ {
		step := XPRequiredForLevel(i + 1)
		if total > math.MaxInt-step {
			return math.MaxInt
		}
		total += step
	}
	return total
}

// LevelForTotalXP returns the largest level whose cumulative requirement is
// within totalXP. The walk is bounded by maxLevel: once the cumulative
// curve saturates, a totalXP at the saturation point would otherwise never
// fail the comparison.
func LevelForTotalXP(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	level := 1
	for level < maxLevel && totalXP >= CumulativeXPForLevel(level+1) {
		level++
	}
	return level
}

// XPForStars returns the XP award for a task rated 1-5 stars. Ratings
// outside the table are a caller bug and fail loudly.
func XPForStars(starRating int) (int, error) {
	mult, ok := starsMultiplier[starRating]
	if !ok {
		return 0, fmt.Errorf("invalid star rating: %d", starRating)
	}
	return int(math.Round(20 * mult)), nil
}
