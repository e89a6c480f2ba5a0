// Package gamify computes the XP leveling curve used by the dashboard
// progress bar and the alert-resolution rewards. Everything here is a pure
// function of its inputs; persistence lives in models.
package gamify

// LevelState describes where a cumulative XP total sits on the level curve.
type LevelState struct {
	Level           int `json:"level"`
	Xp              int `json:"xp"`
	CurrentLevelXp  int `json:"currentLevelXP"`
	NextLevelXp     int `json:"nextLevelXP"`
	ProgressPercent int `json:"progress"`
}

// Requirement is the XP needed to complete level, starting at level 1.
// The curve grows linearly so later levels require more investment:
// level 1 completes at 150, level 2 at 200, level 3 at 250, ...
func Requirement(level int) int {
	return 100 + 50*level
}

// ComputeLevel converts a cumulative XP total into a level, the XP earned
// within that level, the requirement of the current level, and a progress
// percentage. It never caches: callers recompute on every read so a level
// can never go stale across awards.
//
// Invariants: Level >= 1 and 0 <= CurrentLevelXp < NextLevelXp for every
// non-negative total.
func ComputeLevel(totalXp int) LevelState {
	level := 1
	levelFloor := 0

	for totalXp >= levelFloor+Requirement(level) {
		levelFloor += Requirement(level)
		level++
	}

	currentLevelXp := totalXp - levelFloor
	nextLevelXp := Requirement(level)

	progress := 100 * currentLevelXp / nextLevelXp
	if progress > 100 {
		progress = 100
	}

	return LevelState{
		Level:           level,
		Xp:              totalXp,
		CurrentLevelXp:  currentLevelXp,
		NextLevelXp:     nextLevelXp,
		ProgressPercent: progress,
	}
}
