package gamify

import "testing"

func TestComputeLevelZero(t *testing.T) {
	state := ComputeLevel(0)
	if state.Level != 1 {
		t.Fatalf("expected level 1, got %d", state.Level)
	}
	if state.CurrentLevelXp != 0 {
		t.Fatalf("expected currentLevelXP 0, got %d", state.CurrentLevelXp)
	}
	if state.NextLevelXp != 150 {
		t.Fatalf("expected nextLevelXP 150, got %d", state.NextLevelXp)
	}
	if state.ProgressPercent != 0 {
		t.Fatalf("expected progress 0, got %d", state.ProgressPercent)
	}
}

func TestComputeLevelBoundaries(t *testing.T) {
	// 150 XP completes level 1 exactly.
	below := ComputeLevel(149)
	if below.Level != 1 {
		t.Fatalf("149 XP: expected level 1, got %d", below.Level)
	}
	at := ComputeLevel(150)
	if at.Level != 2 {
		t.Fatalf("150 XP: expected level 2, got %d", at.Level)
	}
	if at.CurrentLevelXp != 0 {
		t.Fatalf("150 XP: expected currentLevelXP 0, got %d", at.CurrentLevelXp)
	}
	if at.NextLevelXp != 200 {
		t.Fatalf("150 XP: expected nextLevelXP 200, got %d", at.NextLevelXp)
	}

	// 150 + 200 = 350 completes level 2.
	l3 := ComputeLevel(350)
	if l3.Level != 3 {
		t.Fatalf("350 XP: expected level 3, got %d", l3.Level)
	}
	if l3.NextLevelXp != 250 {
		t.Fatalf("350 XP: expected nextLevelXP 250, got %d", l3.NextLevelXp)
	}
}

func TestComputeLevelInvariants(t *testing.T) {
	prevLevel := 0
	for xp := 0; xp <= 20000; xp++ {
		state := ComputeLevel(xp)
		if state.Level < prevLevel {
			t.Fatalf("xp=%d: level decreased from %d to %d", xp, prevLevel, state.Level)
		}
		prevLevel = state.Level

		if state.Xp != xp {
			t.Fatalf("xp=%d: state.Xp=%d", xp, state.Xp)
		}
		if state.CurrentLevelXp < 0 || state.CurrentLevelXp >= state.NextLevelXp {
			t.Fatalf("xp=%d: currentLevelXP %d out of [0, %d)", xp, state.CurrentLevelXp, state.NextLevelXp)
		}
		if state.ProgressPercent < 0 || state.ProgressPercent > 100 {
			t.Fatalf("xp=%d: progress %d out of [0, 100]", xp, state.ProgressPercent)
		}
	}
}

func TestComputeLevelProgressIsFloored(t *testing.T) {
	// 100/150 = 66.67%, floored to 66.
	state := ComputeLevel(100)
	if state.ProgressPercent != 66 {
		t.Fatalf("expected progress 66, got %d", state.ProgressPercent)
	}
}

func TestComputeLevelLargeTotal(t *testing.T) {
	// Levels 1-11 cost 150+200+...+650 = 4400 in total, so 4825 sits 425
	// into level 12, which costs 700.
	state := ComputeLevel(4825)
	if state.Level != 12 {
		t.Fatalf("expected level 12, got %d", state.Level)
	}
	if state.CurrentLevelXp != 425 {
		t.Fatalf("expected currentLevelXP 425, got %d", state.CurrentLevelXp)
	}
	if state.NextLevelXp != 700 {
		t.Fatalf("expected nextLevelXP 700, got %d", state.NextLevelXp)
	}
	if state.ProgressPercent != 60 {
		t.Fatalf("expected progress 60, got %d", state.ProgressPercent)
	}
}
