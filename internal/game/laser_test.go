package game

import "testing"

func TestBeamStraight(t *testing.T) {
	l := mustGrid(t,
		"IIIII",
		"I4 SI",
		"IIIII",
	)
	FireLasers(l, DefaultRules())

	laser := nodeAt(t, l, 1, 1)
	want := []Pos{P(1, 2), P(1, 3)}
	if !samePositions(laser.Beam, want) {
		t.Errorf("Beam = %v, want %v", laser.Beam, want)
	}
	if !nodeAt(t, l, 1, 3).Lit {
		t.Error("statue should be lit")
	}
}

func TestBeamStopsAtWallRing(t *testing.T) {
	l := mustGrid(t,
		"IIIIII",
		"I4   I",
		"I    I",
		"IIIIII",
	)
	FireLasers(l, DefaultRules())

	beam := nodeAt(t, l, 1, 1).Beam
	want := []Pos{P(1, 2), P(1, 3), P(1, 4)}
	if !samePositions(beam, want) {
		t.Errorf("Beam = %v, want %v", beam, want)
	}
	for _, p := range beam {
		if !l.InBounds(p) {
			t.Errorf("beam recorded %v outside the interior", p)
		}
	}
}

func TestBeamLengthWithoutMirrors(t *testing.T) {
	grids := [][]string{
		{"IIIIIII", "I1    I", "I  2  I", "I    3I", "I4    I", "IIIIIII"},
		{"IIII", "I2 I", "I  I", "I  I", "I 1I", "IIII"},
		{"IIIIIIIIII", "I4      3I", "IIIIIIIIII"},
	}
	for _, g := range grids {
		l := mustGrid(t, g...)
		FireLasers(l, DefaultRules())
		for i := range l.Nodes {
			n := &l.Nodes[i]
			if n.Kind != KindLaser {
				continue
			}
			if len(n.Beam) > l.Rows+l.Cols {
				t.Errorf("laser at %v swept %d cells, limit %d", n.Pos, len(n.Beam), l.Rows+l.Cols)
			}
			for _, p := range n.Beam {
				if !l.InBounds(p) {
					t.Errorf("laser at %v recorded %v outside the interior", n.Pos, p)
				}
			}
		}
	}
}

func TestBeamForwardMirror(t *testing.T) {
	l := mustGrid(t,
		"IIIII",
		"I/ SI",
		"I   I",
		"I1  I",
		"IIIII",
	)
	FireLasers(l, DefaultRules())

	want := []Pos{P(2, 1), P(1, 1), P(1, 2), P(1, 3)}
	if beam := nodeAt(t, l, 3, 1).Beam; !samePositions(beam, want) {
		t.Errorf("Beam = %v, want %v", beam, want)
	}
	if !nodeAt(t, l, 1, 3).Lit {
		t.Error("statue should be lit after the reflection")
	}
}

func TestBeamBackwardMirror(t *testing.T) {
	l := mustGrid(t,
		"IIIII",
		"I4 \\I",
		"I   I",
		"I  SI",
		"IIIII",
	)
	FireLasers(l, DefaultRules())

	want := []Pos{P(1, 2), P(1, 3), P(2, 3), P(3, 3)}
	if beam := nodeAt(t, l, 1, 1).Beam; !samePositions(beam, want) {
		t.Errorf("Beam = %v, want %v", beam, want)
	}
	if !nodeAt(t, l, 3, 3).Lit {
		t.Error("statue should be lit after the reflection")
	}
}

func TestBeamBlockedByFixedNodes(t *testing.T) {
	for _, blocker := range []string{"B", "s", "b", "T", "I"} {
		t.Run(blocker, func(t *testing.T) {
			l := mustGrid(t,
				"IIIII",
				"I4"+blocker+"SI",
				"IIIII",
			)
			FireLasers(l, DefaultRules())

			want := []Pos{P(1, 2)}
			if beam := nodeAt(t, l, 1, 1).Beam; !samePositions(beam, want) {
				t.Errorf("Beam = %v, want %v", beam, want)
			}
			if nodeAt(t, l, 1, 3).Lit {
				t.Error("statue behind the blocker should stay unlit")
			}
		})
	}
}

func TestBeamKillsPlayer(t *testing.T) {
	l := mustGrid(t,
		"IIIII",
		"I4 XI",
		"IIIII",
	)
	FireLasers(l, DefaultRules())
	if !l.Player().Dead {
		t.Error("player should be dead")
	}

	// Still dead after a second pass.
	FireLasers(l, DefaultRules())
	if !l.Player().Dead {
		t.Error("player should stay dead")
	}
}

func TestBeamTogglesZapper(t *testing.T) {
	l := mustGrid(t,
		"IIIII",
		"I4 ZI",
		"IIIII",
	)
	FireLasers(l, DefaultRules())
	if !nodeAt(t, l, 1, 3).Lit {
		t.Fatal("zapper should be lit after the first pass")
	}
	FireLasers(l, DefaultRules())
	if nodeAt(t, l, 1, 3).Lit {
		t.Error("zapper should toggle back off on the second pass")
	}
}

func TestBeamTurnsLaserOff(t *testing.T) {
	l := mustGrid(t,
		"IIIII",
		"I4 3I",
		"IIIII",
	)
	FireLasers(l, DefaultRules())

	first, second := nodeAt(t, l, 1, 1), nodeAt(t, l, 1, 3)
	if !first.On {
		t.Error("first laser should stay on")
	}
	if second.On {
		t.Error("second laser should be switched off by the first")
	}
	if len(second.Beam) != 0 {
		t.Errorf("switched off laser kept beam %v", second.Beam)
	}

	// Off is sticky under the default rule.
	FireLasers(l, DefaultRules())
	if second.On {
		t.Error("second laser should stay off")
	}
}

func TestBeamTogglesLaser(t *testing.T) {
	rules := Rules{LaserHit: LaserHitToggle}
	l := mustGrid(t,
		"IIIII",
		"I4 3I",
		"IIIII",
	)
	first, second := nodeAt(t, l, 1, 1), nodeAt(t, l, 1, 3)

	FireLasers(l, rules)
	if !first.On || second.On {
		t.Fatalf("after pass 1: first.On=%v second.On=%v, want true false", first.On, second.On)
	}

	// The first beam turns the second back on, which then switches the first off.
	FireLasers(l, rules)
	if first.On || !second.On {
		t.Errorf("after pass 2: first.On=%v second.On=%v, want false true", first.On, second.On)
	}
}

func TestBeamOffLaserClearsBeam(t *testing.T) {
	l := mustGrid(t,
		"IIIII",
		"I4  I",
		"IIIII",
	)
	laser := nodeAt(t, l, 1, 1)
	FireLasers(l, DefaultRules())
	if len(laser.Beam) == 0 {
		t.Fatal("expected a beam")
	}
	laser.TurnOff()
	FireLasers(l, DefaultRules())
	if len(laser.Beam) != 0 {
		t.Errorf("Beam = %v, want empty", laser.Beam)
	}
}

func TestBeamReturnsToOwnLaser(t *testing.T) {
	l := mustGrid(t,
		"IIIII",
		"I4 \\I",
		"I   I",
		"I\\ /I",
		"IIIII",
	)
	FireLasers(l, DefaultRules())

	laser := nodeAt(t, l, 1, 1)
	want := []Pos{
		P(1, 2), P(1, 3), P(2, 3), P(3, 3),
		P(3, 2), P(3, 1), P(2, 1), P(1, 1),
	}
	if !samePositions(laser.Beam, want) {
		t.Errorf("Beam = %v, want %v", laser.Beam, want)
	}
	if laser.On {
		t.Error("a laser struck by its own beam should switch off")
	}
}
