package game

import "testing"

func TestMovePlayer(t *testing.T) {
	tests := []struct {
		name       string
		grid       []string
		dir        Direction
		wantMoved  bool
		wantPlayer Pos
		// wantPushed, when set, is where the node in front of the player ends up.
		wantPushed *Pos
	}{
		{
			name:       "empty cell",
			grid:       []string{"IIIII", "I X I", "IIIII"},
			dir:        Right,
			wantMoved:  true,
			wantPlayer: P(1, 3),
		},
		{
			name:       "wall ring",
			grid:       []string{"IIIII", "I X I", "IIIII"},
			dir:        Up,
			wantMoved:  false,
			wantPlayer: P(1, 2),
		},
		{
			name:       "interior wall",
			grid:       []string{"IIIII", "IXI I", "IIIII"},
			dir:        Right,
			wantMoved:  false,
			wantPlayer: P(1, 1),
		},
		{
			name:       "push block",
			grid:       []string{"IIIII", "IXB I", "IIIII"},
			dir:        Right,
			wantMoved:  true,
			wantPlayer: P(1, 2),
			wantPushed: &Pos{Row: 1, Col: 3},
		},
		{
			name:       "block against ring",
			grid:       []string{"IIII", "IXBI", "IIII"},
			dir:        Right,
			wantMoved:  false,
			wantPlayer: P(1, 1),
		},
		{
			name:       "two blocks",
			grid:       []string{"IIIIII", "IXBB I", "IIIIII"},
			dir:        Right,
			wantMoved:  false,
			wantPlayer: P(1, 1),
		},
		{
			name:       "block into statue",
			grid:       []string{"IIIII", "IXBSI", "IIIII"},
			dir:        Right,
			wantMoved:  false,
			wantPlayer: P(1, 1),
		},
		{
			name:       "moveable mirror",
			grid:       []string{"IIIII", "I   I", "I ? I", "I X I", "IIIII"},
			dir:        Up,
			wantMoved:  true,
			wantPlayer: P(2, 2),
			wantPushed: &Pos{Row: 1, Col: 2},
		},
		{
			name:       "fixed mirror",
			grid:       []string{"IIIII", "I   I", "I / I", "I X I", "IIIII"},
			dir:        Up,
			wantMoved:  false,
			wantPlayer: P(3, 2),
		},
		{
			name:       "laser",
			grid:       []string{"IIIII", "IX4 I", "IIIII"},
			dir:        Right,
			wantMoved:  false,
			wantPlayer: P(1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := mustGrid(t, tt.grid...)
			start := l.Player().Pos
			var front int
			var hasFront bool
			if tt.wantPushed != nil {
				front, hasFront = l.NodeAt(start.Step(tt.dir))
				if !hasFront {
					t.Fatal("test grid has nothing to push")
				}
			}
			before := len(l.Nodes)

			if got := MovePlayer(l, tt.dir); got != tt.wantMoved {
				t.Errorf("MovePlayer = %v, want %v", got, tt.wantMoved)
			}
			if got := l.Player().Pos; got != tt.wantPlayer {
				t.Errorf("player at %v, want %v", got, tt.wantPlayer)
			}
			if hasFront && l.Nodes[front].Pos != *tt.wantPushed {
				t.Errorf("pushed node at %v, want %v", l.Nodes[front].Pos, *tt.wantPushed)
			}
			if len(l.Nodes) != before {
				t.Errorf("node count changed from %d to %d", before, len(l.Nodes))
			}
			for i := range l.Nodes {
				if j, ok := l.NodeAt(l.Nodes[i].Pos); !ok || j != i {
					t.Errorf("position index out of sync for node %d", i)
				}
			}
		})
	}
}

func TestMovePlayerWithoutPlayer(t *testing.T) {
	l := mustGrid(t, "IIII", "IB I", "IIII")
	if MovePlayer(l, Right) {
		t.Error("a level without a player cannot move")
	}
}

func TestPlayerActionToggles(t *testing.T) {
	l := mustGrid(t,
		"IIIII",
		"I/4 I",
		"IsXSI",
		"I ZbI",
		"IIIII",
	)
	mirror := nodeAt(t, l, 1, 1)
	laser := nodeAt(t, l, 1, 2)
	sw := nodeAt(t, l, 2, 1)
	statue := nodeAt(t, l, 2, 3)
	zapper := nodeAt(t, l, 3, 2)
	button := nodeAt(t, l, 3, 3)

	PlayerAction(l, DefaultRules())

	if laser.On {
		t.Error("adjacent laser should be switched off")
	}
	if !sw.On {
		t.Error("adjacent switch should be switched on")
	}
	if mirror.Orientation != Forward {
		t.Error("diagonal mirror must not be touched")
	}
	if statue.Lit || zapper.Lit {
		t.Error("statues and zappers ignore the action")
	}
	if button.Pressed {
		t.Error("diagonal button must not be touched")
	}
}

func TestPlayerActionFlipsMirror(t *testing.T) {
	l := mustGrid(t, "IIIII", "IX\\ I", "IIIII")
	mirror := nodeAt(t, l, 1, 2)

	PlayerAction(l, DefaultRules())
	if mirror.Orientation != Forward {
		t.Errorf("Orientation = %v, want Forward", mirror.Orientation)
	}
	PlayerAction(l, DefaultRules())
	if mirror.Orientation != Backward {
		t.Errorf("Orientation = %v, want Backward", mirror.Orientation)
	}
}

func TestSwitchFlipsToggleBlocks(t *testing.T) {
	l := mustGrid(t, "IIIIII", "IXsTTI", "IIIIII")
	a, b := nodeAt(t, l, 1, 3), nodeAt(t, l, 1, 4)

	PlayerAction(l, DefaultRules())
	if a.Visible || b.Visible {
		t.Error("toggle blocks should be hidden after the switch")
	}
	PlayerAction(l, DefaultRules())
	if !a.Visible || !b.Visible {
		t.Error("toggle blocks should be visible again")
	}
}

func TestButtonsAdjacent(t *testing.T) {
	rules := DefaultRules()
	l := mustGrid(t, "IIIIII", "IX bTI", "IIIIII")
	button, block := nodeAt(t, l, 1, 3), nodeAt(t, l, 1, 4)

	// The action never presses a button under the adjacency rule.
	MovePlayer(l, Right)
	PlayerAction(l, rules)
	if button.Pressed {
		t.Fatal("action pressed a button under the adjacency rule")
	}

	UpdateButtons(l, rules)
	if !button.Pressed || block.Visible {
		t.Fatalf("stepping next to the button: Pressed=%v Visible=%v", button.Pressed, block.Visible)
	}

	// Staying next to it changes nothing.
	UpdateButtons(l, rules)
	if !button.Pressed || block.Visible {
		t.Fatalf("held button: Pressed=%v Visible=%v", button.Pressed, block.Visible)
	}

	MovePlayer(l, Left)
	UpdateButtons(l, rules)
	if button.Pressed || !block.Visible {
		t.Errorf("released button: Pressed=%v Visible=%v", button.Pressed, block.Visible)
	}
}

func TestButtonsAction(t *testing.T) {
	rules := Rules{Buttons: ButtonsAction}
	l := mustGrid(t, "IIIII", "IXbTI", "IIIII")
	button, block := nodeAt(t, l, 1, 2), nodeAt(t, l, 1, 3)

	UpdateButtons(l, rules)
	if button.Pressed {
		t.Fatal("adjacency pressed a button under the action rule")
	}

	PlayerAction(l, rules)
	if !button.Pressed || block.Visible {
		t.Fatalf("first press: Pressed=%v Visible=%v", button.Pressed, block.Visible)
	}
	PlayerAction(l, rules)
	if button.Pressed || !block.Visible {
		t.Errorf("second press: Pressed=%v Visible=%v", button.Pressed, block.Visible)
	}
}
