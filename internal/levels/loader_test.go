package levels_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/l1t/internal/game"
	"github.com/vovakirdan/l1t/internal/levels"
)

const beamLevel = "Beam\ntester\nlight the statue\nIIIII\nI4 SI\nIIIII\n"

func writeLevels(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestCoreLevels(t *testing.T) {
	lvls, err := levels.CoreLoader().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 4 {
		t.Fatalf("expected 4 core levels, got %d", len(lvls))
	}

	wantNames := []string{"Level 1", "Level 2", "Level 3", "Level 4"}
	for i, lvl := range lvls {
		if lvl.Name != wantNames[i] {
			t.Errorf("level %d: Name = %q, want %q", i, lvl.Name, wantNames[i])
		}
		if lvl.Pack != levels.CorePackID {
			t.Errorf("level %d: Pack = %q", i, lvl.Pack)
		}
		if lvl.Source.Kind != levels.SourceCore {
			t.Errorf("level %d: Source = %v", i, lvl.Source)
		}
		if lvl.Board.Player() == nil {
			t.Errorf("level %d has no player", i)
		}
		// No core level is decided before the first move.
		if s := game.NewSession(lvl.Board, game.DefaultRules()); s.State() != game.Playing {
			t.Errorf("level %d starts in state %v", i, s.State())
		}
	}
}

func TestLoaderSkipsInvalidAndSorts(t *testing.T) {
	dir := writeLevels(t, map[string]string{
		"b.l1t":        beamLevel,
		"a.txt":        beamLevel,
		"nested/c.yml": "name: C\ngrid: [\"IIIII\", \"I4 SI\", \"IIIII\"]\n",
		"broken.l1t":   "Broken\nx\ny\nIII\nI I\nI I\n",
		"notes.md":     "ignored",
	})

	lvls, err := levels.NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	var ids []string
	for _, l := range lvls {
		ids = append(ids, l.ID)
	}
	want := []string{"a", "b", "c"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids = %v, want %v", ids, want)
			break
		}
	}
}

func TestLoaderReadAllHeadersOnly(t *testing.T) {
	dir := writeLevels(t, map[string]string{
		"good.l1t":   beamLevel,
		"nogrid.l1t": "Headers\nonly\nhere\n",
	})
	infos, err := levels.NewLoader(dir).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 headers, got %d", len(infos))
	}
	if infos[0].ID != "good" || infos[0].Name != "Beam" || infos[0].Author != "tester" {
		t.Errorf("infos[0] = %+v", infos[0])
	}
	if infos[0].Source.Kind != levels.SourceFile || infos[0].Source.Location != filepath.Join(dir, "good.l1t") {
		t.Errorf("infos[0].Source = %v", infos[0].Source)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	dir := writeLevels(t, map[string]string{"beam.l1t": beamLevel})
	loader := levels.NewLoader(dir)

	lvl, err := loader.LoadByID("beam")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Board.Rows != 1 || lvl.Board.Cols != 3 {
		t.Errorf("board is %dx%d", lvl.Board.Rows, lvl.Board.Cols)
	}
	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("expected error for a missing level")
	}

	ids, err := loader.ListIDs()
	if err != nil || len(ids) != 1 || ids[0] != "beam" {
		t.Errorf("ListIDs = %v, %v", ids, err)
	}
}

func TestLoadPath(t *testing.T) {
	dir := writeLevels(t, map[string]string{"one.l1t": beamLevel})
	lvl, err := levels.LoadPath(filepath.Join(dir, "one.l1t"))
	if err != nil {
		t.Fatalf("LoadPath failed: %v", err)
	}
	if lvl.ID != "one" || lvl.Name != "Beam" {
		t.Errorf("Info = %+v", lvl.Info)
	}
	if _, err := levels.LoadPath(filepath.Join(dir, "nope.l1t")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestDirPack(t *testing.T) {
	dir := writeLevels(t, map[string]string{"beam.l1t": beamLevel})
	pack := levels.NewDirPack("mine", dir, nil)
	if pack.ID() != "dir:mine" {
		t.Errorf("ID = %q", pack.ID())
	}

	ctx := context.Background()
	infos, err := pack.Levels(ctx)
	if err != nil || len(infos) != 1 {
		t.Fatalf("Levels = %v, %v", infos, err)
	}
	if infos[0].Pack != "dir:mine" {
		t.Errorf("Pack = %q", infos[0].Pack)
	}

	// Each load is a fresh board.
	a, err := pack.Load(ctx, "beam")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	b, _ := pack.Load(ctx, "beam")
	if a.Board == b.Board {
		t.Error("Load returned a shared board")
	}
}
