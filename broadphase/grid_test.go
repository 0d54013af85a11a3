package broadphase

import (
	"sort"
	"testing"

	"github.com/automoto/laundry-squadron/physics"
)

func collect(g *Grid, pos physics.Vec3, radius float64) []int {
	var ids []int
	g.Candidates(pos, radius, func(id int) { ids = append(ids, id) })
	sort.Ints(ids)
	return ids
}

func newTestGrid() *Grid {
	return New(64, 64, 2, physics.Vec3{140, 20, 100})
}

func TestCandidatesFindsNearbyPoints(t *testing.T) {
	g := newTestGrid()
	g.Set(1, physics.Vec3{140, 20, 100}, 0.01)
	g.Set(2, physics.Vec3{150, 20, 90}, 0.01)

	got := collect(g, physics.Vec3{140.2, 35, 100.1}, 0.1)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("candidates = %v, want [1]", got)
	}
	if got := collect(g, physics.Vec3{120, 20, 120}, 0.1); len(got) != 0 {
		t.Fatalf("far query found %v", got)
	}
}

func TestCandidatesIgnoreDepth(t *testing.T) {
	g := newTestGrid()
	g.Set(7, physics.Vec3{141, 20, 99}, 0.01)
	// Y is the flight axis and is not part of the grid.
	if got := collect(g, physics.Vec3{141, -500, 99}, 0.5); len(got) != 1 {
		t.Fatalf("candidates = %v, want [7]", got)
	}
}

func TestSetMovesExistingPoint(t *testing.T) {
	g := newTestGrid()
	g.Set(3, physics.Vec3{140, 20, 100}, 0.01)
	g.Set(3, physics.Vec3{150, 20, 110}, 0.01)

	if g.Len() != 1 {
		t.Fatalf("Len = %d after move, want 1", g.Len())
	}
	if got := collect(g, physics.Vec3{140, 20, 100}, 0.1); len(got) != 0 {
		t.Fatalf("stale cell still reports %v", got)
	}
	if got := collect(g, physics.Vec3{150, 20, 110}, 0.1); len(got) != 1 {
		t.Fatalf("moved point not found: %v", got)
	}
}

func TestRemoveAndClear(t *testing.T) {
	g := newTestGrid()
	for i := 0; i < 5; i++ {
		g.Set(i, physics.Vec3{140 + float64(i)*0.1, 20, 100}, 0.01)
	}
	g.Remove(2)
	g.Remove(99)
	got := collect(g, physics.Vec3{140.2, 20, 100}, 0.5)
	for _, id := range got {
		if id == 2 {
			t.Fatal("removed point still a candidate")
		}
	}
	if len(got) != 4 {
		t.Fatalf("candidates = %v, want 4 ids", got)
	}

	g.Clear()
	if g.Len() != 0 {
		t.Fatalf("Len = %d after Clear", g.Len())
	}
	if got := collect(g, physics.Vec3{140.2, 20, 100}, 0.5); len(got) != 0 {
		t.Fatalf("cleared grid returned %v", got)
	}
}

func TestOccupiedCells(t *testing.T) {
	g := newTestGrid()
	g.Set(1, physics.Vec3{140.5, 20, 100.5}, 0.01)

	var cells int
	g.OccupiedCells(func(x, z, size float64) {
		cells++
		if size != 2 {
			t.Errorf("cell size = %v", size)
		}
		if 140.5 < x || 140.5 > x+size || 100.5 < z || 100.5 > z+size {
			t.Errorf("cell (%v, %v) does not contain the point", x, z)
		}
	})
	if cells != 1 {
		t.Fatalf("occupied cells = %d, want 1", cells)
	}
}
