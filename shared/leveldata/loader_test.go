package leveldata

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/automoto/laundry-squadron/physics"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="4">
`

func mapFS(body string) fstest.MapFS {
	return fstest.MapFS{
		"levels/test.tmx": {Data: []byte(header + body + "</map>\n")},
	}
}

func TestLoadArenaPlacements(t *testing.T) {
	fsys := mapFS(` <objectgroup id="1" name="Arena">
  <object id="1" name="cloth" x="10" y="20"><properties><property name="z" type="float" value="30"/></properties><point/></object>
  <object id="2" name="emitter" x="9" y="1"><properties><property name="kind" value="spring"/><property name="z" type="float" value="5"/></properties><point/></object>
  <object id="3" name="emitter" x="2" y="1"><properties><property name="kind" value="sparks"/><property name="ground" type="float" value="-1"/></properties><point/></object>
 </objectgroup>
`)
	arena, err := LoadArena(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if !arena.HasCloth || arena.ClothAt != (physics.Vec3{10, 20, 30}) {
		t.Fatalf("cloth = %v %v", arena.HasCloth, arena.ClothAt)
	}
	if arena.HasSpawner {
		t.Fatal("spawner reported without a spawner object")
	}
	if len(arena.Emitters) != 2 {
		t.Fatalf("emitters = %d, want 2", len(arena.Emitters))
	}
	sparks, spring := arena.Emitters[0], arena.Emitters[1]
	if sparks.Kind != "sparks" || sparks.Ground != -1 {
		t.Fatalf("first emitter = %+v", sparks)
	}
	if spring.Kind != "spring" || spring.Ground != 5-defaultGroundDrop {
		t.Fatalf("second emitter = %+v", spring)
	}
}

func TestLoadArenaIgnoresOtherGroups(t *testing.T) {
	fsys := mapFS(` <objectgroup id="1" name="Decor">
  <object id="1" name="cloth" x="10" y="20"><point/></object>
 </objectgroup>
`)
	arena, err := LoadArena(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if arena.HasCloth || len(arena.Emitters) != 0 {
		t.Fatalf("placements read from a foreign group: %+v", arena)
	}
}

func TestLoadArenaRejectsEmitterWithoutKind(t *testing.T) {
	fsys := mapFS(` <objectgroup id="1" name="Arena">
  <object id="1" name="emitter" x="1" y="1"><point/></object>
 </objectgroup>
`)
	if _, err := LoadArena(fsys, "levels/test.tmx"); err == nil {
		t.Fatal("expected error for emitter without kind")
	}
}

func TestLoadArenaMissingFile(t *testing.T) {
	if _, err := LoadArena(fstest.MapFS{}, "levels/nope.tmx"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestShippedArena(t *testing.T) {
	arena, err := LoadArena(os.DirFS("../../assets"), "levels/arena.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if !arena.HasCloth || !arena.HasSpawner {
		t.Fatalf("arena lacks cloth or spawner: %+v", arena)
	}
	if arena.ClothAt != (physics.Vec3{140, 20, 100}) {
		t.Fatalf("cloth at %v", arena.ClothAt)
	}
	kinds := map[string]bool{}
	for _, e := range arena.Emitters {
		kinds[e.Kind] = true
	}
	for _, k := range []string{"sparks", "vortex", "spring"} {
		if !kinds[k] {
			t.Errorf("arena has no %s emitter", k)
		}
	}
}
