package renderer

import (
	"testing"

	"github.com/maxplugins/InfoTexture/infotex"
	"github.com/maxplugins/InfoTexture/scene"
	"github.com/maxplugins/InfoTexture/types"
)

func TestNewDefaultValidation(t *testing.T) {
	opts := Options{FrameW: 16, FrameH: 16}

	if _, err := NewDefault(nil, opts); err != ErrSceneNotDefined {
		t.Fatalf("expected error %v; got %v", ErrSceneNotDefined, err)
	}

	sc := scene.NewScene()
	if _, err := NewDefault(sc, opts); err != ErrCameraNotDefined {
		t.Fatalf("expected error %v; got %v", ErrCameraNotDefined, err)
	}

	sc.SetCamera(scene.NewCamera(60))
	if _, err := NewDefault(sc, Options{FrameW: 0, FrameH: 16}); err != ErrInvalidDimensions {
		t.Fatalf("expected error %v; got %v", ErrInvalidDimensions, err)
	}
	if _, err := NewDefault(sc, opts); err != nil {
		t.Fatal(err)
	}
}

func TestRenderPassUnsupportedMode(t *testing.T) {
	r, err := NewDefault(cameraOnlyScene(), Options{FrameW: 4, FrameH: 4})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := r.RenderPass(PassMode(99)); err != ErrUnsupportedMode {
		t.Fatalf("expected error %v; got %v", ErrUnsupportedMode, err)
	}
}

func TestRenderPassEmptyScene(t *testing.T) {
	r, err := NewDefault(cameraOnlyScene(), Options{FrameW: 8, FrameH: 8})
	if err != nil {
		t.Fatal(err)
	}

	facePass, err := r.RenderPass(FaceIndexPass)
	if err != nil {
		t.Fatal(err)
	}
	baryPass, err := r.RenderPass(BaryCoordPass)
	if err != nil {
		t.Fatal(err)
	}

	hit, err := infotex.HitAt(types.XY(0.5, 0.5), facePass, baryPass)
	if err != nil {
		t.Fatal(err)
	}
	if hit != nil {
		t.Fatalf("expected no hit when no geometry covers the frame; got %+v", hit)
	}
}

func TestRenderPassMatchesIntersect(t *testing.T) {
	sc := fullCoverScene(t)
	r, err := NewDefault(sc, Options{FrameW: 64, FrameH: 64, NumWorkers: 4})
	if err != nil {
		t.Fatal(err)
	}

	facePass, err := r.RenderPass(FaceIndexPass)
	if err != nil {
		t.Fatal(err)
	}
	baryPass, err := r.RenderPass(BaryCoordPass)
	if err != nil {
		t.Fatal(err)
	}

	cam := sc.Camera
	for _, pt := range []types.Vec2{
		types.XY(0, 0), types.XY(1, 1), types.XY(0.5, 0.5), types.XY(0.13, 0.77), types.XY(0.92, 0.04),
	} {
		hit, err := infotex.HitAt(pt, facePass, baryPass)
		if err != nil {
			t.Fatal(err)
		}
		if hit == nil {
			t.Fatalf("expected a decoded hit at %v", pt)
		}

		rayHit, found := sc.Intersect(cam.RayThrough(pt))
		if !found {
			t.Fatalf("expected a geometric hit at %v", pt)
		}
		if hit.Node != rayHit.Node || hit.FaceIndex != rayHit.FaceIndex {
			t.Fatalf("decoded (node %d, face %d) at %v but intersection reports (node %d, face %d)",
				hit.Node, hit.FaceIndex, pt, rayHit.Node, rayHit.FaceIndex)
		}

		// Decoded weights are quantized to 8 bits per channel
		for i := 0; i < 3; i++ {
			delta := hit.Bary[i] - rayHit.Bary[i]
			if delta < -0.01 || delta > 0.01 {
				t.Fatalf("decoded bary %v at %v but intersection reports %v", hit.Bary, pt, rayHit.Bary)
			}
		}
	}
}

func TestRenderPassStats(t *testing.T) {
	r, err := NewDefault(fullCoverScene(t), Options{FrameW: 16, FrameH: 16, NumWorkers: 3})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.RenderPass(FaceIndexPass); err != nil {
		t.Fatal(err)
	}

	stats := r.Stats()
	if len(stats.Blocks) != 3 {
		t.Fatalf("expected 3 block stats; got %d", len(stats.Blocks))
	}

	var covered uint32
	for _, block := range stats.Blocks {
		covered += block.BlockH
	}
	if covered != 16 {
		t.Fatalf("expected blocks to cover 16 rows; got %d", covered)
	}
}

// Scene with a camera but no geometry.
func cameraOnlyScene() *scene.Scene {
	sc := scene.NewScene()
	sc.SetCamera(scene.NewCamera(60))
	return sc
}

// Scene with a single triangle that covers the entire camera frustrum, so
// every frame pixel decodes to (node 1, face 1).
func fullCoverScene(t *testing.T) *scene.Scene {
	mesh := scene.NewMesh("tri")
	mesh.AddVertex(types.XYZ(-100, -100, -10))
	mesh.AddVertex(types.XYZ(100, -100, -10))
	mesh.AddVertex(types.XYZ(0, 100, -10))
	if err := mesh.AddFace(0, 1, 2); err != nil {
		t.Fatal(err)
	}

	sc := scene.NewScene()
	if _, err := sc.AddNode("tri", mesh, types.Ident4()); err != nil {
		t.Fatal(err)
	}
	sc.SetCamera(scene.NewCamera(60))
	return sc
}
