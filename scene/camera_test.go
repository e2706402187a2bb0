package scene

import (
	"testing"

	"github.com/maxplugins/InfoTexture/types"
)

func TestCameraCenterRay(t *testing.T) {
	camera := NewCamera(60)
	camera.Position = types.XYZ(0, 0, 0)
	camera.LookAt = types.XYZ(0, 0, -1)
	camera.SetupProjection(1)

	ray := camera.RayThrough(types.XY(0.5, 0.5))
	if ray.Origin != camera.Position {
		t.Fatalf("expected ray origin to match camera position; got %v", ray.Origin)
	}
	if !approxEq(ray.Dir[0], 0, 1e-4) || !approxEq(ray.Dir[1], 0, 1e-4) || !approxEq(ray.Dir[2], -1, 1e-4) {
		t.Fatalf("expected center ray dir (0, 0, -1); got %v", ray.Dir)
	}
}

func TestCameraCornerRays(t *testing.T) {
	camera := NewCamera(60)
	camera.Position = types.XYZ(0, 0, 0)
	camera.LookAt = types.XYZ(0, 0, -1)
	camera.SetupProjection(1)

	type spec struct {
		pt    types.Vec2
		signX float32
		signY float32
	}
	specs := []spec{
		// Point (0,0) maps to the top-left frame corner
		spec{types.XY(0, 0), -1, 1},
		spec{types.XY(1, 0), 1, 1},
		spec{types.XY(0, 1), -1, -1},
		spec{types.XY(1, 1), 1, -1},
	}

	for index, s := range specs {
		ray := camera.RayThrough(s.pt)
		if ray.Dir[0]*s.signX <= 0 || ray.Dir[1]*s.signY <= 0 || ray.Dir[2] >= 0 {
			t.Fatalf("[spec %d] expected dir signs (%+.0f, %+.0f, -1); got %v", index, s.signX, s.signY, ray.Dir)
		}
	}
}

func TestCameraInvertY(t *testing.T) {
	camera := NewCamera(60)
	camera.Position = types.XYZ(0, 0, 0)
	camera.LookAt = types.XYZ(0, 0, -1)
	camera.InvertY = true
	camera.SetupProjection(1)

	// With InvertY set, point (0,0) maps to the bottom-left frame corner
	ray := camera.RayThrough(types.XY(0, 0))
	if ray.Dir[1] >= 0 {
		t.Fatalf("expected inverted top-left ray to point down; got %v", ray.Dir)
	}
}

func TestCameraRaysHitForwardGeometry(t *testing.T) {
	sc := NewScene()
	if _, err := sc.AddNode("wall", NewBox("box", types.Vec3{}, types.XYZ(100, 100, 1)), types.Translate4(types.XYZ(0, 0, -10))); err != nil {
		t.Fatal(err)
	}
	sc.Build()

	camera := NewCamera(60)
	camera.Position = types.XYZ(0, 0, 0)
	camera.LookAt = types.XYZ(0, 0, -1)
	camera.SetupProjection(1)

	// Every frame point must generate a ray that reaches the wall
	for _, pt := range []types.Vec2{
		types.XY(0, 0), types.XY(1, 0), types.XY(0, 1), types.XY(1, 1), types.XY(0.5, 0.5), types.XY(0.2, 0.8),
	} {
		if _, found := sc.Intersect(camera.RayThrough(pt)); !found {
			t.Fatalf("expected ray through %v to hit the wall", pt)
		}
	}
}
