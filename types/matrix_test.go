package types

import "testing"

func TestMat4Transform(t *testing.T) {
	m := Translate4(XYZ(1, 2, 3)).Mul4(Scale4(XYZ(2, 2, 2)))

	out := m.Transform(XYZ(1, 1, 1))
	if !vec3ApproxEq(out, XYZ(3, 4, 5), 1e-5) {
		t.Fatalf("expected transformed point (3, 4, 5); got %v", out)
	}
}

func TestMat4Mul4x1(t *testing.T) {
	m := Translate4(XYZ(5, 0, 0))

	// A direction vector (w=0) must not pick up the translation
	out := m.Mul4x1(XYZW(0, 1, 0, 0))
	if out != (Vec4{0, 1, 0, 0}) {
		t.Fatalf("expected direction (0, 1, 0, 0); got %v", out)
	}

	// A point (w=1) must be translated
	out = m.Mul4x1(XYZW(0, 1, 0, 1))
	if out != (Vec4{5, 1, 0, 1}) {
		t.Fatalf("expected point (5, 1, 0, 1); got %v", out)
	}
}

func TestMat4Inv(t *testing.T) {
	m := Translate4(XYZ(1, -2, 3)).Mul4(Scale4(XYZ(2, 4, 0.5)))

	if !mat4ApproxEq(m.Mul4(m.Inv()), Ident4(), 1e-5) {
		t.Fatalf("expected m * m^-1 to be the identity; got %v", m.Mul4(m.Inv()))
	}
}

func TestMat4InvSingular(t *testing.T) {
	m := Scale4(XYZ(1, 1, 0))
	if m.Inv() != (Mat4{}) {
		t.Fatalf("expected singular matrix inverse to be zero; got %v", m.Inv())
	}
}

func TestLookAtV(t *testing.T) {
	view := LookAtV(XYZ(0, 0, 5), XYZ(0, 0, 0), XYZ(0, 1, 0))

	// A camera at (0, 0, 5) looking at the origin maps the origin to
	// (0, 0, -5) in view space.
	out := view.Transform(XYZ(0, 0, 0))
	if !vec3ApproxEq(out, XYZ(0, 0, -5), 1e-5) {
		t.Fatalf("expected view space origin (0, 0, -5); got %v", out)
	}
}

func TestPerspective4(t *testing.T) {
	proj := Perspective4(90, 1, 1, 1000)

	// Points on the near and far plane map to NDC z = -1 and z = 1.
	near := proj.Mul4x1(XYZW(0, 0, -1, 1))
	if !approx32(near[2]/near[3], -1, 1e-4) {
		t.Fatalf("expected near plane NDC z -1; got %f", near[2]/near[3])
	}
	far := proj.Mul4x1(XYZW(0, 0, -1000, 1))
	if !approx32(far[2]/far[3], 1, 1e-3) {
		t.Fatalf("expected far plane NDC z 1; got %f", far[2]/far[3])
	}

	// With a 90 degree fov, x = -z lands on the right clip plane.
	edge := proj.Mul4x1(XYZW(10, 0, -10, 1))
	if !approx32(edge[0]/edge[3], 1, 1e-4) {
		t.Fatalf("expected right clip plane NDC x 1; got %f", edge[0]/edge[3])
	}
}

func mat4ApproxEq(m1, m2 Mat4, eps float32) bool {
	for i := range m1 {
		if !approx32(m1[i], m2[i], eps) {
			return false
		}
	}
	return true
}

func vec3ApproxEq(v1, v2 Vec3, eps float32) bool {
	return approx32(v1[0], v2[0], eps) && approx32(v1[1], v2[1], eps) && approx32(v1[2], v2[2], eps)
}

func approx32(a, b, eps float32) bool {
	delta := a - b
	if delta < 0 {
		delta = -delta
	}
	return delta <= eps
}
