package scene

import (
	"github.com/chewxy/math32"
	"github.com/maxplugins/InfoTexture/types"
)

const (
	// Intersections closer than this along the ray are rejected to avoid
	// self-intersection artifacts.
	intersectEpsilon float32 = 1e-6

	maxFloat = math32.MaxFloat32
)

// A ray with a world-space origin and a normalized direction.
type Ray struct {
	Origin types.Vec3
	Dir    types.Vec3
}

// Get the point at parametric distance t along the ray.
func (r Ray) At(t float32) types.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// The result of intersecting a ray with the scene geometry.
type RayHit struct {
	// The id of the node that owns the intersected face.
	Node uint32

	// One-based index of the intersected face within the node's mesh.
	FaceIndex uint32

	// Barycentric coordinates of the intersection point.
	Bary types.Vec3

	// Parametric distance along the ray.
	T float32
}

// Intersect a ray with a triangle using the Moeller-Trumbore algorithm. The
// returned u/v values are the barycentric weights of the second and third
// vertex; the weight of the first vertex is 1-u-v.
func intersectTriangle(r Ray, v0, v1, v2 types.Vec3) (t, u, v float32, hit bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)

	pvec := r.Dir.Cross(e2)
	det := e1.Dot(pvec)
	if math32.Abs(det) < intersectEpsilon {
		return 0, 0, 0, false
	}
	invDet := 1.0 / det

	tvec := r.Origin.Sub(v0)
	u = tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	qvec := tvec.Cross(e1)
	v = r.Dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = e2.Dot(qvec) * invDet
	if t < intersectEpsilon {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// Test a ray against an axis-aligned bounding box. Only intersections in the
// (0, tMax) parametric range are accepted. Boxes with zero extent along an
// axis (flat axis-aligned geometry) collapse the slab to t0 == t1 and must
// still pass, so the bounds comparison is strict.
func intersectAABB(r Ray, min, max types.Vec3, tMax float32) bool {
	var tMin float32
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / r.Dir[axis]
		t0 := (min[axis] - r.Origin[axis]) * invD
		t1 := (max[axis] - r.Origin[axis]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax < tMin {
			return false
		}
	}
	return true
}
