package infotex

import "github.com/maxplugins/InfoTexture/types"

// The geometry visible at a queried screen point.
type Hit struct {
	// Id of the scene node that owns the visible face.
	Node uint32

	// One-based index of the visible face within the node's mesh.
	FaceIndex uint32

	// Barycentric coordinates of the visible point within its face.
	Bary types.Vec3
}

// HitAt maps a normalized screen point to the geometry visible at that point
// using two precomputed info passes. Both passes must have been produced for
// the same camera and frame and must share dimensions; a mismatch is
// reported as an error instead of silently decoding garbage.
//
// A nil hit with a nil error indicates that no geometry was rendered at the
// queried pixel. HitAt is a pure function of its inputs: it holds no state
// and performs no I/O beyond reading the two passes.
func HitAt(pt types.Vec2, facePass, baryPass *Pass) (*Hit, error) {
	if facePass == nil || baryPass == nil {
		return nil, ErrMissingPass
	}
	if facePass.Width < 1 || facePass.Height < 1 {
		return nil, ErrEmptyPass
	}
	if facePass.Width != baryPass.Width || facePass.Height != baryPass.Height {
		return nil, ErrPassSizeMismatch
	}
	if pt[0] < 0 || pt[0] > 1 || pt[1] < 0 || pt[1] > 1 {
		return nil, ErrPointOutOfRange
	}

	// Scaling by (dim - 1) keeps the truncated coordinate in-bounds even
	// for points on the far edge of the range.
	px := uint32(pt[0] * float32(facePass.Width-1))
	py := uint32(pt[1] * float32(facePass.Height-1))

	// The alpha channel encodes whether any geometry was rendered at the
	// pixel.
	r, g, b, a := facePass.ColorAt(px, py)
	if a < 0xff {
		return nil, nil
	}

	faceIndex := uint32(r) + uint32(g)<<8 + uint32(b)<<16

	br, bg, bb, _ := baryPass.ColorAt(px, py)

	return &Hit{
		Node:      facePass.NodeAt(px, py),
		FaceIndex: faceIndex + 1,
		Bary: types.Vec3{
			float32(br) / 255.0,
			float32(bg) / 255.0,
			float32(bb) / 255.0,
		},
	}, nil
}

// Encode a zero-based face index into the RGB channels of a face-index pass
// pixel. The index is packed into 24 bits with the red channel holding the
// least significant byte.
func EncodeFaceIndex(face uint32) (r, g, b uint8, err error) {
	if face > MaxFaceIndex {
		return 0, 0, 0, ErrFaceIndexRange
	}
	return uint8(face & 0xff), uint8((face >> 8) & 0xff), uint8((face >> 16) & 0xff), nil
}

// Encode barycentric coordinates into the RGB channels of a barycentric pass
// pixel. Each weight is clamped to [0,1] and quantized to 8 bits.
func EncodeBary(bary types.Vec3) (r, g, b uint8) {
	return quantize(bary[0]), quantize(bary[1]), quantize(bary[2])
}

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255.0 + 0.5)
}
