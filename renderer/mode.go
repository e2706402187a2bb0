package renderer

// The shading mode used when rendering an info pass.
type PassMode uint8

const (
	// Encode the zero-based face index of the visible triangle into the
	// RGB channels.
	FaceIndexPass PassMode = iota

	// Encode the barycentric coordinates of the visible point into the
	// RGB channels.
	BaryCoordPass
)

func (m PassMode) String() string {
	switch m {
	case FaceIndexPass:
		return "face-index"
	case BaryCoordPass:
		return "barycentric"
	}
	return "unknown"
}
