// Package infotex implements image-based hit testing. A renderer encodes
// per-pixel scene metadata (face index, barycentric coordinates, node id)
// into the color channels of info passes; the decoder maps a screen point
// back to the geometry visible at that point without any scene traversal.
package infotex

import "image"

// The largest zero-based face index that fits into the 24-bit RGB encoding
// of a face-index pass.
const MaxFaceIndex = 1<<24 - 1

// A single rendered info pass: an RGBA8 image plus the auxiliary per-pixel
// node-identifier channel recorded alongside the color output. Passes are
// written once by the renderer and then treated as read-only.
type Pass struct {
	Width  uint32
	Height uint32

	// RGBA pixel data, 4 bytes per pixel, row-major with row 0 at the top.
	Pix []uint8

	// Per-pixel node ids. 0 marks pixels where no geometry was rendered.
	NodeIDs []uint32
}

// Allocate a zeroed pass. All pixels start fully transparent, which the
// decoder treats as "no hit".
func NewPass(width, height uint32) *Pass {
	return &Pass{
		Width:   width,
		Height:  height,
		Pix:     make([]uint8, width*height*4),
		NodeIDs: make([]uint32, width*height),
	}
}

// Read the color channels at a pixel coordinate.
func (p *Pass) ColorAt(x, y uint32) (r, g, b, a uint8) {
	offset := (y*p.Width + x) * 4
	return p.Pix[offset], p.Pix[offset+1], p.Pix[offset+2], p.Pix[offset+3]
}

// Read the auxiliary node channel at a pixel coordinate.
func (p *Pass) NodeAt(x, y uint32) uint32 {
	return p.NodeIDs[y*p.Width+x]
}

// Write the color channels and the node channel at a pixel coordinate.
func (p *Pass) SetPixel(x, y uint32, r, g, b, a uint8, node uint32) {
	offset := (y*p.Width + x) * 4
	p.Pix[offset] = r
	p.Pix[offset+1] = g
	p.Pix[offset+2] = b
	p.Pix[offset+3] = a
	p.NodeIDs[y*p.Width+x] = node
}

// Convert the pass color channels to an image. The node channel is not
// representable in RGBA and is dropped.
func (p *Pass) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(p.Width), int(p.Height)))
	copy(img.Pix, p.Pix)
	return img
}
