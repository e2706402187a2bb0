package infotex

import "testing"

func TestPassPixelAccess(t *testing.T) {
	pass := NewPass(3, 2)

	pass.SetPixel(2, 1, 10, 20, 30, 0xff, 77)

	r, g, b, a := pass.ColorAt(2, 1)
	if r != 10 || g != 20 || b != 30 || a != 0xff {
		t.Fatalf("expected color (10, 20, 30, 255); got (%d, %d, %d, %d)", r, g, b, a)
	}
	if pass.NodeAt(2, 1) != 77 {
		t.Fatalf("expected node 77; got %d", pass.NodeAt(2, 1))
	}

	// Untouched pixels stay transparent with no node id
	_, _, _, a = pass.ColorAt(0, 0)
	if a != 0 {
		t.Fatalf("expected untouched pixel alpha to be 0; got %d", a)
	}
	if pass.NodeAt(0, 0) != 0 {
		t.Fatalf("expected untouched pixel node to be 0; got %d", pass.NodeAt(0, 0))
	}
}

func TestPassImage(t *testing.T) {
	pass := NewPass(2, 2)
	pass.SetPixel(1, 0, 1, 2, 3, 0xff, 5)

	img := pass.Image()
	bounds := img.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 2 {
		t.Fatalf("expected 2x2 image; got %dx%d", bounds.Dx(), bounds.Dy())
	}

	c := img.RGBAAt(1, 0)
	if c.R != 1 || c.G != 2 || c.B != 3 || c.A != 0xff {
		t.Fatalf("expected image pixel (1, 2, 3, 255); got %+v", c)
	}
}
