package pixel

import (
	"image"
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPackRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.core")
	defer teardown()
	//
	seen := make(map[Key]bool)
	for x := -MaxCoord; x <= MaxCoord; x++ {
		for y := -MaxCoord; y <= MaxCoord; y++ {
			k := Pack(x, y)
			if ux, uy := Unpack(k); ux != x || uy != y {
				t.Fatalf("expected (%d,%d) to survive packing, got (%d,%d)", x, y, ux, uy)
			}
			if seen[k] {
				t.Fatalf("key %#04x for (%d,%d) is not unique", uint16(k), x, y)
			}
			seen[k] = true
		}
	}
}

func TestPackLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.core")
	defer teardown()
	//
	if k := Pack(0, 0); k != 0x8080 {
		t.Errorf("expected origin to pack to 0x8080, is %#04x", uint16(k))
	}
	if k := Pack(-1, 2); k != 0x0182 {
		t.Errorf("expected (-1,2) to pack to 0x0182, is %#04x", uint16(k))
	}
}

func TestPackClamps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.core")
	defer teardown()
	//
	if x, y := Unpack(Pack(200, -300)); x != MaxCoord || y != -MaxCoord {
		t.Errorf("expected out-of-range coordinates to clamp, got (%d,%d)", x, y)
	}
	if InRange(128, 0) || !InRange(-127, 127) {
		t.Errorf("range predicate is off")
	}
}

func TestIsOutsideAndCrop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.core")
	defer teardown()
	//
	s := Of(0, 0, 9, 9, 10, 3, -1, 4, 3, 10)
	c := Crop(s, 10, 10)
	if !c.Equal(Of(0, 0, 9, 9)) {
		t.Errorf("expected crop to keep two pixels, have %v", c)
	}
	if s.Len() != 5 {
		t.Errorf("crop must not modify its input")
	}
	if !IsOutside(Pack(-1, 0), 10, 10) || IsOutside(Pack(9, 0), 10, 10) {
		t.Errorf("outside predicate is off")
	}
}

func TestTranslateInverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.core")
	defer teardown()
	//
	p := Of(0, 0, 1, 5, -3, 7, 12, -12)
	for _, d := range [][2]int{{0, 0}, {3, -2}, {-20, 40}, {100, -100}} {
		moved := Translate(p, d[0], d[1])
		back := Translate(moved, -d[0], -d[1])
		if !back.Equal(p) {
			t.Errorf("translate by %v is not invertible: %v vs. %v", d, back, p)
		}
	}
	if !Translate(p, 1, 0).Contains(Pack(2, 5)) {
		t.Errorf("expected (1,5) to move to (2,5)")
	}
}

func TestSetAlgebra(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.core")
	defer teardown()
	//
	a := Of(0, 0, 1, 1, 2, 2)
	b := Of(1, 1, 3, 3)
	if u := Union(a, b); !u.Equal(Of(0, 0, 1, 1, 2, 2, 3, 3)) {
		t.Errorf("union wrong: %v", u)
	}
	if i := Intersect(a, b); !i.Equal(Of(1, 1)) {
		t.Errorf("intersection wrong: %v", i)
	}
	if d := Difference(a, b); !d.Equal(Of(0, 0, 2, 2)) {
		t.Errorf("difference wrong: %v", d)
	}
	if a.Len() != 3 || b.Len() != 2 {
		t.Errorf("set operations must not modify operands")
	}
	var nilset Set
	if c := nilset.Clone(); c == nil || !c.Empty() {
		t.Errorf("expected clone of nil set to be an empty set")
	}
}

func TestKeysOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.core")
	defer teardown()
	//
	s := Of(2, 1, 0, 1, 5, 0)
	if str := s.String(); str != "{(5,0) (0,1) (2,1)}" {
		t.Errorf("unexpected set string %q", str)
	}
}

func TestBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.core")
	defer teardown()
	//
	if b := ComputeBounds(NewSet()); b != (Bounds{}) {
		t.Errorf("expected zero bounds for empty set, have %v", b)
	}
	b := ComputeBounds(Of(5, 5))
	if b != (Bounds{Left: 5, Top: 5, Right: 5, Bottom: 5, Width: 1, Height: 1}) {
		t.Errorf("unexpected bounds for single pixel: %v", b)
	}
	b = ComputeBounds(Of(-2, 3, 4, -1, 0, 0))
	if b.Left != -2 || b.Right != 4 || b.Top != -1 || b.Bottom != 3 || b.Width != 7 || b.Height != 5 {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestBoundsOfUnionContainsOperands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.core")
	defer teardown()
	//
	sets := []Set{NewSet(), Of(0, 0), Of(3, 4, -5, 2), Of(10, -10, 11, 11), Of(-127, 127)}
	for _, a := range sets {
		for _, b := range sets {
			u := ComputeBounds(Union(a, b))
			if !u.Contains(ComputeBounds(a)) || !u.Contains(ComputeBounds(b)) {
				t.Errorf("bounds of %v ∪ %v = %v do not contain operands", a, b, u)
			}
		}
	}
}

func TestFromGray(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.core")
	defer teardown()
	//
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetGray(1, 0, color.Gray{Y: 127})
	img.SetGray(2, 1, color.Gray{Y: 128})
	img.SetGray(0, 1, color.Gray{Y: 0})
	s := FromGray(img, 127)
	if !s.Equal(Of(1, 0, 0, 1)) {
		t.Errorf("expected two dark pixels, have %v", s)
	}
}
