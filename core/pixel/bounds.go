package pixel

import "fmt"

// Bounds is the tight rectangle enclosing a set of pixels. Right and Bottom
// are inclusive. The zero value denotes the bounds of an empty set.
type Bounds struct {
	Left, Top, Right, Bottom int
	Width, Height            int
}

// ComputeBounds calculates the bounds of s in a single pass.
func ComputeBounds(s Set) Bounds {
	if len(s) == 0 {
		return Bounds{}
	}
	first := true
	var b Bounds
	for k := range s {
		x, y := Unpack(k)
		if first {
			b.Left, b.Right, b.Top, b.Bottom = x, x, y, y
			first = false
			continue
		}
		if x < b.Left {
			b.Left = x
		} else if x > b.Right {
			b.Right = x
		}
		if y < b.Top {
			b.Top = y
		} else if y > b.Bottom {
			b.Bottom = y
		}
	}
	b.Width = b.Right - b.Left + 1
	b.Height = b.Bottom - b.Top + 1
	return b
}

// Empty is true for the bounds of an empty set.
func (b Bounds) Empty() bool {
	return b.Width == 0 || b.Height == 0
}

// Contains is true if other lies completely within b. Empty bounds are
// contained in everything.
func (b Bounds) Contains(other Bounds) bool {
	if other.Empty() {
		return true
	}
	if b.Empty() {
		return false
	}
	return other.Left >= b.Left && other.Right <= b.Right &&
		other.Top >= b.Top && other.Bottom <= b.Bottom
}

func (b Bounds) String() string {
	if b.Empty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%d,%d–%d,%d %dx%d]", b.Left, b.Top, b.Right, b.Bottom, b.Width, b.Height)
}
