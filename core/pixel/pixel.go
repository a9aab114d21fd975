package pixel

import "fmt"

// MaxCoord is the largest magnitude representable on either axis.
const MaxCoord = 0x7f

// Key is a packed (x, y) coordinate.
type Key uint16

// Size is the extent of a canvas in pixels.
type Size struct {
	Width, Height int
}

// Pack packs x and y into a key. Coordinates exceeding ±MaxCoord are clamped
// to the nearest representable value.
func Pack(x, y int) Key {
	return Key(packAxis(x))<<8 | Key(packAxis(y))
}

func packAxis(v int) uint8 {
	var sign uint8 = 0x80
	if v < 0 {
		sign = 0
		v = -v
	}
	if v > MaxCoord {
		v = MaxCoord
	}
	return sign | uint8(v)
}

func unpackAxis(b uint8) int {
	v := int(b & 0x7f)
	if b&0x80 == 0 {
		return -v
	}
	return v
}

// Unpack is the inverse of Pack.
func Unpack(k Key) (x, y int) {
	return k.X(), k.Y()
}

// X returns the unpacked x-coordinate of k.
func (k Key) X() int {
	return unpackAxis(uint8(k >> 8))
}

// Y returns the unpacked y-coordinate of k.
func (k Key) Y() int {
	return unpackAxis(uint8(k))
}

func (k Key) String() string {
	return fmt.Sprintf("(%d,%d)", k.X(), k.Y())
}

// IsOutside is true if k lies outside of [0,width)×[0,height).
func IsOutside(k Key, width, height int) bool {
	x, y := Unpack(k)
	return x < 0 || y < 0 || x > width-1 || y > height-1
}

// InRange is true if both x and y may be packed without clamping.
func InRange(x, y int) bool {
	return x >= -MaxCoord && x <= MaxCoord && y >= -MaxCoord && y <= MaxCoord
}
