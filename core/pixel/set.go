package pixel

import (
	"sort"
	"strings"
)

// Set is a set of "on" pixels. The zero value is not usable, use NewSet or
// one of the set operations.
type Set map[Key]struct{}

// NewSet creates a set containing keys.
func NewSet(keys ...Key) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Of creates a set from coordinate pairs x0, y0, x1, y1, ….
// A trailing odd value is ignored.
func Of(coords ...int) Set {
	s := make(Set, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		s.Add(Pack(coords[i], coords[i+1]))
	}
	return s
}

// Contains checks for membership of k.
func (s Set) Contains(k Key) bool {
	_, ok := s[k]
	return ok
}

// Add inserts k.
func (s Set) Add(k Key) {
	s[k] = struct{}{}
}

// Remove deletes k, if present.
func (s Set) Remove(k Key) {
	delete(s, k)
}

// Len returns the number of pixels in s.
func (s Set) Len() int {
	return len(s)
}

// Empty is true for a set without pixels, including a nil set.
func (s Set) Empty() bool {
	return len(s) == 0
}

// Clone returns an independent copy of s. Cloning a nil set returns an
// empty set.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

// Equal compares two sets for identical members.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}

// Keys returns the members of s sorted top-to-bottom, left-to-right.
func (s Set) Keys() []Key {
	keys := make([]Key, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		yi, yj := keys[i].Y(), keys[j].Y()
		if yi != yj {
			return yi < yj
		}
		return keys[i].X() < keys[j].X()
	})
	return keys
}

func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range s.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k.String())
	}
	b.WriteByte('}')
	return b.String()
}

// --- Set algebra -----------------------------------------------------------

// Union returns a new set with the members of a and b.
func Union(a, b Set) Set {
	u := make(Set, len(a)+len(b))
	for k := range a {
		u[k] = struct{}{}
	}
	for k := range b {
		u[k] = struct{}{}
	}
	return u
}

// Intersect returns a new set with the members common to a and b.
func Intersect(a, b Set) Set {
	if len(b) < len(a) {
		a, b = b, a
	}
	is := make(Set)
	for k := range a {
		if _, ok := b[k]; ok {
			is[k] = struct{}{}
		}
	}
	return is
}

// Difference returns a new set with the members of a which are not in b.
func Difference(a, b Set) Set {
	d := make(Set, len(a))
	for k := range a {
		if _, ok := b[k]; !ok {
			d[k] = struct{}{}
		}
	}
	return d
}

// --- Geometry --------------------------------------------------------------

// Translate returns a new set with every pixel of s shifted by (dx, dy).
// s is left untouched.
func Translate(s Set, dx, dy int) Set {
	t := make(Set, len(s))
	for k := range s {
		x, y := Unpack(k)
		t[Pack(x+dx, y+dy)] = struct{}{}
	}
	return t
}

// Crop returns a new set without the pixels of s lying outside
// [0,width)×[0,height).
func Crop(s Set, width, height int) Set {
	c := make(Set, len(s))
	for k := range s {
		if !IsOutside(k, width, height) {
			c[k] = struct{}{}
		}
	}
	if len(c) < len(s) {
		tracer().Debugf("cropping to %dx%d dropped %d pixels", width, height, len(s)-len(c))
	}
	return c
}
