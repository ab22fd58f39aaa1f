// Package flagset provides a typed bit-set for OS flag words.
//
// A Set only answers for the bits inside its declared width, and a zero flag
// is never reported as set. Win32 defines several "flags" whose value is 0
// (MOUSE_MOVE_RELATIVE, RI_KEY_MAKE); testing those with a plain mask is
// always false, so callers must test the complementary bit instead.
package flagset

// Unsigned is the set of word types a Set can be declared over.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Set[T Unsigned] struct {
	bits  T
	width uint
}

// New returns a set holding bits, restricted to the low width bits of T.
// A width of zero or one larger than T selects every bit of T.
func New[T Unsigned](width uint, bits T) Set[T] {
	s := Set[T]{width: width}
	if s.width == 0 || s.width > sizeOf[T]() {
		s.width = sizeOf[T]()
	}
	s.bits = bits & s.mask()
	return s
}

// Of returns a full-width set holding bits.
func Of[T Unsigned](bits T) Set[T] {
	return New[T](0, bits)
}

func sizeOf[T Unsigned]() uint {
	var zero T
	n := uint(0)
	for v := ^zero; v != 0; v >>= 1 {
		n++
	}
	return n
}

func (s Set[T]) mask() T {
	var zero T
	if s.width == 0 || s.width >= sizeOf[T]() {
		return ^zero
	}
	return T(1)<<s.width - 1
}

// Has reports whether every bit of flags is set. Bits outside the width are
// ignored; a flag with no bits inside the width is never set.
func (s Set[T]) Has(flags T) bool {
	flags &= s.mask()
	return flags != 0 && s.bits&flags == flags
}

// Any reports whether at least one bit of flags is set.
func (s Set[T]) Any(flags T) bool {
	return s.bits&flags&s.mask() != 0
}

func (s *Set[T]) Set(flags T) {
	s.bits |= flags & s.mask()
}

func (s *Set[T]) Clear(flags T) {
	s.bits &^= flags
}

func (s *Set[T]) Toggle(flags T) {
	s.bits ^= flags & s.mask()
}

func (s Set[T]) Bits() T {
	return s.bits
}

func (s Set[T]) Width() uint {
	return s.width
}

func (s Set[T]) Empty() bool {
	return s.bits == 0
}
