package lipsync

import (
	"fmt"
	"iter"
	"strings"

	"github.com/biolimbo/lip-sync-engine/pkg/ranges"
)

// Shape is a mouth shape.
type Shape uint8

const (
	ShapeA Shape = iota
	ShapeB
	ShapeC
	ShapeD
	ShapeE
	ShapeF
	ShapeG
	ShapeH
	ShapeX

	shapeCount
)

const shapeLetters = "ABCDEFGHX"

func (s Shape) String() string {
	if s < shapeCount {
		return shapeLetters[s : s+1]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// IsBasic reports whether s is one of A through F.
func (s Shape) IsBasic() bool { return s <= ShapeF }

// ParseShape parses a single shape letter, case-insensitively.
func ParseShape(s string) (Shape, error) {
	if len(s) == 1 {
		if i := strings.IndexByte(shapeLetters, upper(s[0])); i >= 0 {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("lipsync: invalid shape %q", s)
}

func (s Shape) MarshalText() ([]byte, error) {
	if s >= shapeCount {
		return nil, fmt.Errorf("lipsync: invalid shape %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Shape) UnmarshalText(b []byte) error {
	v, err := ParseShape(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// fallback is the next shape to try when a shape is missing from a set.
var fallback = map[Shape]Shape{
	ShapeG: ShapeB,
	ShapeH: ShapeC,
	ShapeX: ShapeA,
}

// ShapeSet is an ordered set of target shapes.
type ShapeSet struct {
	m ranges.OrderedMap[Shape, struct{}]
}

// BasicShapes returns a set holding A through F.
func BasicShapes() ShapeSet {
	var s ShapeSet
	for sh := ShapeA; sh <= ShapeF; sh++ {
		s.m.Set(sh, struct{}{})
	}
	return s
}

// ParseShapeSet returns the basic shapes plus the extended shapes named by
// letters in ext, for example "GHX". Basic letters in ext are accepted and
// ignored.
func ParseShapeSet(ext string) (ShapeSet, error) {
	s := BasicShapes()
	for _, r := range ext {
		sh, err := ParseShape(string(r))
		if err != nil {
			return ShapeSet{}, err
		}
		s.m.Set(sh, struct{}{})
	}
	return s, nil
}

// Has reports whether sh is in the set.
func (s ShapeSet) Has(sh Shape) bool { return s.m.Has(sh) }

// Len returns the number of shapes.
func (s ShapeSet) Len() int { return s.m.Len() }

// Shapes yields the shapes in insertion order.
func (s ShapeSet) Shapes() iter.Seq[Shape] {
	return ranges.PipeMap(s.m.All(), ranges.Keys[Shape, struct{}]())
}

func (s ShapeSet) String() string {
	var b strings.Builder
	for sh := range s.Shapes() {
		b.WriteString(sh.String())
	}
	return b.String()
}

// Convert returns sh, or its closest substitute present in the set.
func (s ShapeSet) Convert(sh Shape) Shape {
	for cur := sh; ; {
		if s.Has(cur) {
			return cur
		}
		next, ok := fallback[cur]
		if !ok {
			return sh
		}
		cur = next
	}
}

// ShapeFor returns the mouth shape for a phone.
func ShapeFor(p Phone) Shape {
	switch p {
	case P, B, M:
		return ShapeA
	case AA, AH, AY, AW, AE:
		return ShapeD
	case EH, EY, IH, IY, Schwa, HH:
		return ShapeC
	case AO, OY, ER, R:
		return ShapeE
	case UW, UH, OW, W:
		return ShapeF
	case F, V:
		return ShapeG
	case L:
		return ShapeH
	case Breath, Noise, PhoneUnknown:
		return ShapeX
	}
	return ShapeB
}
