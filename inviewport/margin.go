package inviewport

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vcrobe/nojs-inviewport/dom"
)

// Length is a single root-margin component: pixels, or a percentage of the
// root's size along the same axis.
type Length struct {
	Value   float64
	Percent bool
}

// Resolve converts l to pixels against the given reference size.
func (l Length) Resolve(size float64) float64 {
	if l.Percent {
		return l.Value * size / 100
	}
	return l.Value
}

func (l Length) String() string {
	if l.Percent {
		return strconv.FormatFloat(l.Value, 'f', -1, 64) + "%"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + "px"
}

// Margin grows (or, when negative, shrinks) the root's bounding box before
// intersections are computed.
type Margin struct {
	Top, Right, Bottom, Left Length
}

// ParseMargin parses CSS margin shorthand with one to four components, each
// either a unitless zero, a px length or a percentage.
func ParseMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Margin{}, nil
	}
	if len(fields) > 4 {
		return Margin{}, fmt.Errorf("expected 1 to 4 components, got %d", len(fields))
	}

	lengths := make([]Length, len(fields))
	for i, f := range fields {
		l, err := parseLength(f)
		if err != nil {
			return Margin{}, err
		}
		lengths[i] = l
	}

	switch len(lengths) {
	case 1:
		return Margin{lengths[0], lengths[0], lengths[0], lengths[0]}, nil
	case 2:
		return Margin{lengths[0], lengths[1], lengths[0], lengths[1]}, nil
	case 3:
		return Margin{lengths[0], lengths[1], lengths[2], lengths[1]}, nil
	default:
		return Margin{lengths[0], lengths[1], lengths[2], lengths[3]}, nil
	}
}

func parseLength(s string) (Length, error) {
	var (
		num     string
		percent bool
	)
	switch {
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		num = strings.TrimSuffix(s, "%")
		percent = true
	default:
		num = s
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Length{}, fmt.Errorf("%q is not a px or %% length", s)
	}
	if num == s && v != 0 {
		return Length{}, fmt.Errorf("%q needs a px or %% unit", s)
	}
	return Length{Value: v, Percent: percent}, nil
}

// Apply returns root expanded by the margin. Vertical percentages resolve
// against the root height, horizontal ones against its width.
func (m Margin) Apply(root dom.Rect) dom.Rect {
	w := root.Right() - root.Left()
	h := root.Bottom() - root.Top()

	top := m.Top.Resolve(h)
	right := m.Right.Resolve(w)
	bottom := m.Bottom.Resolve(h)
	left := m.Left.Resolve(w)

	return dom.Rect{
		X:      root.Left() - left,
		Y:      root.Top() - top,
		Width:  max(w+left+right, 0),
		Height: max(h+top+bottom, 0),
	}
}

func (m Margin) String() string {
	return strings.Join([]string{m.Top.String(), m.Right.String(), m.Bottom.String(), m.Left.String()}, " ")
}
