package hexgrid

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownOrientation is returned by ParseOrientation for unsupported names.
var ErrUnknownOrientation = errors.New("unknown hex orientation")

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist returns the euclidean distance between p and o.
func (p Point) Dist(o Point) float64 {
	return p.Sub(o).Len()
}

// Orientation holds the hex-to-pixel matrix (F), its inverse (B) and the
// angle of corner 0 in multiples of 60 degrees.
type Orientation struct {
	Name       string
	F0, F1     float64
	F2, F3     float64
	B0, B1     float64
	B2, B3     float64
	StartAngle float64
}

var sqrt3 = math.Sqrt(3)

// OrientationPointy has a corner at the top. Corner 0 sits at -30 degrees so
// that side 0 faces Directions[0].
var OrientationPointy = Orientation{
	Name: "pointy",
	F0:   sqrt3, F1: sqrt3 / 2,
	F2: 0, F3: 3.0 / 2,
	B0: sqrt3 / 3, B1: -1.0 / 3,
	B2: 0, B3: 2.0 / 3,
	StartAngle: -0.5,
}

// OrientationFlat has a flat side at the top.
var OrientationFlat = Orientation{
	Name: "flat",
	F0:   3.0 / 2, F1: 0,
	F2: sqrt3 / 2, F3: sqrt3,
	B0: 2.0 / 3, B1: 0,
	B2: -1.0 / 3, B3: sqrt3 / 3,
	StartAngle: 0,
}

// ParseOrientation maps "pointy"/"flat" (case-insensitive) to an Orientation.
func ParseOrientation(name string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pointy", "pointy-top", "pointy_top":
		return OrientationPointy, nil
	case "flat", "flat-top", "flat_top":
		return OrientationFlat, nil
	}
	return Orientation{}, fmt.Errorf("%w: %q", ErrUnknownOrientation, name)
}

// Layout maps hexes to pixel space.
type Layout struct {
	Orientation Orientation
	Size        Point
	Origin      Point
}

// HexToPixel returns the centre of h.
func (l Layout) HexToPixel(h Hex) Point {
	o := l.Orientation
	x := (o.F0*float64(h.Q) + o.F1*float64(h.R)) * l.Size.X
	y := (o.F2*float64(h.Q) + o.F3*float64(h.R)) * l.Size.Y
	return Point{X: x + l.Origin.X, Y: y + l.Origin.Y}
}

// PixelToHex returns the fractional hex under p. Use Round to snap it.
func (l Layout) PixelToHex(p Point) FractionalHex {
	o := l.Orientation
	pt := Point{
		X: (p.X - l.Origin.X) / l.Size.X,
		Y: (p.Y - l.Origin.Y) / l.Size.Y,
	}
	q := o.B0*pt.X + o.B1*pt.Y
	r := o.B2*pt.X + o.B3*pt.Y
	return FractionalHex{Q: q, R: r}
}

// HexAt returns the hex containing p.
func (l Layout) HexAt(p Point) Hex {
	return l.PixelToHex(p).Round()
}

// CornerOffset returns corner i relative to a hex centre.
func (l Layout) CornerOffset(i int) Point {
	angle := 2 * math.Pi * (l.Orientation.StartAngle + float64(i)) / 6
	return Point{X: l.Size.X * math.Cos(angle), Y: l.Size.Y * math.Sin(angle)}
}

// LocalCorners returns the six corners of a hex centred on the origin.
func (l Layout) LocalCorners() [6]Point {
	var corners [6]Point
	for i := range corners {
		corners[i] = l.CornerOffset(i)
	}
	return corners
}

// Corners returns the six corners of h in pixel space.
func (l Layout) Corners(h Hex) [6]Point {
	center := l.HexToPixel(h)
	corners := l.LocalCorners()
	for i := range corners {
		corners[i] = center.Add(corners[i])
	}
	return corners
}

// FractionalHex is an axial coordinate with float components.
type FractionalHex struct {
	Q, R float64
}

func (f FractionalHex) S() float64 {
	return -f.Q - f.R
}

// Round snaps f to the nearest hex using cube rounding: the component with
// the largest rounding error is recomputed from the other two.
func (f FractionalHex) Round() Hex {
	q := math.Round(f.Q)
	r := math.Round(f.R)
	s := math.Round(f.S())

	dq := math.Abs(q - f.Q)
	dr := math.Abs(r - f.R)
	ds := math.Abs(s - f.S())

	if dq > dr && dq > ds {
		q = -r - s
	} else if dr > ds {
		r = -q - s
	}
	return Hex{Q: int(q), R: int(r)}
}
