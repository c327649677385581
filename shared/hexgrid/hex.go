// Package hexgrid provides axial hex coordinates and pixel-space layouts.
// It has no dependencies on ebitengine, donburi, or resolv; it is pure math.
package hexgrid

// Hex is an axial hex coordinate. The third cube coordinate s is derived:
// s = -q - r.
type Hex struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// NewHex returns the hex at axial (q, r).
func NewHex(q, r int) Hex {
	return Hex{Q: q, R: r}
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

func (h Hex) Add(o Hex) Hex {
	return Hex{Q: h.Q + o.Q, R: h.R + o.R}
}

func (h Hex) Sub(o Hex) Hex {
	return Hex{Q: h.Q - o.Q, R: h.R - o.R}
}

func (h Hex) Scale(k int) Hex {
	return Hex{Q: h.Q * k, R: h.R * k}
}

// Length is the number of steps from the origin.
func (h Hex) Length() int {
	return max(abs(h.Q), abs(h.R), abs(h.S()))
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b Hex) int {
	return a.Sub(b).Length()
}

// Directions holds the six neighbour offsets. Side i of a hex (between
// corner i and corner i+1 of Layout.Corners) faces Directions[i] for both
// orientations.
var Directions = [6]Hex{
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
	{Q: 0, R: -1},
	{Q: 1, R: -1},
}

// Neighbor returns the adjacent hex in direction dir (0..5, wrapping).
func (h Hex) Neighbor(dir int) Hex {
	return h.Add(Directions[((dir%6)+6)%6])
}

// Neighbors returns the six adjacent hexes in Directions order.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range Directions {
		result[i] = h.Add(dir)
	}
	return result
}

// Range returns every hex within distance n of center, ordered by Q then R.
func Range(center Hex, n int) []Hex {
	var result []Hex
	for q := -n; q <= n; q++ {
		for r := max(-n, -q-n); r <= min(n, -q+n); r++ {
			result = append(result, center.Add(Hex{Q: q, R: r}))
		}
	}
	return result
}

// Opposite returns the direction index pointing back along dir.
func Opposite(dir int) int {
	return (dir + 3) % 6
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
