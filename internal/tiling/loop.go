package tiling

import "math"

// Decompose splits a scroll position into a whole item index and the
// remainder in [0, itemHeight). It holds for negative positions too.
// base*itemHeight+fraction reproduces current exactly when the inputs are
// dyadic, and to within an ulp of current otherwise; the range of fraction
// always holds.
func Decompose(current, itemHeight float64) (int, float64) {
	if itemHeight <= 0 || math.IsNaN(current) || math.IsInf(current, 0) {
		return 0, 0
	}
	fraction := math.Mod(current, itemHeight)
	if fraction < 0 {
		fraction += itemHeight
	}
	// A tiny negative remainder can round up to itemHeight itself.
	if fraction >= itemHeight {
		fraction = 0
	}
	base := math.Round((current - fraction) / itemHeight)
	return int(base), fraction
}

// Slot is one visible row of a looping list.
type Slot struct {
	Slot   int     // offset from the centered item
	Index  int     // source item index
	Offset float64 // px from the viewport center line
}

// Loop is a vertically looping list of Count items of ItemHeight px.
type Loop struct {
	ItemHeight float64
	Count      int
}

// Index maps a slot offset from base to a source index.
func (l Loop) Index(base, slot int) int {
	return Wrap(base+slot, l.Count)
}

// Slots returns the rows from -radius to +radius around current.
func (l Loop) Slots(current float64, radius int) []Slot {
	if l.Count < 1 || l.ItemHeight <= 0 {
		return nil
	}
	base, fraction := Decompose(current, l.ItemHeight)
	r := max(radius, 0)
	slots := make([]Slot, 0, 2*r+1)
	for s := -r; s <= r; s++ {
		slots = append(slots, Slot{
			Slot:   s,
			Index:  l.Index(base, s),
			Offset: float64(s)*l.ItemHeight - fraction,
		})
	}
	return slots
}

// Nearest returns the source index of the item closest to the center line.
func (l Loop) Nearest(current float64) int {
	if l.Count < 1 || l.ItemHeight <= 0 {
		return 0
	}
	base, fraction := Decompose(current, l.ItemHeight)
	if fraction >= l.ItemHeight/2 {
		base++
	}
	return Wrap(base, l.Count)
}

// SnapTarget returns the item-aligned position nearest to current.
func (l Loop) SnapTarget(current float64) float64 {
	if l.ItemHeight <= 0 {
		return current
	}
	return math.Floor(current/l.ItemHeight+0.5) * l.ItemHeight
}
