package dashline

// MaxPatternItems is the maximum number of entries in a dash pattern.
// NewPattern silently drops entries beyond this limit, matching the
// fixed-size linetype buffers of common CAD formats.
const MaxPatternItems = 32

// Pattern defines a repeating dash pattern as alternating on/off lengths.
// Lengths[0] is the first "on" (drawn) length, Lengths[1] the following
// "off" (gap) length, Lengths[2] "on" again, and so on; the sequence wraps
// around so a pattern of any length alternates indefinitely.
//
// All lengths are in drawing units and must be positive. A pattern with
// fewer than two entries is solid: it draws every segment whole.
type Pattern struct {
	// Lengths contains the alternating on/off lengths.
	Lengths []float64
}

// NewPattern creates a dash pattern from alternating on/off lengths.
//
// Examples:
//
//	NewPattern(5, 3)        // 5 units dash, 3 units gap
//	NewPattern(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
//	NewPattern()            // solid line
//
// At most MaxPatternItems entries are kept; excess entries are silently
// dropped. This is a documented limitation, not an error.
func NewPattern(lengths ...float64) Pattern {
	if len(lengths) > MaxPatternItems {
		Logger().Debug("dash pattern truncated",
			"entries", len(lengths), "max", MaxPatternItems)
		lengths = lengths[:MaxPatternItems]
	}

	kept := make([]float64, len(lengths))
	copy(kept, lengths)
	return Pattern{Lengths: kept}
}

// IsSolid reports whether the pattern degenerates to a solid line.
// Patterns with fewer than two entries, or without any positive entry,
// cannot alternate and are treated as "always draw".
func (p Pattern) IsSolid() bool {
	if len(p.Lengths) <= 1 {
		return true
	}

	for _, l := range p.Lengths {
		if l > 0 {
			return false
		}
	}
	return true
}

// Length returns the total length of one complete on/off cycle.
func (p Pattern) Length() float64 {
	var total float64
	for _, l := range p.Lengths {
		total += l
	}
	return total
}

// Scale returns a new Pattern with all lengths multiplied by the given
// factor. Dash lengths are in drawing units, so they must be scaled along
// with any coordinate transform applied to the geometry.
func (p Pattern) Scale(factor float64) Pattern {
	if factor <= 0 {
		return p.Clone()
	}

	scaled := make([]float64, len(p.Lengths))
	for i, l := range p.Lengths {
		scaled[i] = l * factor
	}
	return Pattern{Lengths: scaled}
}

// Clone creates a deep copy of the Pattern.
func (p Pattern) Clone() Pattern {
	kept := make([]float64, len(p.Lengths))
	copy(kept, p.Lengths)
	return Pattern{Lengths: kept}
}
