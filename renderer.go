package dashline

import (
	"iter"

	"github.com/go-gl/mathgl/mgl64"
)

// Renderer splits straight line segments into dashed sub-segments according
// to one Pattern, keeping the position within the pattern cycle across
// calls. Feeding it the consecutive segments of a polyline therefore
// produces one continuous dash pattern along the whole path, regardless of
// where the vertices fall.
//
// A Renderer is bound to its pattern at construction. It is not safe for
// concurrent use; see the package documentation.
type Renderer struct {
	pattern Pattern
	solid   bool

	// Phase state: the active pattern entry, the distance left to consume
	// in it, and whether it is drawn. remaining is never negative and
	// index always wraps modulo the pattern length.
	index     int
	remaining float64
	dash      bool
}

// NewRenderer creates a Renderer bound to the given pattern.
// Rendering always starts at the beginning of the pattern with an "on" dash.
func NewRenderer(pattern Pattern) *Renderer {
	r := &Renderer{
		pattern: pattern.Clone(),
		solid:   pattern.IsSolid(),
	}
	if !r.solid {
		r.remaining = r.pattern.Lengths[0]
		r.dash = true
	}
	return r
}

// Reset restores the phase state to its post-construction value, so the
// renderer can be reused for a new, unrelated path. Without a Reset the
// next segment continues wherever the previous path left off in the cycle.
func (r *Renderer) Reset() {
	if r.solid {
		return
	}
	r.index = 0
	r.remaining = r.pattern.Lengths[0]
	r.dash = true
}

// LineSegment returns the drawn sub-segments of the straight segment from
// start to end as (from, to) pairs.
//
// A solid pattern, or a segment whose endpoints coincide within tolerance,
// yields the single pair (start, end). Otherwise the segment's length is
// consumed from the pattern cycle, continuing from whatever phase previous
// calls left behind; only "on" spans are yielded, gaps advance the cursor
// silently. A trailing gap still consumes pattern length even though
// nothing is yielded for it.
//
// The sequence is lazy and borrows the renderer's phase state while
// iterated: stopping early is free, but the sequence must not be ranged
// over more than once, and the renderer must not be used concurrently
// during iteration.
func (r *Renderer) LineSegment(start, end mgl64.Vec3) iter.Seq2[mgl64.Vec3, mgl64.Vec3] {
	return func(yield func(mgl64.Vec3, mgl64.Vec3) bool) {
		if r.solid || vecIsClose(start, end) {
			yield(start, end)
			return
		}

		span := end.Sub(start)
		length := span.Len()
		if length == 0 {
			// The tolerance check above should have caught this, but the
			// direction below must never be a division by zero.
			yield(start, end)
			return
		}
		dir := span.Mul(1 / length)

		cursor := start
		for length > 0 {
			step := r.remaining
			draw := r.dash
			if length <= r.remaining {
				// The active phase covers everything left of the segment.
				step = length
				r.remaining -= length
				length = 0
				if r.remaining < absTol {
					r.cycle()
				}
			} else {
				// The active phase is shorter than what is left: consume it
				// whole and advance the cycle. Segment length is caller
				// controlled and can be arbitrarily large relative to the
				// cycle, so this must stay an iterative loop.
				length -= step
				r.cycle()
			}

			next := cursor.Add(dir.Mul(step))
			if draw && !yield(cursor, next) {
				return
			}
			cursor = next
		}
	}
}

// LineSegments renders a polyline: each consecutive vertex pair is passed
// through LineSegment in order, so the dash phase runs continuously across
// the vertices. Fewer than two vertices yield nothing.
//
// The returned sequence has the same single-use, state-borrowing semantics
// as LineSegment.
func (r *Renderer) LineSegments(vertices []mgl64.Vec3) iter.Seq2[mgl64.Vec3, mgl64.Vec3] {
	return func(yield func(mgl64.Vec3, mgl64.Vec3) bool) {
		for i := 1; i < len(vertices); i++ {
			for from, to := range r.LineSegment(vertices[i-1], vertices[i]) {
				if !yield(from, to) {
					return
				}
			}
		}
	}
}

// cycle advances to the next pattern entry, wrapping at the end, and flips
// the on/off phase.
func (r *Renderer) cycle() {
	r.index = (r.index + 1) % len(r.pattern.Lengths)
	r.remaining = r.pattern.Lengths[r.index]
	r.dash = !r.dash
}
