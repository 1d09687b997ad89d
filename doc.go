// Package dashline decomposes straight 3D line segments into dashed
// sub-segments according to a repeating dash/gap pattern.
//
// # Overview
//
// dashline is a pure Go implementation of continuous-phase linetype
// rendering as found in CAD drawing pipelines. Given a dash pattern of
// alternating on/off lengths (in drawing units) and a straight segment,
// it produces the sub-segments that should actually be drawn, carrying
// the position within the pattern cycle across calls so that consecutive
// segments of a polyline dash seamlessly.
//
// The output is pure geometry: pairs of 3D points. Rasterization, stroke
// width, color and layer handling belong to the consuming drawing backend.
//
// # Quick Start
//
//	import (
//	    "github.com/go-gl/mathgl/mgl64"
//	    "github.com/gogpu/dashline"
//	)
//
//	// 3 units dash, 2 units gap.
//	r := dashline.NewRenderer(dashline.NewPattern(3, 2))
//
//	for a, b := range r.LineSegment(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 0, 0}) {
//	    drawLine(a, b)
//	}
//
//	// Phase carries over: the next call continues mid-cycle.
//	for a, b := range r.LineSegments(polyline) {
//	    drawLine(a, b)
//	}
//
// # Concurrency
//
// A Renderer holds mutable phase state and is not safe for concurrent use.
// Callers needing parallelism must use one Renderer per goroutine or
// serialize access externally. The sequences returned by LineSegment and
// LineSegments borrow the renderer's state while iterated and must be
// consumed at most once.
package dashline
