// Package collider is the hit boundary: target shapes, broad-phase bounds and
// narrow-phase point and segment queries on resolv primitives
package collider

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/lixenwraith/swordplay/vmath"
)

// ShapeKind discriminates Shape variants
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeRectangle
)

// Shape is a target outline centered on its collider position
type Shape struct {
	Kind   ShapeKind
	Radius float64 // Circle
	Width  float64 // Rectangle
	Height float64 // Rectangle
}

func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

func Rectangle(width, height float64) Shape {
	return Shape{Kind: ShapeRectangle, Width: width, Height: height}
}

// Primitive is a resolv shape that also answers point queries
type Primitive interface {
	resolv.IShape
	PointInside(point resolv.Vector) bool
}

// Convex builds the resolv primitive for s centered on at
// A rectangle with no area becomes a zero-radius circle
func (s Shape) Convex(at vmath.Vec2) Primitive {
	switch s.Kind {
	case ShapeRectangle:
		w, h := math.Abs(s.Width), math.Abs(s.Height)
		if w == 0 || h == 0 {
			break
		}
		return resolv.NewRectangle(at.X-w/2, at.Y-h/2, w, h)
	case ShapeCircle:
		return resolv.NewCircle(at.X, at.Y, math.Abs(s.Radius))
	}
	return resolv.NewCircle(at.X, at.Y, 0)
}

// AABB is an axis-aligned box
type AABB struct {
	Min, Max vmath.Vec2
}

// AABBAround builds the box centered on center extending half in each direction
func AABBAround(center, half vmath.Vec2) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// BoundsOf reads the broad-phase box of a resolv shape
func BoundsOf(s resolv.IShape) AABB {
	lo, hi := s.Bounds()
	return AABB{Min: vmath.V2(lo.X, lo.Y), Max: vmath.V2(hi.X, hi.Y)}
}

func (b AABB) Center() vmath.Vec2 {
	return b.Min.Midpoint(b.Max)
}

func (b AABB) Size() vmath.Vec2 {
	return b.Max.Sub(b.Min)
}

func (b AABB) Intersects(o AABB) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

// SegmentBounds is the box spanned by a segment
func SegmentBounds(a, b vmath.Vec2) AABB {
	return AABB{
		Min: vmath.V2(min(a.X, b.X), min(a.Y, b.Y)),
		Max: vmath.V2(max(a.X, b.X), max(a.Y, b.Y)),
	}
}

func toResolv(p vmath.Vec2) resolv.Vector {
	return resolv.Vector{X: p.X, Y: p.Y}
}
