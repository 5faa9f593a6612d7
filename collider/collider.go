package collider

import (
	"github.com/solarlune/resolv"

	"github.com/lixenwraith/swordplay/vmath"
)

// Collider places a shape in the world
type Collider struct {
	Position vmath.Vec2
	Shape    Shape
	prim     Primitive
}

func New(position vmath.Vec2, shape Shape) Collider {
	return Collider{Position: position, Shape: shape, prim: shape.Convex(position)}
}

// FromAABB builds a rectangle collider spanning box
func FromAABB(box AABB) Collider {
	size := box.Size()
	return New(box.Center(), Rectangle(size.X, size.Y))
}

func (c Collider) primitive() Primitive {
	if c.prim == nil {
		return c.Shape.Convex(c.Position)
	}
	return c.prim
}

// Bounds is the world-space broad-phase box
func (c Collider) Bounds() AABB {
	return BoundsOf(c.primitive())
}

// Contains tests a world-space point, boundary included
func (c Collider) Contains(p vmath.Vec2) bool {
	return c.primitive().PointInside(toResolv(p))
}

// IntersectsSegment tests a world-space sweep from a to b
// resolv reports edge crossings only, so a sweep that starts or ends inside
// the shape is caught by the endpoint tests
func (c Collider) IntersectsSegment(a, b vmath.Vec2) bool {
	if !c.Bounds().Intersects(SegmentBounds(a, b)) {
		return false
	}
	prim := c.primitive()
	if prim.PointInside(toResolv(a)) || prim.PointInside(toResolv(b)) {
		return true
	}
	if a == b {
		return false
	}
	return resolv.NewLine(a.X, a.Y, b.X, b.Y).Intersection(0, 0, prim) != nil
}

// Query returns the indices of colliders the sweep from a to b touches
func Query(colliders []Collider, a, b vmath.Vec2) []int {
	var hits []int
	for i, c := range colliders {
		if c.IntersectsSegment(a, b) {
			hits = append(hits, i)
		}
	}
	return hits
}
