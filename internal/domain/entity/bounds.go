package entity

// BoxKind selects how a BoundingBox derives its size
type BoxKind int

const (
	// BoxFixed uses a stored half extent, independent of the transform scale.
	BoxFixed BoxKind = iota
	// BoxFromScale uses the transform's current scale as the full size.
	BoxFromScale
)

// BoundingBox resolves an entity's axis-aligned extent.
// It is stateless; every query evaluates it against the entity's current transform.
type BoundingBox struct {
	Kind       BoxKind
	HalfExtent Vec2 // only read for BoxFixed
}

// FixedBox returns a box with the given full size
func FixedBox(size Vec2) BoundingBox {
	return BoundingBox{Kind: BoxFixed, HalfExtent: size.Scale(0.5)}
}

// ScaleBox returns a box that follows the transform scale
func ScaleBox() BoundingBox {
	return BoundingBox{Kind: BoxFromScale}
}

// Extent returns the full width and height of the box for transform t
func (b BoundingBox) Extent(t Transform) Vec2 {
	if b.Kind == BoxFromScale {
		return t.Scale.Truncate()
	}
	return b.HalfExtent.Scale(2)
}

// Rect returns the box centered on t's translation
func (b BoundingBox) Rect(t Transform) Rect {
	return RectFromCenter(t.Translation.Truncate(), b.Extent(t))
}

// Rect is an axis-aligned rectangle
type Rect struct {
	Min, Max Vec2
}

// RectFromCenter builds a rect of the given full size around center
func RectFromCenter(center, size Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// Size returns the width and height of r
func (r Rect) Size() Vec2 { return r.Max.Sub(r.Min) }

// Center returns the midpoint of r
func (r Rect) Center() Vec2 { return r.Min.Add(r.Max).Scale(0.5) }

// Overlaps reports whether r and o overlap on both axes.
// Touching edges do not count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && r.Max.X > o.Min.X &&
		r.Min.Y < o.Max.Y && r.Max.Y > o.Min.Y
}

// Union returns the smallest rect containing r and o
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Vec2{min(r.Min.X, o.Min.X), min(r.Min.Y, o.Min.Y)},
		Max: Vec2{max(r.Max.X, o.Max.X), max(r.Max.Y, o.Max.Y)},
	}
}
