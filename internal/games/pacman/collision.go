package pacman

// Overlaps reports whether the bounding boxes of a and b intersect.
// Touching edges do not count.
func Overlaps(a, b *Entity) bool {
	return a.Rect().Intersects(b.Rect())
}

// firstOverlap returns the first entity in set overlapping e, or nil.
func firstOverlap(e *Entity, set *EntitySet) *Entity {
	for _, other := range set.All() {
		if Overlaps(e, other) {
			return other
		}
	}
	return nil
}
