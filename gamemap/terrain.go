// Package gamemap defines the immutable battlefield: terrain, per-tile
// rubble/parts, initial robot placements, and the zombie spawn schedule
// (spec.md §2.1, §3).
package gamemap

// TerrainTile classifies a tile's traversability.
type TerrainTile int

const (
	Normal TerrainTile = iota
	Void
	OffMap
)

func (t TerrainTile) String() string {
	switch t {
	case Normal:
		return "NORMAL"
	case Void:
		return "VOID"
	case OffMap:
		return "OFF_MAP"
	default:
		return "INVALID_TERRAIN"
	}
}

// Traversable reports whether any ground-moving robot could ever stand on
// this terrain, independent of rubble or occupancy.
func (t TerrainTile) Traversable() bool {
	return t == Normal
}
