// Package geo implements the fixed-point coordinate representation used for
// Wikidata P625 coordinate claims: longitude/latitude scaled by
// 1e7 and stored as int32, matching the column type of the items R-tree.
package geo

// Scale is the fixed-point multiplier applied to decimal degrees.
const Scale = 1e7

// Coord is a longitude/latitude pair in ten-millionths of a degree.
type Coord struct {
	LonE7 int32
	LatE7 int32
}

// FromDegrees builds a Coord from decimal-degree longitude/latitude, as
// reported by a P625 datavalue.
func FromDegrees(lon, lat float64) Coord {
	return Coord{
		LonE7: int32(lon * Scale),
		LatE7: int32(lat * Scale),
	}
}

// Degrees returns c as decimal-degree longitude/latitude.
func (c Coord) Degrees() (lon, lat float64) {
	return float64(c.LonE7) / Scale, float64(c.LatE7) / Scale
}
