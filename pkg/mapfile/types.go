// Package mapfile parses Quake-family Valve 220 .map files into an
// in-memory Map tree (entities, brushes, faces). It does not derive
// geometry; see package meshing for brush-to-mesh conversion.
package mapfile

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Face is one bounding plane of a brush, given by three world-space
// reference points plus Valve 220 texture-projection parameters.
//
// Invariant: the three Triangle points are distinct and non-collinear.
type Face struct {
	Triangle    [3]mgl64.Vec3
	TextureName string
	AxisU       mgl64.Vec3
	AxisV       mgl64.Vec3
	Offset      mgl64.Vec2
	Rotation    float64
	Scale       mgl64.Vec2
}

// Brush is an ordered sequence of faces whose half-space intersection
// describes a convex polyhedron. A well-formed brush has at least four
// faces.
type Brush struct {
	Faces []Face
}

// Entity is a property bag plus an ordered sequence of brushes.
type Entity struct {
	Properties map[string]string
	Brushes    []Brush

	// orderedProps preserves parse order for PropertyPairs; it is not
	// part of the spec's data model and is never used for lookups.
	orderedProps []propertyPair
}

type propertyPair struct {
	key, value string
}

// PropertyPairs returns the entity's properties in the order they
// appeared in the source text, including any keys that were later
// overwritten by a duplicate. Most callers should use Properties instead;
// this exists for round-tripping and diagnostic output.
func (e Entity) PropertyPairs() []struct{ Key, Value string } {
	out := make([]struct{ Key, Value string }, len(e.orderedProps))
	for i, p := range e.orderedProps {
		out[i] = struct{ Key, Value string }{p.key, p.value}
	}
	return out
}

// Map is an ordered sequence of entities. The first entity conventionally
// holds "classname" "worldspawn" and most static geometry.
type Map struct {
	Entities []Entity
}

// Worldspawn returns the first entity whose classname property equals
// "worldspawn". The core does not rely on this convention; it is a
// convenience for callers that do.
func (m Map) Worldspawn() (Entity, bool) {
	for _, e := range m.Entities {
		if e.Properties["classname"] == "worldspawn" {
			return e, true
		}
	}
	return Entity{}, false
}
