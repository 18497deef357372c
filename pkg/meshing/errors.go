// Package meshing converts brushes parsed by package mapfile into
// renderable triangle meshes: plane derivation, triple-plane vertex
// generation with half-space clipping, polygon ordering, UV projection,
// triangulation, and mesh merging.
package meshing

import "errors"

// ErrDegeneratePlane is wrapped (with %w) and returned when a face's
// triangle is collinear or has duplicate points.
var ErrDegeneratePlane = errors.New("meshing: degenerate plane")

// ErrInsufficientVertices is wrapped and returned when a face accumulates
// fewer than three vertices after clipping.
var ErrInsufficientVertices = errors.New("meshing: insufficient vertices")

// ErrNoGeometry is returned by MeshFromEntity when the entity has no
// brushes.
var ErrNoGeometry = errors.New("meshing: entity has no brushes")
