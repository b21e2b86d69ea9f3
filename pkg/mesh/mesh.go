// Package mesh provides the indexed triangle mesh built from STL facets.
package mesh

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/meshman/pkg/math"
)

// ErrInvalidIndex is returned by Validate when a facet references a missing vertex.
var ErrInvalidIndex = errors.New("facet vertex index out of range")

// Facet is a triangle referencing three vertices by index.
type Facet struct {
	V1, V2, V3 int
	Normal     math.Vec3
}

// Indices returns the three vertex indices.
func (f Facet) Indices() [3]int {
	return [3]int{f.V1, f.V2, f.V3}
}

// Mesh is a list of unique vertices and the facets that reference them.
type Mesh struct {
	Vertices []math.Vec3
	Facets   []Facet
}

// New builds a mesh that takes ownership of the given slices.
func New(vertices []math.Vec3, facets []Facet) *Mesh {
	return &Mesh{Vertices: vertices, Facets: facets}
}

// CalculateNormal returns the unit normal of triangle a, b, c
// following the right-hand rule on (b-a) x (c-a).
func CalculateNormal(a, b, c math.Vec3) math.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Triangle returns the vertex positions of facet i.
func (m *Mesh) Triangle(i int) [3]math.Vec3 {
	f := m.Facets[i]
	return [3]math.Vec3{m.Vertices[f.V1], m.Vertices[f.V2], m.Vertices[f.V3]}
}

// WithVertices returns a new mesh with the given vertex positions and the same
// topology. Normals are recomputed from the new positions.
func (m *Mesh) WithVertices(vertices []math.Vec3) *Mesh {
	facets := make([]Facet, len(m.Facets))
	for i, f := range m.Facets {
		facets[i] = Facet{
			V1:     f.V1,
			V2:     f.V2,
			V3:     f.V3,
			Normal: CalculateNormal(vertices[f.V1], vertices[f.V2], vertices[f.V3]),
		}
	}
	return New(vertices, facets)
}

// Validate checks that every facet index refers to an existing vertex.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Facets {
		for _, idx := range f.Indices() {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: facet %d references vertex %d of %d", ErrInvalidIndex, i, idx, n)
			}
		}
	}
	return nil
}

// Bounds returns the component-wise minimum and maximum vertex.
// An empty mesh returns zero vectors.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Vertices) == 0 {
		return math.Vec3{}, math.Vec3{}
	}

	min = m.Vertices[0]
	max = m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}

// Describe returns a human-readable summary of the mesh.
func Describe(m *Mesh) string {
	var b strings.Builder
	min, max := m.Bounds()
	fmt.Fprintf(&b, "Vertices: %d\n", len(m.Vertices))
	fmt.Fprintf(&b, "Facets:   %d\n", len(m.Facets))
	fmt.Fprintf(&b, "From:     %v\n", min)
	fmt.Fprintf(&b, "  To:     %v\n", max)
	return b.String()
}
