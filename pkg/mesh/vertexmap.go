package mesh

import (
	"fmt"

	"github.com/Faultbox/meshman/pkg/math"
)

// VertexMap assigns a stable index to each distinct vertex in first-seen order.
// Vertices are compared by their bit patterns, so no epsilon merging happens.
type VertexMap struct {
	indices map[math.Key]int
}

// NewVertexMap returns an empty VertexMap.
func NewVertexMap() *VertexMap {
	return &VertexMap{indices: make(map[math.Key]int)}
}

// Add returns the index of v, assigning the next index if v is new.
func (vm *VertexMap) Add(v math.Vec3) int {
	key := v.Key()
	if idx, ok := vm.indices[key]; ok {
		return idx
	}
	idx := len(vm.indices)
	vm.indices[key] = idx
	return idx
}

// Get returns the index previously assigned to v.
func (vm *VertexMap) Get(v math.Vec3) (int, bool) {
	idx, ok := vm.indices[v.Key()]
	return idx, ok
}

// MustGet is like Get but panics if v was never added.
func (vm *VertexMap) MustGet(v math.Vec3) int {
	idx, ok := vm.Get(v)
	if !ok {
		panic(fmt.Sprintf("mesh: vertex %v not in map", v))
	}
	return idx
}

// Len returns the number of distinct vertices.
func (vm *VertexMap) Len() int {
	return len(vm.indices)
}

// Vector returns the vertices ordered by index.
func (vm *VertexMap) Vector() []math.Vec3 {
	out := make([]math.Vec3, len(vm.indices))
	for key, idx := range vm.indices {
		out[idx] = key.Vec3()
	}
	return out
}
