// Package transform applies an ordered pipeline of rotate/scale/translate
// operations to a mesh.
package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/meshman/pkg/math"
	"github.com/Faultbox/meshman/pkg/mesh"
)

// ErrMalformedArgument is returned for bad operation names or vector literals.
var ErrMalformedArgument = errors.New("malformed argument")

// Kind names a transform operation.
type Kind int

// Supported operations.
const (
	Rotate Kind = iota
	Scale
	Translate
)

// String returns the operation name as accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case Rotate:
		return "rotate"
	case Scale:
		return "scale"
	case Translate:
		return "translate"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// ParseKind maps "rotate", "scale" or "translate" to its Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "rotate":
		return Rotate, nil
	case "scale":
		return Scale, nil
	case "translate":
		return Translate, nil
	default:
		return 0, fmt.Errorf("%w: unknown operation %q", ErrMalformedArgument, name)
	}
}

// Op is a single transform step.
//
//   - Rotate: Arg holds angles in degrees about X, Y and Z, applied in that
//     order around the origin.
//   - Scale: Arg holds per-axis factors.
//   - Translate: Arg holds the offset.
type Op struct {
	Kind Kind
	Arg  math.Vec3
}

// String formats the op as "name=x,y,z", the form accepted by ParseOp.
func (o Op) String() string {
	return fmt.Sprintf("%s=%v,%v,%v", o.Kind, o.Arg.X, o.Arg.Y, o.Arg.Z)
}

// Matrix returns the affine matrix for the op.
func (o Op) Matrix() math.Mat4 {
	switch o.Kind {
	case Rotate:
		return math.RotateEuler(o.Arg)
	case Scale:
		return math.Scale(o.Arg.X, o.Arg.Y, o.Arg.Z)
	case Translate:
		return math.Translate(o.Arg.X, o.Arg.Y, o.Arg.Z)
	default:
		return math.Identity()
	}
}

// Apply returns a new mesh with every vertex transformed. Facet indices are
// kept and normals are recomputed from the moved vertices.
func (o Op) Apply(m *mesh.Mesh) *mesh.Mesh {
	mat := o.Matrix()
	vertices := make([]math.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		vertices[i] = mat.TransformVec3(v)
	}
	return m.WithVertices(vertices)
}

// Pipeline is an ordered list of ops.
type Pipeline []Op

// Apply runs each op in order, feeding each the previous result.
// An empty pipeline returns m unchanged.
func (p Pipeline) Apply(m *mesh.Mesh) *mesh.Mesh {
	for _, op := range p {
		m = op.Apply(m)
	}
	return m
}

// String joins the ops with spaces.
func (p Pipeline) String() string {
	parts := make([]string, len(p))
	for i, op := range p {
		parts[i] = op.String()
	}
	return strings.Join(parts, " ")
}

// ParseVector parses "x,y,z" into a vector. Exactly three numeric fields
// are required; surrounding spaces are ignored.
func ParseVector(s string) (math.Vec3, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return math.Vec3{}, fmt.Errorf("%w: vector %q needs 3 fields, got %d", ErrMalformedArgument, s, len(fields))
	}

	var c [3]float32
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: vector %q field %d: %v", ErrMalformedArgument, s, i, err)
		}
		c[i] = float32(v)
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// ParseOp parses "name=x,y,z".
func ParseOp(s string) (Op, error) {
	name, arg, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	kind, err := ParseKind(name)
	if err != nil {
		return Op{}, err
	}
	if !ok || strings.TrimSpace(arg) == "" {
		return Op{}, fmt.Errorf("%w: %s needs a vector argument", ErrMalformedArgument, name)
	}

	v, err := ParseVector(arg)
	if err != nil {
		return Op{}, fmt.Errorf("%s: %w", name, err)
	}
	return Op{Kind: kind, Arg: v}, nil
}

// ParseOps parses every op, stopping at the first error.
func ParseOps(args []string) (Pipeline, error) {
	p := make(Pipeline, 0, len(args))
	for i, s := range args {
		op, err := ParseOp(s)
		if err != nil {
			return nil, fmt.Errorf("transform %d: %w", i, err)
		}
		p = append(p, op)
	}
	return p, nil
}
