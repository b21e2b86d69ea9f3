// STL (stereolithography) binary format reader and writer.
package formats

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Faultbox/meshman/pkg/encoding"
	"github.com/Faultbox/meshman/pkg/math"
	"github.com/Faultbox/meshman/pkg/mesh"
)

// STL layout constants.
const (
	STLHeaderSize = 80
	STLFacetSize  = 50 // normal + 3 vertices (12 floats) + attribute
)

// STLKind is the advisory encoding of an STL file guessed from its header.
type STLKind int

const (
	STLBinary STLKind = iota
	STLASCII
)

// String returns "binary" or "ASCII".
func (k STLKind) String() string {
	if k == STLASCII {
		return "ASCII"
	}
	return "binary"
}

// STLFacet is a triangle as stored in the file.
type STLFacet struct {
	Normal    math.Vec3 // Declared normal; ignored when building a mesh
	V1        math.Vec3
	V2        math.Vec3
	V3        math.Vec3
	Attribute uint16 // Attribute byte count
}

// CalculateNormal returns the normal derived from the facet's vertices.
func (f *STLFacet) CalculateNormal() math.Vec3 {
	return mesh.CalculateNormal(f.V1, f.V2, f.V3)
}

// String formats the facet for debug output.
func (f STLFacet) String() string {
	return fmt.Sprintf("[%v] (%v-%v-%v) [%X]", f.Normal, f.V1, f.V2, f.V3, f.Attribute)
}

// STL represents a decoded binary STL file.
type STL struct {
	Header [STLHeaderSize]byte
	Facets []STLFacet
}

// Kind reports whether the header looks like an ASCII STL ("solid ...").
// Decoding is always binary; this is informational only.
func (s *STL) Kind() STLKind {
	if bytes.HasPrefix(s.Header[:], []byte("solid ")) {
		return STLASCII
	}
	return STLBinary
}

// HeaderText returns the header as printable text.
func (s *STL) HeaderText() string {
	return encoding.HeaderText(s.Header[:])
}

// DecodeSTL reads a binary STL from r in a single forward pass.
// No partial result is returned on error.
func DecodeSTL(r io.Reader) (*STL, error) {
	br := bufio.NewReader(r)
	stl := &STL{}

	if _, err := io.ReadFull(br, stl.Header[:]); err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", readErr(err), err)
	}

	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: reading facet count: %w", readErr(err), err)
	}

	// Grow as records arrive so a bogus count cannot force a huge allocation.
	stl.Facets = make([]STLFacet, 0, min(count, 1<<16))
	for i := uint32(0); i < count; i++ {
		facet, err := readSTLFacet(br)
		if err != nil {
			return nil, fmt.Errorf("%w: reading facet %d of %d: %w", readErr(err), i, count, err)
		}
		stl.Facets = append(stl.Facets, facet)
	}

	return stl, nil
}

// readSTLFacet reads one 50-byte facet record.
func readSTLFacet(r io.Reader) (STLFacet, error) {
	var f STLFacet
	var err error

	for _, v := range []*math.Vec3{&f.Normal, &f.V1, &f.V2, &f.V3} {
		if *v, err = math.ReadVec3(r); err != nil {
			return STLFacet{}, err
		}
	}

	var attr [2]byte
	if _, err := io.ReadFull(r, attr[:]); err != nil {
		return STLFacet{}, err
	}
	f.Attribute = binary.LittleEndian.Uint16(attr[:])

	return f, nil
}

// ParseSTL parses a binary STL from a byte slice.
func ParseSTL(data []byte) (*STL, error) {
	return DecodeSTL(bytes.NewReader(data))
}

// ParseSTLFile parses a binary STL file from disk.
func ParseSTLFile(path string) (*STL, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening STL file: %w", ErrIOFailure, err)
	}
	defer f.Close()

	stl, err := DecodeSTL(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return stl, nil
}

// DecodeASCIISTL is reserved for text STL files, which are not supported.
func DecodeASCIISTL(r io.Reader) (*STL, error) {
	return nil, fmt.Errorf("%w: ASCII STL decoding", ErrUnimplemented)
}

// AsMesh deduplicates the facet vertices into an indexed mesh.
// Vertex indices follow first occurrence order and normals are recomputed
// from each facet's geometry.
func (s *STL) AsMesh() *mesh.Mesh {
	vm := mesh.NewVertexMap()
	for i := range s.Facets {
		f := &s.Facets[i]
		vm.Add(f.V1)
		vm.Add(f.V2)
		vm.Add(f.V3)
	}

	facets := make([]mesh.Facet, len(s.Facets))
	for i := range s.Facets {
		f := &s.Facets[i]
		facets[i] = mesh.Facet{
			V1:     vm.MustGet(f.V1),
			V2:     vm.MustGet(f.V2),
			V3:     vm.MustGet(f.V3),
			Normal: f.CalculateNormal(),
		}
	}

	return mesh.New(vm.Vector(), facets)
}

// Describe returns a text dump of the file: kind, facet count and every facet.
func (s *STL) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Is %s STL\n", s.Kind())
	fmt.Fprintf(&b, "Facets: %d\n", len(s.Facets))
	for _, f := range s.Facets {
		fmt.Fprintf(&b, "  Facet: %v\n", f)
	}
	return b.String()
}

// EncodeSTL writes m as a binary STL with a blank header and zero attributes.
func EncodeSTL(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	var header [STLHeaderSize]byte
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("%w: writing header: %w", ErrIOFailure, err)
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Facets))); err != nil {
		return fmt.Errorf("%w: writing facet count: %w", ErrIOFailure, err)
	}

	for i, facet := range m.Facets {
		tri := m.Triangle(i)
		rec := STLFacet{Normal: facet.Normal, V1: tri[0], V2: tri[1], V3: tri[2]}
		if err := writeSTLFacet(bw, &rec); err != nil {
			return fmt.Errorf("%w: writing facet %d: %w", ErrIOFailure, i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: flushing STL: %w", ErrIOFailure, err)
	}
	return nil
}

// writeSTLFacet writes one 50-byte facet record.
func writeSTLFacet(w io.Writer, f *STLFacet) error {
	for _, v := range []math.Vec3{f.Normal, f.V1, f.V2, f.V3} {
		if err := math.WriteVec3(w, v); err != nil {
			return err
		}
	}
	return binary.Write(w, binary.LittleEndian, f.Attribute)
}

// WriteSTLFile encodes m to a binary STL file at path.
// A partially written file is left in place on error.
func WriteSTLFile(path string, m *mesh.Mesh) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeSTL(w, m)
	})
}

// writeFile creates path, runs write, and closes the file on every path.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrIOFailure, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", ErrIOFailure, path, cerr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
