// AMF (Additive Manufacturing File Format) XML writer.
package formats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/meshman/pkg/mesh"
)

// AMF document defaults.
const (
	DefaultAMFUnit    = "inch"
	DefaultAMFVersion = "1.1"
)

// AMFOptions controls the AMF document attributes.
type AMFOptions struct {
	Unit       string
	Version    string
	ObjectID   string
	MaterialID string
}

// DefaultAMFOptions returns the attributes used when none are configured.
func DefaultAMFOptions() AMFOptions {
	return AMFOptions{
		Unit:       DefaultAMFUnit,
		Version:    DefaultAMFVersion,
		ObjectID:   "1",
		MaterialID: "1",
	}
}

// withDefaults fills empty fields from DefaultAMFOptions.
func (o AMFOptions) withDefaults() AMFOptions {
	d := DefaultAMFOptions()
	if o.Unit == "" {
		o.Unit = d.Unit
	}
	if o.Version == "" {
		o.Version = d.Version
	}
	if o.ObjectID == "" {
		o.ObjectID = d.ObjectID
	}
	if o.MaterialID == "" {
		o.MaterialID = d.MaterialID
	}
	return o
}

// WriteAMF writes m as an AMF document with one object holding a vertex list
// and a single volume of triangles that reference vertices by index.
func WriteAMF(w io.Writer, m *mesh.Mesh, opts AMFOptions) error {
	opts = opts.withDefaults()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "<amf unit='%s' version='%s'>\n", opts.Unit, opts.Version)
	fmt.Fprintf(bw, "  <object id='%s'>\n", opts.ObjectID)
	bw.WriteString("    <vertices>\n")
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "        <vertex><coordinates><x>%s</x><y>%s</y><z>%s</z></coordinates></vertex>\n",
			formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
	}
	bw.WriteString("    </vertices>\n")
	fmt.Fprintf(bw, "    <volume materialid='%s'>\n", opts.MaterialID)
	for _, f := range m.Facets {
		fmt.Fprintf(bw, "        <triangle><v1>%d</v1><v2>%d</v2><v3>%d</v3></triangle>\n", f.V1, f.V2, f.V3)
	}
	bw.WriteString("    </volume>\n")
	bw.WriteString("  </object>\n")
	bw.WriteString("</amf>\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: writing AMF: %w", ErrIOFailure, err)
	}
	return nil
}

// WriteAMFFile writes m to an AMF file at path.
// A partially written file is left in place on error.
func WriteAMFFile(path string, m *mesh.Mesh, opts AMFOptions) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteAMF(w, m, opts)
	})
}

// ReadAMF is reserved for AMF input, which is not supported.
func ReadAMF(r io.Reader) (*mesh.Mesh, error) {
	return nil, fmt.Errorf("%w: AMF reading", ErrUnimplemented)
}
