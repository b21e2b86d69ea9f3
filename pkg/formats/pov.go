// POV-Ray mesh include and scene writer.
package formats

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Faultbox/meshman/pkg/math"
	"github.com/Faultbox/meshman/pkg/mesh"
)

// Template placeholder tokens replaced by RenderPOVScene.
const (
	POVFileNameToken  = "FILE_NAME"
	POVModelNameToken = "MODEL_NAME"
)

// DefaultPOVModelName is the identifier declared for the mesh.
const DefaultPOVModelName = "m_model"

// POVOptions controls POV-Ray output.
type POVOptions struct {
	SourceName string // Written in the include's header comment
	ModelName  string // Identifier of the declared mesh
	Template   string // Scene template text containing the placeholder tokens
}

func (o POVOptions) modelName() string {
	if o.ModelName == "" {
		return DefaultPOVModelName
	}
	return o.ModelName
}

// WritePOVInclude writes m as a "# declare <model> = mesh { ... }" block with
// one triangle clause per facet. Vertex components are written as <y, x, z>
// to match POV-Ray's axis convention.
func WritePOVInclude(w io.Writer, m *mesh.Mesh, opts POVOptions) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "// Source file: %s\n", opts.SourceName)
	fmt.Fprintf(bw, "# declare %s = mesh {\n", opts.modelName())
	for i := range m.Facets {
		tri := m.Triangle(i)
		fmt.Fprintf(bw, "    triangle {\n        %s,\n        %s,\n        %s\n    }\n",
			povVertex(tri[0]), povVertex(tri[1]), povVertex(tri[2]))
	}
	bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: writing POV include: %w", ErrIOFailure, err)
	}
	return nil
}

// povVertex formats a vertex with the x and y components swapped.
func povVertex(v math.Vec3) string {
	return fmt.Sprintf("    <%s, %s, %s>", formatFloat(v.Y), formatFloat(v.X), formatFloat(v.Z))
}

// RenderPOVScene substitutes the include file name and model identifier
// into a scene template.
func RenderPOVScene(template, includeName, modelName string) string {
	r := strings.NewReplacer(POVFileNameToken, includeName, POVModelNameToken, modelName)
	return r.Replace(template)
}

// POVPaths returns the include and scene paths derived from an input path.
func POVPaths(input string) (include, scene string) {
	return ReplaceExt(input, ".inc"), ReplaceExt(input, ".pov")
}

// WritePOVFiles writes <base>.inc with the mesh and <base>.pov rendered from
// opts.Template. Output stops at the first failure; files already written are
// left in place.
func WritePOVFiles(base string, m *mesh.Mesh, opts POVOptions) (include, scene string, err error) {
	include, scene = POVPaths(base)

	err = writeFile(include, func(w io.Writer) error {
		return WritePOVInclude(w, m, opts)
	})
	if err != nil {
		return "", "", err
	}

	content := RenderPOVScene(opts.Template, filepath.Base(include), opts.modelName())
	err = writeFile(scene, func(w io.Writer) error {
		if _, err := io.WriteString(w, content); err != nil {
			return fmt.Errorf("%w: writing POV scene: %w", ErrIOFailure, err)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}

	return include, scene, nil
}

// ReplaceExt swaps the extension of path for ext (which includes the dot).
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
