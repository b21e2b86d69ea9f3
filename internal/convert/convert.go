// Package convert runs the decode, transform and export stages for one input file.
package convert

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshman/internal/config"
	"github.com/Faultbox/meshman/internal/logger"
	"github.com/Faultbox/meshman/pkg/formats"
	"github.com/Faultbox/meshman/pkg/mesh"
	"github.com/Faultbox/meshman/pkg/transform"
	"github.com/Faultbox/meshman/templates"
)

// Format selects an exporter.
type Format string

// Supported output formats.
const (
	FormatSTL Format = "stl"
	FormatPOV Format = "pov"
	FormatAMF Format = "amf"
)

// ErrUnknownFormat is returned for an output format other than stl, pov or amf.
var ErrUnknownFormat = fmt.Errorf("%w: unknown output format", transform.ErrMalformedArgument)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatSTL, FormatPOV, FormatAMF:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
}

// Job is a fully validated conversion request.
type Job struct {
	Input        string
	Output       string // Empty derives the output path from Input
	Format       Format
	Pipeline     transform.Pipeline
	TemplatePath string
	POV          formats.POVOptions
	AMF          formats.AMFOptions
}

// NewJob checks the format and transform arguments from cfg. It touches no
// files, so a rejected job never leaves partial output.
func NewJob(cfg *config.Config, input string) (*Job, error) {
	if input == "" {
		return nil, fmt.Errorf("%w: no input file", transform.ErrMalformedArgument)
	}

	format, err := ParseFormat(cfg.Export.Format)
	if err != nil {
		return nil, err
	}

	pipeline, err := transform.ParseOps(cfg.Export.Transforms)
	if err != nil {
		return nil, err
	}

	return &Job{
		Input:        input,
		Output:       cfg.Export.Output,
		Format:       format,
		Pipeline:     pipeline,
		TemplatePath: cfg.POV.TemplatePath,
		POV: formats.POVOptions{
			SourceName: input,
			ModelName:  cfg.POV.ModelName,
		},
		AMF: formats.AMFOptions{
			Unit:    cfg.AMF.Unit,
			Version: cfg.AMF.Version,
		},
	}, nil
}

// Result describes a finished conversion.
type Result struct {
	Mesh    *mesh.Mesh // Mesh after the transform pipeline
	Outputs []string   // Files written, in order
}

// Run decodes the input, builds the indexed mesh, applies the pipeline and
// writes the selected format. The first failure aborts the run.
func Run(job *Job) (*Result, error) {
	start := time.Now()

	// Read the scene template first so a missing template fails before any output.
	if job.Format == FormatPOV {
		tmpl, err := loadTemplate(job.TemplatePath)
		if err != nil {
			return nil, err
		}
		job.POV.Template = tmpl
	}

	m, err := Decode(job.Input)
	if err != nil {
		return nil, err
	}

	if len(job.Pipeline) > 0 {
		logger.Named("transform").Debug("applying pipeline", zap.Stringer("ops", job.Pipeline))
		m = job.Pipeline.Apply(m)
	}

	outputs, err := export(job, m)
	if err != nil {
		return nil, err
	}

	logger.Named("export").Info("conversion finished",
		zap.String("format", string(job.Format)),
		zap.Strings("outputs", outputs),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Result{Mesh: m, Outputs: outputs}, nil
}

// Decode reads an STL file and returns its indexed mesh.
func Decode(path string) (*mesh.Mesh, error) {
	log := logger.Named("decode")

	stl, err := formats.ParseSTLFile(path)
	if err != nil {
		return nil, err
	}
	if stl.Kind() == formats.STLASCII {
		log.Warn("header looks like ASCII STL, decoding as binary", zap.String("file", path))
	}

	m := stl.AsMesh()
	if err := m.Validate(); err != nil {
		return nil, err
	}

	log.Debug("mesh built",
		zap.String("file", path),
		zap.Int("facets", len(m.Facets)),
		zap.Int("vertices", len(m.Vertices)),
	)
	return m, nil
}

// Info decodes an STL file and returns a text report for it. With facets set
// the report ends with a dump of every raw facet record.
func Info(path string, facets bool) (string, error) {
	stl, err := formats.ParseSTLFile(path)
	if err != nil {
		return "", err
	}
	m := stl.AsMesh()

	var b strings.Builder
	fmt.Fprintf(&b, "File:     %s\n", path)
	fmt.Fprintf(&b, "Kind:     %s\n", stl.Kind())
	fmt.Fprintf(&b, "Header:   %s\n", stl.HeaderText())
	b.WriteString(mesh.Describe(m))
	if facets {
		b.WriteString(stl.Describe())
	}
	return b.String(), nil
}

// export writes m with the job's exporter and returns the files written.
func export(job *Job, m *mesh.Mesh) ([]string, error) {
	switch job.Format {
	case FormatSTL:
		out := job.Output
		if out == "" {
			out = formats.ReplaceExt(job.Input, "_out.stl")
		}
		if err := formats.WriteSTLFile(out, m); err != nil {
			return nil, err
		}
		return []string{out}, nil

	case FormatPOV:
		base := job.Output
		if base == "" {
			base = job.Input
		}
		inc, scene, err := formats.WritePOVFiles(base, m, job.POV)
		if err != nil {
			return nil, err
		}
		return []string{inc, scene}, nil

	case FormatAMF:
		out := job.Output
		if out == "" {
			out = formats.ReplaceExt(job.Input, ".amf")
		}
		if err := formats.WriteAMFFile(out, m, job.AMF); err != nil {
			return nil, err
		}
		return []string{out}, nil

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, job.Format)
	}
}

// loadTemplate reads the POV-Ray scene template. When the conventional
// default path is absent the embedded copy is used instead.
func loadTemplate(path string) (string, error) {
	if path == "" {
		path = config.DefaultTemplatePath
	}

	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	if errors.Is(err, os.ErrNotExist) && path == config.DefaultTemplatePath {
		logger.Named("export").Warn("template not found, using built-in scene", zap.String("path", path))
		return templates.ModelScene, nil
	}
	return "", fmt.Errorf("%w: reading template: %w", formats.ErrIOFailure, err)
}
