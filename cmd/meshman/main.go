// meshman is a CLI utility for converting binary STL meshes to STL, POV-Ray and AMF.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/meshman/internal/config"
	"github.com/Faultbox/meshman/internal/convert"
	"github.com/Faultbox/meshman/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		os.Exit(cmdInfo(args))
	case "convert", "c":
		os.Exit(cmdConvert(args))
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshman - binary STL mesh converter

Usage:
  meshman <command> [options] <file.stl>

Commands:
  info [-facets] <file.stl>    Show header, vertex and facet counts and bounds
  convert [options] <file.stl> Decode, transform and export a mesh
  help                         Show this help

Convert options:
  -format stl|pov|amf    Output format (default stl)
  -out path              Output file (pov: base name for .inc and .pov)
  -t op=x,y,z            Transform step: rotate (degrees), scale or translate.
                         Repeatable, applied in the order given
  -template path         POV-Ray scene template (default templates/model.pov)
  -model name            POV-Ray model identifier (default m_model)
  -config path           Config file (YAML or TOML)
  -log path              Also write logs to a rotating file
  -debug                 Enable debug logging

Examples:
  meshman info part.stl
  meshman convert -format pov part.stl
  meshman convert -format amf -t scale=25.4,25.4,25.4 -out part.amf part.stl
  meshman convert -t rotate=0,0,90 -t translate=0,0,10 part.stl`)
}

// setup parses flags, loads the config and starts logging.
func setup(args []string) (*config.Config, []string, error) {
	rest, err := config.ParseFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, nil, fmt.Errorf("initializing logger: %w", err)
	}
	return cfg, rest, nil
}

func cmdInfo(args []string) int {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	facets := fs.Bool("facets", false, "Dump every facet record")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshman info [-facets] <file.stl>")
		return 1
	}

	report, err := convert.Info(fs.Arg(0), *facets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Print(report)
	return 0
}

func cmdConvert(args []string) int {
	cfg, rest, err := setup(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshman convert [options] <file.stl>")
		return 1
	}

	job, err := convert.NewJob(cfg, rest[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger.Info("converting",
		zap.String("input", job.Input),
		zap.String("format", string(job.Format)),
		zap.Int("transforms", len(job.Pipeline)),
	)

	res, err := convert.Run(job)
	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	for _, out := range res.Outputs {
		fmt.Println(out)
	}
	return 0
}
