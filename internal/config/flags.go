package config

import (
	"flag"
	"strings"
)

// stringList is a repeatable string flag that keeps arguments in order.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, " ")
}

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagFormat     = flag.String("format", "", "Output format: stl, pov or amf")
	flagOutput     = flag.String("out", "", "Output file path")
	flagTemplate   = flag.String("template", "", "POV-Ray scene template path")
	flagModel      = flag.String("model", "", "POV-Ray model identifier")
	flagLogFile    = flag.String("log", "", "Log file path")
	flagTransforms stringList
)

func init() {
	flag.Var(&flagTransforms, "t", "Transform step op=x,y,z (repeatable, applied in order)")
}

// ParseFlags parses command-line flags from args and returns the
// remaining positional arguments.
func ParseFlags(args []string) ([]string, error) {
	if err := flag.CommandLine.Parse(args); err != nil {
		return nil, err
	}
	return flag.Args(), nil
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
// Transform flags replace any steps from the config file.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFormat != "" {
		cfg.Export.Format = *flagFormat
	}
	if *flagOutput != "" {
		cfg.Export.Output = *flagOutput
	}
	if *flagTemplate != "" {
		cfg.POV.TemplatePath = *flagTemplate
	}
	if *flagModel != "" {
		cfg.POV.ModelName = *flagModel
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if len(flagTransforms) > 0 {
		cfg.Export.Transforms = append([]string(nil), flagTransforms...)
	}
}
