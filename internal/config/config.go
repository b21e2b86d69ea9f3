// Package config handles meshman configuration loading and management.
package config

// Config holds all meshman settings.
type Config struct {
	Export  ExportConfig  `yaml:"export" toml:"export"`
	POV     POVConfig     `yaml:"pov" toml:"pov"`
	AMF     AMFConfig     `yaml:"amf" toml:"amf"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// ExportConfig selects the exporter and transform pipeline.
type ExportConfig struct {
	Format     string   `yaml:"format" toml:"format"`         // stl, pov or amf
	Output     string   `yaml:"output" toml:"output"`         // Output path; derived from the input when empty
	Transforms []string `yaml:"transforms" toml:"transforms"` // Ordered "op=x,y,z" steps
}

// POVConfig holds POV-Ray output settings.
type POVConfig struct {
	TemplatePath string `yaml:"template_path" toml:"template_path"`
	ModelName    string `yaml:"model_name" toml:"model_name"`
}

// AMFConfig holds AMF document attributes.
type AMFConfig struct {
	Unit    string `yaml:"unit" toml:"unit"`
	Version string `yaml:"version" toml:"version"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// DefaultTemplatePath is the conventional location of the POV-Ray scene template.
const DefaultTemplatePath = "templates/model.pov"

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			Format: "stl",
		},
		POV: POVConfig{
			TemplatePath: DefaultTemplatePath,
			ModelName:    "m_model",
		},
		AMF: AMFConfig{
			Unit:    "inch",
			Version: "1.1",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
