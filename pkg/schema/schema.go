package schema

// ConfigVersionPrerelease is the only project configuration version carb
// reads and writes.
const ConfigVersionPrerelease = "prerelease"

// ProjectConfig is the schema of `.carb/config.yml`.
type ProjectConfig struct {
	Version string `yaml:"version" json:"version" mapstructure:"version"`
}

// DefaultProjectConfig returns the document written by `carb init`.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{Version: ConfigVersionPrerelease}
}

// CliConfiguration holds the settings resolved from flags and environment
// variables for one invocation, plus the project document when present.
type CliConfiguration struct {
	ChDir string `yaml:"chdir,omitempty" json:"chdir,omitempty" mapstructure:"chdir"`
	Logs  Logs   `yaml:"logs" json:"logs" mapstructure:"logs"`

	// WorkingDir is the absolute directory commands operate from.
	WorkingDir string `yaml:"-" json:"working_dir" mapstructure:"-"`
	// ProjectConfig is nil when no `.carb/config.yml` was found.
	ProjectConfig *ProjectConfig `yaml:"-" json:"project_config,omitempty" mapstructure:"-"`
}

type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}
