// Package am loads atelier's configuration ("I am").
package am

// Config represents the atelier configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
	Display DisplayConfig `mapstructure:"display" toml:"display" yaml:"display" json:"display"`
	Roster  RosterConfig  `mapstructure:"roster" toml:"roster" yaml:"roster" json:"roster"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	// JSON lines instead of console output
	JSON bool `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
	// Baseline verbosity, added to -v flags
	Verbosity int `mapstructure:"verbosity" toml:"verbosity" yaml:"verbosity" json:"verbosity"`
}

// DisplayConfig configures terminal rendering of artist descriptions
type DisplayConfig struct {
	Color bool `mapstructure:"color" toml:"color" yaml:"color" json:"color"` // pterm colors and section headers
	Boxed bool `mapstructure:"boxed" toml:"boxed" yaml:"boxed" json:"boxed"` // Wrap each description in a box
}

// RosterConfig configures the CLI roster
type RosterConfig struct {
	Showcase bool `mapstructure:"showcase" toml:"showcase" yaml:"showcase" json:"showcase"` // Seed with the showcase artists
}

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)
