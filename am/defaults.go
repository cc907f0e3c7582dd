package am

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)

	v.SetDefault("display.color", true)
	v.SetDefault("display.boxed", true)

	v.SetDefault("roster.showcase", true)
}
