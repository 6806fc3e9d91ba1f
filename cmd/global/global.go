package global

import (
	"github.com/simplefan/fancontrol/internal/configuration"
	"github.com/simplefan/fancontrol/internal/ui"
)

var (
	CfgFile string
	NoColor bool
	NoStyle bool
	Verbose bool
)

// LoadConfiguration reads all configuration sources and sanitizes the result.
// Required values are not validated.
func LoadConfiguration() (configuration.Configuration, error) {
	configPath, err := configuration.ReadConfigFile()
	if err != nil {
		return configuration.Configuration{}, err
	}
	if len(configPath) > 0 {
		ui.Info("Using configuration file at: %s", configPath)
	} else {
		ui.Debug("No configuration file found, using flags and environment only")
	}

	config, err := configuration.LoadConfig()
	if err != nil {
		return config, err
	}
	return configuration.Sanitize(config), nil
}
