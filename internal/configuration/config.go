package configuration

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	DefaultInterval  = 12
	DefaultMinTemp   = 35
	DefaultMinSpeed  = 10
	DefaultMaxSpeed  = 50
	DefaultTempStep  = 2
	DefaultSpeedStep = 6

	DefaultStatisticsWindowSize = 10
	DefaultStatisticsPort       = 9000
	DefaultLogFile              = "/var/log/fancontrol.log"

	MinInterval  = 1
	MaxInterval  = 35
	MaxSpeed     = 255
	MaxTempStep  = 10
	MaxSpeedStep = 50

	// speedRangeWidening is applied to both ends of an inverted min/max speed range
	speedRangeWidening = 30
)

// Configuration is constructed once at startup and never modified afterwards.
type Configuration struct {
	// Interval is the time in seconds between two control loop iterations
	Interval int `json:"interval"`
	// MinTemp is the temperature in °C at which the fan is turned on
	MinTemp int `json:"minTemp"`
	// MinSpeed is the fan speed used at MinTemp
	MinSpeed int `json:"minSpeed"`
	// MaxSpeed is the upper limit for the fan speed
	MaxSpeed int `json:"maxSpeed"`
	// TempStep is the width in °C of a single temperature bracket
	TempStep int `json:"tempStep"`
	// SpeedStep is the speed added for every full TempStep above MinTemp
	SpeedStep int `json:"speedStep"`

	CpuTempPath string `json:"cpuTempPath"`
	FanPath     string `json:"fanPath"`
	NoDaemon    bool   `json:"noDaemon"`

	// StrictSensorParsing turns non-numeric sensor content into a read error instead of 0°C
	StrictSensorParsing bool `json:"strictSensorParsing"`
	// AtomicWrite replaces the fan file via rename instead of truncating it, only for regular files
	AtomicWrite bool `json:"atomicWrite"`

	LogFile string `json:"logFile"`

	StatisticsWindowSize int              `json:"statisticsWindowSize"`
	Statistics           StatisticsConfig `json:"statistics"`
	Mqtt                 MqttConfig       `json:"mqtt"`
}

// IntervalDuration returns Interval as a time.Duration
func (c Configuration) IntervalDuration() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

// InitConfig sets up config file search paths, environment variables and default values.
func InitConfig(cfgFile string) error {
	viper.SetConfigName("fancontrol")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/fancontrol/")
	}

	viper.SetEnvPrefix("fancontrol")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
	return nil
}

func setDefaultValues() {
	viper.SetDefault("interval", DefaultInterval)
	viper.SetDefault("minTemp", DefaultMinTemp)
	viper.SetDefault("minSpeed", DefaultMinSpeed)
	viper.SetDefault("maxSpeed", DefaultMaxSpeed)
	viper.SetDefault("tempStep", DefaultTempStep)
	viper.SetDefault("speedStep", DefaultSpeedStep)
	viper.SetDefault("cpuTempPath", "")
	viper.SetDefault("fanPath", "")
	viper.SetDefault("noDaemon", false)

	viper.SetDefault("strictSensorParsing", false)
	viper.SetDefault("atomicWrite", false)
	viper.SetDefault("logFile", DefaultLogFile)
	viper.SetDefault("statisticsWindowSize", DefaultStatisticsWindowSize)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", DefaultStatisticsPort)

	viper.SetDefault("mqtt.enabled", false)
	viper.SetDefault("mqtt.broker", "")
	viper.SetDefault("mqtt.topic", DefaultMqttTopic)
	viper.SetDefault("mqtt.clientId", DefaultMqttClientId)
}

// ReadConfigFile reads the config file, if one exists, and returns its path.
// A config file is optional, unless one was requested explicitly.
func ReadConfigFile() (string, error) {
	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed(), nil
}

// LoadConfig decodes all sources known to viper into a new Configuration
func LoadConfig() (Configuration, error) {
	var config Configuration
	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			expandHomeDirHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	return config, err
}

// expandHomeDirHookFunc resolves a leading "~" in string values to the home directory of the current user
func expandHomeDirHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.String {
			return data, nil
		}
		value := reflect.ValueOf(data).String()
		if !strings.HasPrefix(value, "~") {
			return data, nil
		}
		return homedir.Expand(value)
	}
}
