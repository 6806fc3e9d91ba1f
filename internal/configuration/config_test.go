package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// GIVEN
	viper.Reset()
	defer viper.Reset()
	setDefaultValues()

	// WHEN
	config, err := LoadConfig()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, DefaultInterval, config.Interval)
	assert.Equal(t, DefaultMinTemp, config.MinTemp)
	assert.Equal(t, DefaultMinSpeed, config.MinSpeed)
	assert.Equal(t, DefaultMaxSpeed, config.MaxSpeed)
	assert.Equal(t, DefaultTempStep, config.TempStep)
	assert.Equal(t, DefaultSpeedStep, config.SpeedStep)
	assert.Equal(t, DefaultLogFile, config.LogFile)
	assert.Equal(t, DefaultMqttTopic, config.Mqtt.Topic)
	assert.Equal(t, DefaultStatisticsPort, config.Statistics.Port)
	assert.False(t, config.NoDaemon)
	assert.Equal(t, 12*time.Second, config.IntervalDuration())
}

func TestLoadConfigFromFile(t *testing.T) {
	// GIVEN
	viper.Reset()
	defer viper.Reset()

	configPath := filepath.Join(t.TempDir(), "fancontrol.yaml")
	content := `
interval: 5
minTemp: 40
fanPath: /sys/class/hwmon/hwmon2/pwm1
cpuTempPath: /sys/class/thermal/thermal_zone0/temp
noDaemon: true
statistics:
  enabled: true
  port: 9100
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	require.NoError(t, InitConfig(configPath))

	// WHEN
	usedPath, err := ReadConfigFile()
	require.NoError(t, err)
	config, err := LoadConfig()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, configPath, usedPath)
	assert.Equal(t, 5, config.Interval)
	assert.Equal(t, 40, config.MinTemp)
	assert.Equal(t, DefaultMinSpeed, config.MinSpeed)
	assert.Equal(t, "/sys/class/hwmon/hwmon2/pwm1", config.FanPath)
	assert.Equal(t, "/sys/class/thermal/thermal_zone0/temp", config.CpuTempPath)
	assert.True(t, config.NoDaemon)
	assert.True(t, config.Statistics.Enabled)
	assert.Equal(t, 9100, config.Statistics.Port)
}

func TestReadConfigFileExplicitMissing(t *testing.T) {
	// GIVEN
	viper.Reset()
	defer viper.Reset()
	require.NoError(t, InitConfig(filepath.Join(t.TempDir(), "missing.yaml")))

	// WHEN
	_, err := ReadConfigFile()

	// THEN
	assert.Error(t, err)
}

func TestLoadConfigExpandsHomeDir(t *testing.T) {
	// GIVEN
	viper.Reset()
	defer viper.Reset()
	setDefaultValues()
	viper.Set("fanPath", "~/fan")
	home, err := homedir.Dir()
	require.NoError(t, err)

	// WHEN
	config, err := LoadConfig()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "fan"), config.FanPath)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	// GIVEN
	viper.Reset()
	defer viper.Reset()
	t.Setenv("FANCONTROL_MINTEMP", "42")
	t.Setenv("FANCONTROL_MQTT_BROKER", "tcp://broker:1883")
	require.NoError(t, InitConfig(""))

	// WHEN
	config, err := LoadConfig()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 42, config.MinTemp)
	assert.Equal(t, "tcp://broker:1883", config.Mqtt.Broker)
}
