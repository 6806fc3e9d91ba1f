package fans

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/simplefan/fancontrol/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFan(t *testing.T) {
	// GIVEN
	config := configuration.Configuration{
		FanPath:     "/sys/class/hwmon/hwmon0/pwm1",
		AtomicWrite: true,
	}

	// WHEN
	fan, err := NewFan(config)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "/sys/class/hwmon/hwmon0/pwm1", fan.GetId())
	assert.Equal(t, &FileFan{Path: config.FanPath, Atomic: true}, fan)
}

func TestNewFanMissingPath(t *testing.T) {
	// WHEN
	_, err := NewFan(configuration.Configuration{})

	// THEN
	assert.Error(t, err)
}

func TestFileFan_SetPwm(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "pwm1")
	require.NoError(t, os.WriteFile(filePath, []byte("255\n"), 0644))
	fan := &FileFan{Path: filePath}

	// WHEN
	err := fan.SetPwm(28)

	// THEN
	assert.NoError(t, err)
	content, err := os.ReadFile(filePath)
	assert.NoError(t, err)
	assert.Equal(t, "28", string(content))
}

func TestFileFan_SetPwmCreatesFile(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "pwm1")
	fan := &FileFan{Path: filePath}

	// WHEN
	err := fan.SetPwm(0)

	// THEN
	assert.NoError(t, err)
	content, err := os.ReadFile(filePath)
	assert.NoError(t, err)
	assert.Equal(t, "0", string(content))
}

func TestFileFan_SetPwmAtomic(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "pwm1")
	require.NoError(t, os.WriteFile(filePath, []byte("123"), 0644))
	fan := &FileFan{Path: filePath, Atomic: true}

	// WHEN
	err := fan.SetPwm(50)

	// THEN
	assert.NoError(t, err)
	content, err := os.ReadFile(filePath)
	assert.NoError(t, err)
	assert.Equal(t, "50", string(content))
}

func TestFileFan_SetPwmUnwritable(t *testing.T) {
	// GIVEN
	fan := &FileFan{Path: filepath.Join(t.TempDir(), "missing", "pwm1")}

	// WHEN
	err := fan.SetPwm(10)

	// THEN
	assert.Error(t, err)
}

func TestFileFan_GetPwm(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "pwm1")
	require.NoError(t, os.WriteFile(filePath, []byte("34\n"), 0644))
	fan := &FileFan{Path: filePath}

	// WHEN
	result, err := fan.GetPwm()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 34, result)
}
