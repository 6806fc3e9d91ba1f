package hwmon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/md14454/gosensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir string, name string, content string) {
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
	require.NoError(t, err)
}

func TestComputeIdentifierIsa(t *testing.T) {
	// GIVEN
	c := gosensors.Chip{
		Prefix: "nct6798",
		Bus: gosensors.Bus{
			Type: BusTypeIsa,
			Nr:   0,
		},
		Path: "/sys/class/hwmon/hwmon2",
	}

	// WHEN
	result := computeIdentifier(c)

	// THEN
	assert.Equal(t, "nct6798-isa-0", result)
}

func TestComputeIdentifierPci(t *testing.T) {
	// GIVEN
	c := gosensors.Chip{
		Prefix: "nvme",
		Bus: gosensors.Bus{
			Type: BusTypePci,
			Nr:   1,
		},
		Path: "/sys/class/hwmon/hwmon4",
	}

	// WHEN
	result := computeIdentifier(c)

	// THEN
	assert.Equal(t, "nvme-pci-1", result)
}

func TestComputeIdentifierAcpi(t *testing.T) {
	// GIVEN
	c := gosensors.Chip{
		Prefix: "acpitz",
		Bus: gosensors.Bus{
			Type: BusTypeAcpi,
			Nr:   0,
		},
		Path: "/sys/class/hwmon/hwmon0",
	}

	// WHEN
	result := computeIdentifier(c)

	// THEN
	assert.Equal(t, "acpitz-acpi-0", result)
}

func TestComputeIdentifierFromNameFile(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	writeFile(t, dir, "name", "k10temp\n")
	c := gosensors.Chip{Path: dir}

	// WHEN
	result := computeIdentifier(c)

	// THEN
	assert.Equal(t, "k10temp", result)
}

func TestComputeIdentifierFromPath(t *testing.T) {
	// GIVEN
	dir := filepath.Join(t.TempDir(), "hwmon3")
	require.NoError(t, os.Mkdir(dir, 0755))
	c := gosensors.Chip{Path: dir}

	// WHEN
	result := computeIdentifier(c)

	// THEN
	assert.Equal(t, "hwmon3", result)
}

func TestGetLabel(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	writeFile(t, dir, "temp1_label", "Tctl\n")

	// WHEN
	label := getLabel(dir, "temp1_input")
	missing := getLabel(dir, "temp2_input")

	// THEN
	assert.Equal(t, "Tctl", label)
	assert.Equal(t, filepath.Base(dir), missing)
}

func TestFindPwmOutputs(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	writeFile(t, dir, "pwm10", "0")
	writeFile(t, dir, "pwm2", "128")
	writeFile(t, dir, "pwm2_enable", "1")
	writeFile(t, dir, "fan2_input", "1200")
	writeFile(t, dir, "fan2_label", "CPU_FAN")
	writeFile(t, dir, "temp1_input", "45000")

	// WHEN
	result := FindPwmOutputs(dir)

	// THEN
	assert.Equal(t, []PwmOutput{
		{
			Channel:  2,
			Label:    "CPU_FAN",
			Path:     filepath.Join(dir, "pwm2"),
			RpmInput: filepath.Join(dir, "fan2_input"),
		},
		{
			Channel:  10,
			Label:    filepath.Base(dir),
			Path:     filepath.Join(dir, "pwm10"),
			RpmInput: "",
		},
	}, result)
}

func TestFindPwmOutputsMissingDirectory(t *testing.T) {
	// WHEN
	result := FindPwmOutputs(filepath.Join(t.TempDir(), "missing"))

	// THEN
	assert.Empty(t, result)
}
