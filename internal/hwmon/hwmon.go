package hwmon

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/md14454/gosensors"
)

const (
	BusTypeIsa  = 1
	BusTypePci  = 2
	BusTypeAcpi = 5
)

var pwmFileRegex = regexp.MustCompile(`^pwm(\d+)$`)

// TemperatureInput can be used as the temperature source of the daemon
type TemperatureInput struct {
	Index int
	Label string
	Path  string
	// Value in °C, as reported by libsensors
	Value float64
}

// PwmOutput can be used as the fan speed sink of the daemon
type PwmOutput struct {
	Channel int
	Label   string
	Path    string
	// RpmInput is empty if the chip has no matching tachometer
	RpmInput string
}

type Chip struct {
	Name string
	Path string

	Temperatures []TemperatureInput
	Pwms         []PwmOutput
}

// GetChips lists all chips reported by libsensors that have at least one
// temperature input or pwm output
func GetChips() []*Chip {
	gosensors.Init()
	defer gosensors.Cleanup()
	chips := gosensors.GetDetectedChips()

	var list []*Chip
	for _, chip := range chips {
		temperatures := GetTemperatureInputs(chip)
		pwms := FindPwmOutputs(chip.Path)

		if len(temperatures) <= 0 && len(pwms) <= 0 {
			continue
		}

		list = append(list, &Chip{
			Name:         computeIdentifier(chip),
			Path:         chip.Path,
			Temperatures: temperatures,
			Pwms:         pwms,
		})
	}

	return list
}

func GetTemperatureInputs(chip gosensors.Chip) []TemperatureInput {
	var result []TemperatureInput

	for _, feature := range chip.GetFeatures() {
		if feature.Type != gosensors.FeatureTypeTemp {
			continue
		}

		input, ok := findSubFeature(feature.GetSubFeatures(), gosensors.SubFeatureTypeTempInput)
		if !ok {
			continue
		}

		result = append(result, TemperatureInput{
			Index: len(result) + 1,
			Label: getLabel(chip.Path, input.Name),
			Path:  filepath.Join(chip.Path, input.Name),
			Value: input.GetValue(),
		})
	}

	return result
}

// FindPwmOutputs lists the pwmN files of a hwmon device directory, ordered by channel
func FindPwmOutputs(devicePath string) []PwmOutput {
	entries, err := os.ReadDir(devicePath)
	if err != nil {
		return nil
	}

	var result []PwmOutput
	for _, entry := range entries {
		match := pwmFileRegex.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		channel, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}

		rpmInputName := fmt.Sprintf("fan%d_input", channel)
		rpmInput := ""
		if _, err := os.Stat(filepath.Join(devicePath, rpmInputName)); err == nil {
			rpmInput = filepath.Join(devicePath, rpmInputName)
		}

		result = append(result, PwmOutput{
			Channel:  channel,
			Label:    getLabel(devicePath, rpmInputName),
			Path:     filepath.Join(devicePath, entry.Name()),
			RpmInput: rpmInput,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Channel < result[j].Channel
	})
	return result
}

func findSubFeature(subfeatures []gosensors.SubFeature, t gosensors.SubFeatureType) (gosensors.SubFeature, bool) {
	for _, a := range subfeatures {
		if a.Type == t {
			return a, true
		}
	}
	return gosensors.SubFeature{}, false
}

// getLabel read the label of a in/output of a device
func getLabel(devicePath string, input string) string {
	labelPath := strings.TrimSuffix(filepath.Join(devicePath, input), "input") + "label"

	content, _ := os.ReadFile(labelPath)
	label := strings.TrimSpace(string(content))
	if len(label) <= 0 {
		_, label = filepath.Split(devicePath)
	}
	return label
}

func getDeviceName(devicePath string) string {
	content, _ := os.ReadFile(filepath.Join(devicePath, "name"))
	return strings.TrimSpace(string(content))
}

func computeIdentifier(chip gosensors.Chip) (name string) {
	name = chip.Prefix

	devicePath := chip.Path
	if len(name) <= 0 {
		name = getDeviceName(devicePath)
	}

	if len(name) <= 0 {
		_, name = filepath.Split(devicePath)
	}

	identifier := name
	switch chip.Bus.Type {
	case BusTypeIsa:
		identifier = fmt.Sprintf("%s-isa-%d", identifier, chip.Bus.Nr)
	case BusTypePci:
		identifier = fmt.Sprintf("%s-pci-%d", identifier, chip.Bus.Nr)
	case BusTypeAcpi:
		identifier = fmt.Sprintf("%s-acpi-%d", identifier, chip.Bus.Nr)
	}

	return identifier
}
