package cmd

import (
	"fmt"
	"strconv"

	"github.com/simplefan/fancontrol/internal/fans"
	"github.com/simplefan/fancontrol/internal/hwmon"
	"github.com/simplefan/fancontrol/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect devices",
	Long: `Detects all temperature inputs and pwm outputs and prints them as a list.
The listed paths can be used as --cpu-temp-path and --fan-path.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		chips := hwmon.GetChips()
		if len(chips) <= 0 {
			ui.Warning("No hwmon devices found")
			return nil
		}

		for _, chip := range chips {
			ui.Printfln("> %s", chip.Name)

			tables := []table.Table{
				createPwmTable(chip.Pwms, readPwm),
				createTemperatureTable(chip.Temperatures),
			}
			for _, tab := range tables {
				if tab.Rows == nil {
					continue
				}
				if err := printTable(tab); err != nil {
					return fmt.Errorf("error printing table: %w", err)
				}
			}
		}
		return nil
	},
}

func readPwm(path string) (int, error) {
	fan := fans.FileFan{Path: path}
	return fan.GetPwm()
}

func createPwmTable(pwms []hwmon.PwmOutput, read func(path string) (int, error)) table.Table {
	var rows [][]string
	for _, pwm := range pwms {
		pwmText := "N/A"
		if value, err := read(pwm.Path); err == nil {
			pwmText = strconv.Itoa(value)
		}
		rows = append(rows, []string{
			"", strconv.Itoa(pwm.Channel), pwm.Label, pwm.Path, pwmText,
		})
	}

	return table.Table{
		Headers: []string{"Fans   ", "Channel", "Label", "Path", "PWM"},
		Rows:    rows,
	}
}

func createTemperatureTable(temperatures []hwmon.TemperatureInput) table.Table {
	var rows [][]string
	for _, temperature := range temperatures {
		rows = append(rows, []string{
			"", strconv.Itoa(temperature.Index), temperature.Label, temperature.Path, fmt.Sprintf("%.1f", temperature.Value),
		})
	}

	return table.Table{
		Headers: []string{"Sensors", "Index", "Label", "Path", "Value"},
		Rows:    rows,
	}
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
